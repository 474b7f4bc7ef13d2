package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts prepares the Go font family shipped with x/image
func (e *EbitenRenderer) loadFonts() error {
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("load bold font: %w", err)
	}
	e.sansFontSource = sans
	e.sansBoldFontSource = bold
	return nil
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	if e.cachedSansFace == nil {
		e.cachedSansFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   uiFontSize,
		}
	}
	return e.cachedSansFace
}

// getSmallFontFace returns a cached face for the message log and console
func (e *EbitenRenderer) getSmallFontFace() *text.GoTextFace {
	if e.cachedSmallFace == nil {
		e.cachedSmallFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   smallFontSize,
		}
	}
	return e.cachedSmallFace
}

// getSansBoldFontFace returns a cached bold face (same size as UI) for labels
func (e *EbitenRenderer) getSansBoldFontFace() *text.GoTextFace {
	if e.cachedSansBoldFace == nil {
		e.cachedSansBoldFace = &text.GoTextFace{
			Source: e.sansBoldFontSource,
			Size:   uiFontSize,
		}
	}
	return e.cachedSansBoldFace
}

// getTitleFontFace returns a cached large bold face for endings
func (e *EbitenRenderer) getTitleFontFace() *text.GoTextFace {
	if e.cachedTitleFace == nil {
		e.cachedTitleFace = &text.GoTextFace{
			Source: e.sansBoldFontSource,
			Size:   titleFontSize,
		}
	}
	return e.cachedTitleFace
}
