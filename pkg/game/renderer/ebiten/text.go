package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"nightshift/pkg/game/renderer"
)

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// drawColoredText draws text at (x, y) top-left in a single color
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	e.drawColoredTextWithFace(screen, str, x, y, col, e.getSansFontFace())
}

// drawColoredTextWithFace draws text at (x, y) top-left with a specific face.
// text.Draw positions at the baseline, so the face size is added to y.
func (e *EbitenRenderer) drawColoredTextWithFace(screen *ebiten.Image, str string, x, y int, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)+face.Size)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawCenteredText draws text centered on (cx, cy)
func (e *EbitenRenderer) drawCenteredText(screen *ebiten.Image, str string, cx, cy int, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx), float64(cy))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// styleColor maps a markup style onto the palette
func styleColor(style renderer.TextStyle) color.Color {
	switch style {
	case renderer.StyleRoom, renderer.StyleRoomLit:
		return colorRoomLit
	case renderer.StyleOffice:
		return colorOffice
	case renderer.StyleHallway:
		return colorSubtle
	case renderer.StyleBlocked, renderer.StyleDenied:
		return colorDenied
	case renderer.StyleAgent:
		return colorAgent
	case renderer.StyleAction, renderer.StyleActionShort:
		return colorAction
	case renderer.StyleSubtle:
		return colorSubtle
	default:
		return colorText
	}
}

// parseMarkup parses a message string with markup (ROOM{}, ACTION{}, DENIED{}, ...) and returns colored segments
func (e *EbitenRenderer) parseMarkup(msg string) []textSegment {
	spans := renderer.Spans(msg)
	segments := make([]textSegment, 0, len(spans))
	for _, s := range spans {
		segments = append(segments, textSegment{text: s.Text, color: styleColor(s.Style)})
	}
	return segments
}

// applyAlpha applies an alpha value to a color
func (e *EbitenRenderer) applyAlpha(c color.Color, alpha float64) color.Color {
	alpha = max(0, min(alpha, 1))

	r, g, b, a := c.RGBA()
	// RGBA returns premultiplied values in 0-65535, scale everything so the
	// color fades to transparent black rather than to a bright ghost.
	return color.RGBA{
		R: uint8(float64(r>>8) * alpha),
		G: uint8(float64(g>>8) * alpha),
		B: uint8(float64(b>>8) * alpha),
		A: uint8(float64(a>>8) * alpha),
	}
}

// drawColoredTextSegmentsWithFace draws multiple text segments with a specific font face
func (e *EbitenRenderer) drawColoredTextSegmentsWithFace(screen *ebiten.Image, segments []textSegment, x, y int, face *text.GoTextFace) {
	currentX := float64(x)

	for _, seg := range segments {
		if seg.text == "" {
			continue
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(currentX, float64(y)+face.Size)
		op.ColorScale.ScaleWithColor(seg.color)

		text.Draw(screen, seg.text, face, op)

		w, _ := text.Measure(seg.text, face, 0)
		currentX += w
	}
}

// getTextWidthWithFace returns the width of a string in pixels using the given font face.
func (e *EbitenRenderer) getTextWidthWithFace(str string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(str, face, 0)
	return w
}
