package ebiten

import (
	"errors"
	"image/color"
	_ "image/jpeg" // jumpscare pictures
	_ "image/png"  // sprites
	"io/fs"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	_ "golang.org/x/image/webp" // some jumpscares ship as webp

	"nightshift/pkg/game/state"
)

// jumpscareExtensions are tried in order for <asset>_jumpscare.<ext>
var jumpscareExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// preloadAssets loads every agent's sprite and jumpscare so Draw never touches the disk
func (e *EbitenRenderer) preloadAssets(g *state.Game) {
	for _, a := range g.Agents {
		e.spriteFor(a.Asset)
		e.jumpscareFor(a.Asset)
	}
}

// spriteFor returns the sprite for an asset, scaled to spriteSize.
// A missing file falls back to a plain square.
func (e *EbitenRenderer) spriteFor(asset string) *ebiten.Image {
	e.assetMutex.Lock()
	defer e.assetMutex.Unlock()

	if img, ok := e.sprites[asset]; ok {
		return img
	}

	var img *ebiten.Image
	if asset != "" {
		img = e.loadImage(asset + ".png")
	}
	if img == nil {
		img = placeholderImage(spriteSize, spriteSize, colorAgent)
	}
	img = scaleImage(img, spriteSize, spriteSize)
	e.sprites[asset] = img
	return img
}

// jumpscareFor returns the capture picture for an asset
func (e *EbitenRenderer) jumpscareFor(asset string) *ebiten.Image {
	e.assetMutex.Lock()
	defer e.assetMutex.Unlock()

	if img, ok := e.jumpscares[asset]; ok {
		return img
	}

	var img *ebiten.Image
	if asset != "" {
		for _, ext := range jumpscareExtensions {
			if img = e.loadImage(asset + "_jumpscare" + ext); img != nil {
				break
			}
		}
	}
	if img == nil {
		img = placeholderImage(e.windowWidth/2, e.windowHeight/2, colorDenied)
	}
	e.jumpscares[asset] = img
	return img
}

// loadImage reads a picture from the asset directory, returning nil when it
// is missing or cannot be decoded.
func (e *EbitenRenderer) loadImage(name string) *ebiten.Image {
	path := filepath.Join(e.assetDir, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			e.log.Info("no picture at %s, using a placeholder", path)
		} else {
			e.log.Warn("could not load %s: %v", path, err)
		}
		return nil
	}
	return img
}

// placeholderImage is a flat rectangle standing in for a missing picture
func placeholderImage(w, h int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	img.Fill(c)
	return img
}

// scaleImage redraws src at w x h
func scaleImage(src *ebiten.Image, w, h int) *ebiten.Image {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}
