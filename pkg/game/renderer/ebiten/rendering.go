package ebiten

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"nightshift/pkg/game/state"
	gameworld "nightshift/pkg/game/world"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := e.currentSnapshot()
	if !snap.valid || e.sansFontSource == nil {
		// Can't draw without valid snapshot or fonts
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Hallways go under the rooms they join
	e.drawHallways(screen, &snap)
	e.drawRooms(screen, &snap)
	e.drawNextTurnButton(screen, &snap)
	e.drawHUD(screen, &snap)

	if snap.Status == state.StatusDrained {
		e.drawDrainedOverlay(screen, screenWidth, screenHeight)
	}

	e.drawMessages(screen, &snap, screenWidth)

	switch snap.Status {
	case state.StatusLost:
		e.drawJumpscare(screen, &snap, screenWidth, screenHeight)
	case state.StatusWon:
		e.drawCenteredText(screen, gotext.Get("You Survived!"), screenWidth/2, screenHeight/2, colorText, e.getTitleFontFace())
	}

	// Draw console overlay (always on top)
	e.drawConsole(screen)
}

// drawHallways draws every hallway as a thick line between room centers with
// its block cost at the midpoint
func (e *EbitenRenderer) drawHallways(screen *ebiten.Image, snap *renderSnapshot) {
	face := e.getSansFontFace()
	for _, h := range snap.Hallways {
		col := colorHallway
		if h.Blocked {
			col = colorHallwayBlocked
		}
		vector.StrokeLine(screen,
			float32(h.Start.X), float32(h.Start.Y),
			float32(h.End.X), float32(h.End.Y),
			hallwayThickness, col, false)
		e.drawCenteredText(screen, fmt.Sprint(h.Cost), h.Mid.X, h.Mid.Y, colorText, face)
	}
}

// drawRooms draws every room box. A lit room shows the agents inside it; a
// dark room other than the office only shows a question mark.
func (e *EbitenRenderer) drawRooms(screen *ebiten.Image, snap *renderSnapshot) {
	labelFace := e.getSmallFontFace()
	unknownFace := e.getSansBoldFontFace()

	for _, r := range snap.Rooms {
		b := r.Bounds
		col := colorRoomDark
		switch {
		case r.Office:
			col = colorOffice
		case r.Lit:
			col = colorRoomLit
		}
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), col, false)

		center := b.Center()
		e.drawTopCenteredText(screen, r.Name, center.X, b.Y+5, colorRoomLabel, labelFace)

		if r.Lit {
			for i, a := range r.Agents {
				sprite := e.spriteFor(a.Asset)
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(center.X-spriteSize/2), float64(center.Y+spriteOffset+i*spriteSpacing-spriteSize/2))
				screen.DrawImage(sprite, op)
			}
			continue
		}
		if !r.Office {
			e.drawCenteredText(screen, "?", center.X, center.Y, colorUnknown, unknownFace)
		}
	}
}

// drawNextTurnButton draws the on-screen control that ends a turn
func (e *EbitenRenderer) drawNextTurnButton(screen *ebiten.Image, snap *renderSnapshot) {
	b := gameworld.NextTurnButton
	col := colorButton
	if snap.Status != state.StatusPlaying {
		col = colorButtonDisabled
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), col, false)

	center := b.Center()
	e.drawCenteredText(screen, gotext.Get("Next Turn"), center.X, center.Y, colorButtonLabel, e.getSmallFontFace())
}

// drawHUD draws the battery, turn and block cost readouts in the top left
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, snap *renderSnapshot) {
	battery := colorText
	if snap.Battery <= snap.BlockCost {
		battery = colorDenied
	}
	// drawColoredText offsets by the face size for the baseline, undo it so
	// the readouts sit at the margin
	y := hudMargin - int(uiFontSize)
	e.drawColoredText(screen, gotext.Get("Battery: %d%%", snap.Battery), hudMargin, y, battery)
	e.drawColoredText(screen, gotext.Get("Turns: %d", snap.TurnsRemaining), hudMargin, y+hudLineHeight, colorText)
	e.drawColoredText(screen, gotext.Get("Block Cost: %d%%", snap.BlockCost), hudMargin, y+2*hudLineHeight, colorText)
}

// drawDrainedOverlay tints the screen while the battery is drained
func (e *EbitenRenderer) drawDrainedOverlay(screen *ebiten.Image, screenWidth, screenHeight int) {
	pulse := 0.5 + 0.5*drainedPulse(time.Now())
	vector.DrawFilledRect(screen, 0, 0, float32(screenWidth), float32(screenHeight), e.applyAlpha(colorDrainedOverlay, pulse), false)
	e.drawTopCenteredText(screen, gotext.Get("BATTERY DRAINED"), screenWidth/2, hudMargin, colorDenied, e.getSansBoldFontFace())
}

// drawMessages draws the message log as a panel in the top right corner
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap *renderSnapshot, screenWidth int) {
	if len(snap.Messages) == 0 {
		return
	}

	const maxPanelWidth = 420
	face := e.getSmallFontFace()
	lineHeight := int(face.Size) + 4

	lines := make([][]textSegment, 0, len(snap.Messages))
	maxTextWidth := 0.0
	for _, msg := range snap.Messages {
		segments := e.parseMarkup(msg)
		width := 0.0
		for _, seg := range segments {
			width += e.getTextWidthWithFace(seg.text, face)
		}
		maxTextWidth = max(maxTextWidth, width)
		lines = append(lines, segments)
	}

	panelWidth := min(int(maxTextWidth)+20, maxPanelWidth)
	panelHeight := len(lines)*lineHeight + 10
	bgX := float32(screenWidth - hudMargin - panelWidth)
	bgY := float32(hudMargin)

	vector.DrawFilledRect(screen, bgX-1, bgY-1, float32(panelWidth)+2, float32(panelHeight)+2, colorPanelBorder, false)
	vector.DrawFilledRect(screen, bgX, bgY, float32(panelWidth), float32(panelHeight), colorPanelBackground, false)

	// Clip long lines to the panel
	panel := screen.SubImage(image.Rect(int(bgX), int(bgY), int(bgX)+panelWidth, int(bgY)+panelHeight)).(*ebiten.Image)
	for i, segments := range lines {
		e.drawColoredTextSegmentsWithFace(panel, segments, int(bgX)+10, int(bgY)+5+i*lineHeight-int(face.Size), face)
	}
}

// drawJumpscare fades the capturing agent's picture in over the facility
func (e *EbitenRenderer) drawJumpscare(screen *ebiten.Image, snap *renderSnapshot, screenWidth, screenHeight int) {
	asset := ""
	if snap.CaughtBy != nil {
		asset = snap.CaughtBy.Asset
	}
	img := e.jumpscareFor(asset)

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screenWidth-b.Dx())/2, float64(screenHeight-b.Dy())/2)
	op.ColorScale.ScaleAlpha(float32(e.scare.alpha) / 255)
	screen.DrawImage(img, op)

	e.drawCenteredText(screen, snap.DeathReason, screenWidth/2, screenHeight/2+200, colorText, e.getSansBoldFontFace())
}

// drawTopCenteredText draws text horizontally centered on cx with its top at y
func (e *EbitenRenderer) drawTopCenteredText(screen *ebiten.Image, str string, cx, y int, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx), float64(y))
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}
