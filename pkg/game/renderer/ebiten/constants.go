package ebiten

import "image/color"

// Color palette for the facility view
var (
	colorBackground      = color.RGBA{0, 0, 0, 255}
	colorOffice          = color.RGBA{0, 128, 255, 255}
	colorRoomLit         = color.RGBA{255, 255, 255, 255}
	colorRoomDark        = color.RGBA{128, 128, 128, 255}
	colorRoomLabel       = color.RGBA{0, 0, 0, 255}
	colorUnknown         = color.RGBA{64, 64, 64, 255}
	colorHallway         = color.RGBA{64, 64, 64, 255}
	colorHallwayBlocked  = color.RGBA{255, 0, 0, 255}
	colorButton          = color.RGBA{0, 255, 0, 255}
	colorButtonDisabled  = color.RGBA{40, 90, 40, 255}
	colorButtonLabel     = color.RGBA{0, 0, 0, 255}
	colorText            = color.RGBA{255, 255, 255, 255}
	colorSubtle          = color.RGBA{120, 130, 180, 255}
	colorAction          = color.RGBA{180, 150, 250, 255}
	colorDenied          = color.RGBA{255, 100, 100, 255}
	colorAgent           = color.RGBA{255, 255, 0, 255}
	colorPanelBackground = color.RGBA{30, 30, 50, 220}
	colorPanelBorder     = color.RGBA{80, 80, 100, 255}
	colorDrainedOverlay  = color.RGBA{120, 0, 0, 60}
)

// Sizes taken from the facility's logical screen
const (
	spriteSize       = 40
	spriteSpacing    = 45
	spriteOffset     = 25
	hallwayThickness = 20
	uiFontSize       = 24.0
	smallFontSize    = 16.0
	titleFontSize    = 40.0
	hudLineHeight    = 40
	hudMargin        = 10
)

// Jumpscare timing: the picture fades in by jumpscareFadeStep alpha per
// frame and stays fully opaque for jumpscareHold before the window closes.
const (
	jumpscareFadeStep = 5
	jumpscareHold     = 2000 // milliseconds
)
