package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(16, 18, 24)
	RgbGround     = tcell.NewRGBColor(60, 64, 72)
	RgbHUD        = tcell.NewRGBColor(200, 200, 210)
	RgbHUDDim     = tcell.NewRGBColor(110, 110, 120)
	RgbChargeBar  = tcell.NewRGBColor(255, 200, 0)
	RgbShadow     = tcell.NewRGBColor(40, 40, 48)
	RgbCamera     = tcell.NewRGBColor(90, 140, 255)

	RgbBoardIdle     = tcell.NewRGBColor(240, 240, 240)
	RgbBoardCharging = tcell.NewRGBColor(255, 200, 0)
	RgbBoardInAir    = tcell.NewRGBColor(0, 255, 255)

	RgbTrickLanded = tcell.NewRGBColor(0, 255, 120)
	RgbTrickBailed = tcell.NewRGBColor(255, 80, 80)
)
