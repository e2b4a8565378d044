// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth     = 800
	StatusBarHeight = 24
	DefaultRows     = 50
	MaxDeltaTime    = 0.06
	GridLineWidth   = 1.0

	IndicatorOffsetX = 14
	IndicatorRadius  = 6.0
	SpeedButtonInset = 24
	SpeedButtonSize  = 7.0

	DefaultStepsPerFrame = 1
	DefaultDensity       = 0.3
	DefaultHeuristic     = "manhattan"
	DefaultMetricsAddr   = "localhost:6060"
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	GridLineColor   = color.RGBA{128, 128, 128, 255}
	BarrierColor    = color.RGBA{0, 0, 0, 255}
	StartColor      = color.RGBA{255, 165, 0, 255}
	EndColor        = color.RGBA{64, 224, 208, 255}
	OpenColor       = color.RGBA{0, 255, 0, 255}
	ClosedColor     = color.RGBA{255, 0, 0, 255}
	PathColor       = color.RGBA{128, 0, 128, 255}
	StatusBarColor  = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}

	IdleIndicatorColor      = color.RGBA{70, 130, 180, 220}
	RunningIndicatorColor   = color.RGBA{220, 160, 60, 220}
	PausedIndicatorColor    = color.RGBA{194, 178, 128, 255}
	FoundIndicatorColor     = color.RGBA{50, 205, 50, 255}
	NotFoundIndicatorColor  = color.RGBA{220, 60, 60, 220}
	CancelledIndicatorColor = color.RGBA{128, 128, 128, 255}

	// Speed button colors, slowest preset first.
	SpeedColors = []color.RGBA{
		{70, 130, 180, 255},
		{60, 179, 113, 255},
		{255, 215, 0, 255},
		{255, 99, 71, 255},
	}
)
