package config

import "time"

const (
	WindowWidth  = 960
	WindowHeight = 640
	WindowTitle  = "ink intro"

	// Device pixel density is clamped to this range before use
	MinDensity = 1.0
	MaxDensity = 2.0

	// Phase timeline
	ScribbleDuration = 700 * time.Millisecond
	DrawDuration     = 1700 * time.Millisecond
	HoldDuration     = 650 * time.Millisecond

	// Overlay fade-out once the timeline is finished
	FadeOutDuration = 450 * time.Millisecond

	// Reference radius as a fraction of the smaller viewport side
	RadiusFraction = 0.30

	// Scribble parameters
	HairCount       = 30
	HairAngleStep   = 0.10
	HairAngleSpread = 0.0008
	HairMinLength   = 6.0
	HairLengthRange = 7.0
	HairInnerRadius = 0.12
	HairRadiusRange = 0.82
	HairNoiseScale  = 0.01
	HairNoiseAmount = 0.7
	HairEaseBase    = 0.18
	HairEaseGain    = 0.12
	HairJitter      = 7.0
	HairBaseWidth   = 4.0
	HairWidthGain   = 2.0
	HairAlpha       = 0.9

	// Crossfade: scribbles are drawn under the ribbon while eased progress is below this
	CrossfadeCutoff = 0.65

	// Ribbon parameters
	RibbonStartDeg     = 135.0
	RibbonArcFraction  = 0.82
	RibbonDirection    = 1.0
	RibbonBaseWidth    = 54.0
	RibbonSteps        = 900
	RibbonTaper        = 0.12
	RibbonDryStart     = 0.72
	RibbonDryAmount    = 0.18
	RibbonCapScale     = 0.6
	RibbonCoreLayers   = 4
	RibbonCoreSpread   = 1.0
	RibbonCoreAlpha    = 0.95
	RibbonFeathers     = 2
	RibbonFeatherStart = 1.2
	RibbonFeatherStep  = 0.6
	RibbonFeatherAlpha = 0.22
	RibbonFeatherDecay = 0.35

	// Colors
	InkHex   = "#000000"
	PaperHex = "#f6f1e7"

	// Audio
	SampleRate = 44100
)
