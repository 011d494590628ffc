package component

import "image/color"

type CompletionStage uint8

const (
	CompletionHidden   CompletionStage = iota
	CompletionReveal                   // solved image fades in
	CompletionAnnounce                 // message fades in
	CompletionHold
	CompletionFadeOut
	CompletionDone
)

// Completion drives the cosmetic end-of-maze transition.
type Completion struct {
	Stage        CompletionStage
	OverlayAlpha float64
	TextAlpha    float64
	HoldLeft     int
	Ticks        int

	FadeStep     float64
	HoldTicks    int
	Message      string
	FontSize     float64
	BobAmplitude float64
	BobSpeed     float64 // radians per millisecond
	TextColor    color.Color
	ShadeColor   color.Color
}

var CompletionComponent = NewComponent[Completion]()
