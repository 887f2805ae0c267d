package config

const (
	WindowWidth  = 1024
	WindowHeight = 512

	WindowTitle = "Bubbles - F1: debug, Esc/Q: Quit"

	// Bubble field
	BubbleCount = 100
	Step        = 0.01
	WrapTop     = 1.2
	WrapBottom  = -1.2

	// Randomized bubble attributes, inclusive ranges
	PositionMin = -1.0
	PositionMax = 1.0
	SizeMin     = 10.0
	SizeMax     = 30.0
	AlphaMin    = 0.3
	AlphaMax    = 0.8
	SpeedMin    = 0.2
	SpeedMax    = 1.0

	// View
	FadeInSeconds = 1.5

	// Background
	BackgroundBands = 128
	ColorShiftSpeed = 0.002
)
