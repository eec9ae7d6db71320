package overlay

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Stock colors.
var (
	Blue  = Color{0, 0, 1, 1}
	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
	White = Color{1, 1, 1, 1}
)

// Style is the look of a polyline. Width is in pixels.
type Style struct {
	Color Color
	Width float32
}

// LabelStyle is the look of a caption.
type LabelStyle struct {
	Color    Color
	Centered bool
}

// Styles configures an overlay.
type Styles struct {
	Asymptote Style
	Periapsis Style
	Arc       Style

	AsymptoteLabel   LabelStyle
	PeriapsisLabel   LabelStyle
	AsymptoteCaption string
	PeriapsisCaption string
}

// DefaultStyles returns a blue escape line, a red burn line and a green arc
// with white centred captions.
func DefaultStyles() Styles {
	label := LabelStyle{Color: White, Centered: true}
	return Styles{
		Asymptote:        Style{Color: Blue, Width: 2},
		Periapsis:        Style{Color: Red, Width: 2},
		Arc:              Style{Color: Green, Width: 2},
		AsymptoteLabel:   label,
		PeriapsisLabel:   label,
		AsymptoteCaption: "Escape direction",
		PeriapsisCaption: "Burn position",
	}
}
