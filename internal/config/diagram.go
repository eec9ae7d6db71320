package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/ejection-angle/internal/diagram"
	"github.com/Faultbox/ejection-angle/internal/frame"
	"github.com/Faultbox/ejection-angle/internal/overlay"
	"github.com/Faultbox/ejection-angle/pkg/math"
)

// Timings returns the controller phase durations.
func (d DiagramConfig) Timings() diagram.Timings {
	return diagram.Timings{Appear: d.AppearTime, Hide: d.HideTime}
}

// Proportions returns the controller distance multipliers.
func (d DiagramConfig) Proportions() diagram.Proportions {
	return diagram.Proportions{Line: d.LineScale, Arc: d.ArcScale, Label: d.LabelScale}
}

// Converter returns the configured reference frame conversion.
func (d DiagramConfig) Converter() (frame.Converter, error) {
	return frame.Named(d.Frame)
}

// Options returns the controller options for this config.
func (d DiagramConfig) Options() ([]diagram.Option, error) {
	conv, err := d.Converter()
	if err != nil {
		return nil, err
	}
	return []diagram.Option{
		diagram.WithTimings(d.Timings()),
		diagram.WithProportions(d.Proportions()),
		diagram.WithFrame(conv),
	}, nil
}

// Styles converts the configured colors and widths.
func (d DiagramConfig) Styles() (overlay.Styles, error) {
	s := overlay.DefaultStyles()

	lines := []struct {
		name string
		cfg  StyleConfig
		dst  *overlay.Style
	}{
		{"asymptote", d.Asymptote, &s.Asymptote},
		{"periapsis", d.Periapsis, &s.Periapsis},
		{"arc", d.Arc, &s.Arc},
	}
	for _, l := range lines {
		c, err := parseColor(l.cfg.Color)
		if err != nil {
			return overlay.Styles{}, fmt.Errorf("%s color: %w", l.name, err)
		}
		l.dst.Color = c
		if l.cfg.Width > 0 {
			l.dst.Width = l.cfg.Width
		}
	}

	label, err := parseColor(d.LabelColor)
	if err != nil {
		return overlay.Styles{}, fmt.Errorf("label color: %w", err)
	}
	s.AsymptoteLabel.Color = label
	s.PeriapsisLabel.Color = label
	if d.AsymptoteCaption != "" {
		s.AsymptoteCaption = d.AsymptoteCaption
	}
	if d.PeriapsisCaption != "" {
		s.PeriapsisCaption = d.PeriapsisCaption
	}
	return s, nil
}

func parseColor(hex string) (overlay.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return overlay.Color{}, err
	}
	r, g, b := c.Clamped().RGB255()
	return overlay.Color{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255, A: 1}, nil
}

// Origin returns the scenario origin body.
func (s ScenarioConfig) Origin() diagram.Origin {
	return diagram.Origin{Position: vec(s.Position), Radius: s.Radius}
}

// Directions returns the scenario asymptote and periapsis directions.
func (s ScenarioConfig) Directions() (asymptote, periapsis math.Vec3) {
	return vec(s.Asymptote), vec(s.Periapsis)
}

func vec(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
