package termview

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/ejection-angle/internal/diagram"
	"github.com/Faultbox/ejection-angle/internal/overlay"
	"github.com/Faultbox/ejection-angle/pkg/math"
)

// Scenario is the diagram shown when the user starts the animation.
type Scenario struct {
	Origin    diagram.Origin
	Asymptote math.Vec3
	Periapsis math.Vec3
}

// App runs a controller in a terminal.
type App struct {
	screen   tcell.Screen
	ctrl     *diagram.Controller
	scenario Scenario
	styles   overlay.Styles
	reach    float32
	log      *zap.Logger

	view     View
	fitted   bool
	interval time.Duration
}

// NewApp binds ctrl to an initialised screen. reach is the line length in
// origin radii, used to fit the view.
func NewApp(screen tcell.Screen, ctrl *diagram.Controller, sc Scenario, styles overlay.Styles, reach float32, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		screen:   screen,
		ctrl:     ctrl,
		scenario: sc,
		styles:   styles,
		reach:    reach,
		log:      log,
		interval: time.Second / 30,
	}
}

// Run draws at 30 fps until ctx is done or the user quits.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.Draw(time.Now())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			a.Draw(now)
		}
	}
}

// HandleEvent reacts to one terminal event. Returns true to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.fitted = false
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			a.view.Pan(0, -1)
		case tcell.KeyDown:
			a.view.Pan(0, 1)
		case tcell.KeyLeft:
			a.view.Pan(-1, 0)
		case tcell.KeyRight:
			a.view.Pan(1, 0)
		case tcell.KeyRune:
			return a.handleRune(ev.Rune())
		}
	}
	return false
}

func (a *App) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case ' ':
		sc := a.scenario
		if err := a.ctrl.Start(sc.Origin, sc.Asymptote, sc.Periapsis); err != nil {
			a.log.Warn("cannot start diagram", zap.Error(err))
		}
	case 'h':
		a.ctrl.Hide()
	case '+', '=':
		a.view.Zoom(1.25)
	case '-':
		a.view.Zoom(0.8)
	case 'f':
		a.fitted = false
	}
	return false
}

// Draw ticks the controller to now and repaints the screen.
func (a *App) Draw(now time.Time) {
	w, h := a.screen.Size()
	if !a.fitted || a.view.W != w || a.view.H != h-1 {
		a.view = Fit(a.scenario.Origin, a.reach, w, h-1)
		a.fitted = true
	}

	f := a.ctrl.Tick(now)
	grid := Rasterize(a.view, a.scenario.Origin, a.ctrl.Geometry(), a.styles)
	if labels, ok := a.ctrl.LabelAnchors(a.view); ok {
		DrawLabels(grid, labels, a.styles)
	}

	a.screen.Clear()
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			c := grid.At(x, y)
			if c.Rune == 0 {
				continue
			}
			a.screen.SetContent(x, y, c.Rune, nil, cellStyle(c.Color))
		}
	}
	status := fmt.Sprintf(" %s %3.0f%%  space start  h hide  +/- zoom  arrows pan  q quit", f.Phase, f.Fraction*100)
	for x, r := range []rune(status) {
		a.screen.SetContent(x, h-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	a.screen.Show()
}

func cellStyle(c overlay.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B)))
}

func channel(v float32) int32 {
	return int32(math.Clamp01(v)*255 + 0.5)
}
