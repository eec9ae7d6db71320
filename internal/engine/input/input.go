// Package input turns SDL2 events into viewer actions and pointer state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Action is a keyboard command of the viewer.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionHide
	ActionToggleMap
	ActionScreenshot
	ActionResetCamera
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionStart:       "start",
	ActionHide:        "hide",
	ActionToggleMap:   "toggle-map",
	ActionScreenshot:  "screenshot",
	ActionResetCamera: "reset-camera",
	ActionQuit:        "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// DefaultBindings maps keys to actions.
func DefaultBindings() map[sdl.Scancode]Action {
	return map[sdl.Scancode]Action{
		sdl.SCANCODE_SPACE:  ActionStart,
		sdl.SCANCODE_H:      ActionHide,
		sdl.SCANCODE_M:      ActionToggleMap,
		sdl.SCANCODE_F12:    ActionScreenshot,
		sdl.SCANCODE_R:      ActionResetCamera,
		sdl.SCANCODE_ESCAPE: ActionQuit,
	}
}

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventAction
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Action Action
	Width  int
	Height int
	MouseX int
	MouseY int
	DeltaX int
	DeltaY int
	Wheel  float32
	Button uint8
}

// Input polls SDL and keeps the pointer state between frames.
type Input struct {
	bindings map[sdl.Scancode]Action
	events   []Event

	MouseX, MouseY int
	LeftDown       bool
}

// New creates an input handler with the given key bindings, or the
// defaults when nil.
func New(bindings map[sdl.Scancode]Action) *Input {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Input{
		bindings: bindings,
		events:   make([]Event, 0, 16),
	}
}

// Update polls SDL events. Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.Handle(event) {
			quit = true
		}
	}
	return quit
}

// Handle processes one SDL event. Returns true if it asks to quit.
func (i *Input) Handle(event sdl.Event) bool {
	e, ok := i.translate(event)
	if !ok {
		return false
	}
	switch e.Type {
	case EventMouseMove:
		i.MouseX, i.MouseY = e.MouseX, e.MouseY
	case EventMouseDown:
		i.MouseX, i.MouseY = e.MouseX, e.MouseY
		if e.Button == sdl.BUTTON_LEFT {
			i.LeftDown = true
		}
	case EventMouseUp:
		i.MouseX, i.MouseY = e.MouseX, e.MouseY
		if e.Button == sdl.BUTTON_LEFT {
			i.LeftDown = false
		}
	}
	i.events = append(i.events, e)
	return e.Type == EventQuit || (e.Type == EventAction && e.Action == ActionQuit)
}

func (i *Input) translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return Event{}, false
		}
		if a, ok := i.bindings[e.Keysym.Scancode]; ok {
			return Event{Type: EventAction, Action: a}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			DeltaX: int(e.XRel),
			DeltaY: int(e.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		t := EventMouseUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t = EventMouseDown
		}
		return Event{Type: t, MouseX: int(e.X), MouseY: int(e.Y), Button: e.Button}, true

	case *sdl.MouseWheelEvent:
		return Event{Type: EventWheel, Wheel: float32(e.Y)}, true
	}
	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Actions returns the actions triggered since the last Update.
func (i *Input) Actions() []Action {
	var out []Action
	for _, e := range i.events {
		if e.Type == EventAction {
			out = append(out, e.Action)
		}
	}
	return out
}
