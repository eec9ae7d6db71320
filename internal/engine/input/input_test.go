package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func keyDown(code sdl.Scancode) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: code}}
}

func TestKeyBindings(t *testing.T) {
	tests := []struct {
		code sdl.Scancode
		want Action
	}{
		{sdl.SCANCODE_SPACE, ActionStart},
		{sdl.SCANCODE_H, ActionHide},
		{sdl.SCANCODE_M, ActionToggleMap},
		{sdl.SCANCODE_F12, ActionScreenshot},
		{sdl.SCANCODE_R, ActionResetCamera},
	}
	for _, tt := range tests {
		in := New(nil)
		in.Handle(keyDown(tt.code))
		got := in.Actions()
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("key %d: actions = %v, want [%v]", tt.code, got, tt.want)
		}
	}
}

func TestUnboundAndRepeatedKeysIgnored(t *testing.T) {
	in := New(nil)
	in.Handle(keyDown(sdl.SCANCODE_Q))
	repeat := keyDown(sdl.SCANCODE_SPACE)
	repeat.Repeat = 1
	in.Handle(repeat)
	in.Handle(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}})

	if n := len(in.Events()); n != 0 {
		t.Errorf("got %d events, want 0", n)
	}
}

func TestQuit(t *testing.T) {
	if !New(nil).Handle(&sdl.QuitEvent{Type: sdl.QUIT}) {
		t.Error("window close should quit")
	}
	if !New(nil).Handle(keyDown(sdl.SCANCODE_ESCAPE)) {
		t.Error("escape should quit")
	}
}

func TestCustomBindings(t *testing.T) {
	in := New(map[sdl.Scancode]Action{sdl.SCANCODE_S: ActionStart})
	in.Handle(keyDown(sdl.SCANCODE_S))
	in.Handle(keyDown(sdl.SCANCODE_SPACE))

	got := in.Actions()
	if len(got) != 1 || got[0] != ActionStart {
		t.Errorf("actions = %v, want [start]", got)
	}
}

func TestPointerState(t *testing.T) {
	in := New(nil)
	in.Handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 10, Y: 20})
	if !in.LeftDown || in.MouseX != 10 || in.MouseY != 20 {
		t.Fatalf("after press: down=%v pos=(%d, %d)", in.LeftDown, in.MouseX, in.MouseY)
	}

	in.Handle(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 15, Y: 18, XRel: 5, YRel: -2})
	last := in.Events()[len(in.Events())-1]
	if last.DeltaX != 5 || last.DeltaY != -2 {
		t.Errorf("motion delta = (%d, %d), want (5, -2)", last.DeltaX, last.DeltaY)
	}

	in.Handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT, X: 15, Y: 18})
	if in.LeftDown {
		t.Error("left button still down after release")
	}
}

func TestWheel(t *testing.T) {
	in := New(nil)
	in.Handle(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: -1})
	e := in.Events()[0]
	if e.Type != EventWheel || e.Wheel != -1 {
		t.Errorf("event = %+v, want wheel -1", e)
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleMap.String() != "toggle-map" || Action(99).String() != "unknown" {
		t.Error("unexpected action names")
	}
}
