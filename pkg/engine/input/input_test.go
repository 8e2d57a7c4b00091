package input

import (
	"errors"
	"io"
	"testing"
	"time"
)

// byteSource replays a fixed byte sequence, then fails.
// Bytes are always ready, so nextWithin never waits.
type byteSource []byte

func (s *byteSource) next() (byte, error) {
	if len(*s) == 0 {
		return 0, errors.New("eof")
	}
	b := (*s)[0]
	*s = (*s)[1:]
	return b, nil
}

func (s *byteSource) nextWithin(time.Duration) (byte, bool) {
	b, err := s.next()
	return b, err == nil
}

func (s *byteSource) unread(b byte) {
	*s = append([]byte{b}, *s...)
}

func source(bs ...byte) *byteSource {
	s := byteSource(bs)
	return &s
}

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name  string
		first byte
		rest  []byte
		want  string
	}{
		{"csi up", 0x1b, []byte{'[', 'A'}, "arrow_up"},
		{"csi down", 0x1b, []byte{'[', 'B'}, "arrow_down"},
		{"ss3 right", 0x1b, []byte{'O', 'C'}, "arrow_right"},
		{"csi left", 0x1b, []byte{'[', 'D'}, "arrow_left"},
		{"f9", 0x1b, []byte{'[', '2', '0', '~'}, "f9"},
		{"f10", 0x1b, []byte{'[', '2', '1', '~'}, "f10"},
		{"lone escape", 0x1b, nil, "escape"},
		{"escape then letter", 0x1b, []byte{'q'}, "escape"},
		{"unknown csi", 0x1b, []byte{'[', 'Z'}, ""},
		{"enter cr", '\r', nil, "enter"},
		{"enter lf", '\n', nil, "enter"},
		{"ctrl c", 3, nil, "ctrl_c"},
		{"letter", 'q', nil, "q"},
		{"control byte", 1, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeKey(tt.first, source(tt.rest...)); got != tt.want {
				t.Errorf("decodeKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadKey_EscapeKeepsFollowingKey(t *testing.T) {
	src := source(0x1b, 'q', 0x1b, '\r')
	var got []string
	for i := 0; i < 4; i++ {
		in, err := readKeyFrom(src)
		if err != nil {
			t.Fatalf("key %d: %v", i, err)
		}
		got = append(got, in.Code)
	}
	want := []string{"escape", "q", "escape", "enter"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("codes = %q, want %q", got, want)
		}
	}
	if _, err := readKeyFrom(src); err == nil {
		t.Error("expected an error once the input is exhausted")
	}
}

func TestStdinReader_LoneEscapeTimesOut(t *testing.T) {
	r := &stdinReader{results: make(chan readResult)}

	start := time.Now()
	if got := decodeKey(0x1b, r); got != "escape" {
		t.Errorf("decodeKey = %q, want escape", got)
	}
	if elapsed := time.Since(start); elapsed < escapeTimeout {
		t.Errorf("returned after %s, before the escape timeout", elapsed)
	}
}

func TestStdinReader_UnreadAndErrors(t *testing.T) {
	r := &stdinReader{results: make(chan readResult, 4)}
	r.results <- readResult{b: '['}
	r.results <- readResult{b: 'A'}
	r.results <- readResult{err: io.EOF}

	r.unread('x')
	if b, err := r.next(); err != nil || b != 'x' {
		t.Fatalf("next after unread = %q, %v", b, err)
	}
	if got := decodeKey(0x1b, r); got != "arrow_up" {
		t.Errorf("decodeKey = %q, want arrow_up", got)
	}
	if _, err := r.next(); !errors.Is(err, io.EOF) {
		t.Errorf("next = %v, want EOF", err)
	}
	if _, ok := r.nextWithin(time.Millisecond); ok {
		t.Error("a failed reader keeps failing")
	}
}

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"arrow_down", ActionMoveSouth},
		{"arrow_left", ActionMoveWest},
		{"arrow_right", ActionMoveEast},
		{"enter", ActionConfirm},
		{"escape", ActionBack},
		{"q", ActionQuit},
		{"f9", ActionDumpMap},
		{"f10", ActionScreenshot},
		{"x", ActionNone},
	}
	for _, tt := range tests {
		got := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceTerminal, Code: tt.code}))
		if got.Action != tt.want {
			t.Errorf("MapToIntent(%q) = %s, want %s", tt.code, ActionName(got.Action), ActionName(tt.want))
		}
	}
}

func TestFrame_PressImpliesHeld(t *testing.T) {
	f := NewFrame().Press(ActionConfirm).Hold(ActionMoveEast)
	if !f.WasPressed(ActionConfirm) || !f.IsHeld(ActionConfirm) {
		t.Error("pressed action should be pressed and held")
	}
	if f.WasPressed(ActionMoveEast) || !f.IsHeld(ActionMoveEast) {
		t.Error("held action should be held but not pressed")
	}
	if f.IsHeld(ActionNone) {
		t.Error("ActionNone must never be recorded")
	}
}

func TestDelta(t *testing.T) {
	for _, a := range MoveActions {
		dx, dy := Delta(a)
		if dx*dx+dy*dy != 1 {
			t.Errorf("Delta(%s) = (%d,%d), want a unit step", ActionName(a), dx, dy)
		}
	}
	if dx, dy := Delta(ActionConfirm); dx != 0 || dy != 0 {
		t.Error("Delta(ActionConfirm) should be zero")
	}
}
