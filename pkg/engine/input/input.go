package input

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// escapeTimeout is how long a lone ESC waits for the rest of a sequence
const escapeTimeout = 50 * time.Millisecond

// byteReader hands out key bytes one at a time
type byteReader interface {
	next() (byte, error)
	// nextWithin returns false when no byte arrives within d
	nextWithin(d time.Duration) (byte, bool)
	// unread puts b back so the next call returns it first
	unread(b byte)
}

type readResult struct {
	b   byte
	err error
}

// stdinReader reads stdin on a goroutine so decoding can wait with a deadline
type stdinReader struct {
	results chan readResult
	pending []byte
	err     error
}

var (
	stdin     *stdinReader
	stdinOnce sync.Once
)

func stdinBytes() *stdinReader {
	stdinOnce.Do(func() {
		stdin = &stdinReader{results: make(chan readResult, 16)}
		go stdin.pump(os.Stdin)
	})
	return stdin
}

func (r *stdinReader) pump(f *os.File) {
	buf := make([]byte, 16)
	for {
		n, err := f.Read(buf)
		for _, b := range buf[:n] {
			r.results <- readResult{b: b}
		}
		if err != nil {
			r.results <- readResult{err: err}
			return
		}
	}
}

func (r *stdinReader) take(res readResult) (byte, error) {
	if res.err != nil {
		r.err = res.err
	}
	return res.b, res.err
}

func (r *stdinReader) next() (byte, error) {
	if n := len(r.pending); n > 0 {
		b := r.pending[n-1]
		r.pending = r.pending[:n-1]
		return b, nil
	}
	if r.err != nil {
		return 0, r.err
	}
	return r.take(<-r.results)
}

func (r *stdinReader) nextWithin(d time.Duration) (byte, bool) {
	if len(r.pending) > 0 || r.err != nil {
		b, err := r.next()
		return b, err == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case res := <-r.results:
		b, err := r.take(res)
		return b, err == nil
	case <-timer.C:
		return 0, false
	}
}

func (r *stdinReader) unread(b byte) {
	r.pending = append(r.pending, b)
}

// decodeEscape decodes what follows an ESC byte.
// Arrow keys arrive as CSI (ESC [) or SS3 (ESC O) sequences; F9 and F10 as ESC [ 2 0 ~ and ESC [ 2 1 ~.
// An ESC with nothing behind it within escapeTimeout is a plain escape key.
func decodeEscape(r byteReader) string {
	b2, ok := r.nextWithin(escapeTimeout)
	if !ok {
		return "escape"
	}
	if b2 != '[' && b2 != 'O' {
		r.unread(b2)
		return "escape"
	}

	b3, ok := r.nextWithin(escapeTimeout)
	if !ok {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	case '2':
		b4, ok := r.nextWithin(escapeTimeout)
		if !ok {
			return ""
		}
		b5, ok := r.nextWithin(escapeTimeout)
		if !ok {
			return ""
		}
		if b5 == '~' {
			switch b4 {
			case '0':
				return "f9"
			case '1':
				return "f10"
			}
		}
	}
	// Unknown escape sequence - discard it
	return ""
}

// decodeKey turns the first byte of a key press into a binding code
func decodeKey(b byte, r byteReader) string {
	switch {
	case b == 0x1b:
		return decodeEscape(r)
	case b == 3:
		return "ctrl_c"
	case b == '\n' || b == '\r':
		return "enter"
	case b >= 32 && b < 127:
		return string(b)
	default:
		return ""
	}
}

// ReadKey puts the terminal into raw mode, waits for one key and returns it as a RawInput
func ReadKey() (RawInput, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return RawInput{}, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	return readKeyFrom(stdinBytes())
}

func readKeyFrom(r byteReader) (RawInput, error) {
	b, err := r.next()
	if err != nil {
		return RawInput{}, fmt.Errorf("cannot read stdin: %w", err)
	}

	return RawInput{
		Device:    DeviceTerminal,
		Code:      decodeKey(b, r),
		Timestamp: time.Now(),
	}, nil
}

// IsTerminal reports whether stdin is an interactive terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
