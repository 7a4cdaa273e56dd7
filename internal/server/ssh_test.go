package server

import (
	"io"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gliderlabs/ssh"

	"tilesystem/internal/pixel"
	"tilesystem/internal/render"
)

// fakeSession feeds scripted input and window changes and records writes.
type fakeSession struct {
	ssh.Session

	window ssh.Window
	winCh  chan ssh.Window
	input  chan []byte
	wrote  chan struct{}

	mu     sync.Mutex
	writes []string
}

func newFakeSession(w, h int) *fakeSession {
	return &fakeSession{
		window: ssh.Window{Width: w, Height: h},
		winCh:  make(chan ssh.Window),
		input:  make(chan []byte),
		wrote:  make(chan struct{}, 256),
	}
}

func (f *fakeSession) Pty() (ssh.Pty, <-chan ssh.Window, bool) {
	return ssh.Pty{Term: "xterm", Window: f.window}, f.winCh, true
}

func (f *fakeSession) User() string { return "tester" }

func (f *fakeSession) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 2222}
}

func (f *fakeSession) Read(p []byte) (int, error) {
	data, ok := <-f.input
	if !ok {
		return 0, io.EOF
	}
	return copy(p, data), nil
}

func (f *fakeSession) Write(p []byte) (int, error) {
	f.mu.Lock()
	f.writes = append(f.writes, string(p))
	f.mu.Unlock()
	f.wrote <- struct{}{}
	return len(p), nil
}

func (f *fakeSession) snapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.writes...)
}

// waitWrite blocks until a write after index from satisfies match and
// returns its index.
func (f *fakeSession) waitWrite(t *testing.T, from int, match func(string) bool) int {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		for i, w := range f.snapshot() {
			if i >= from && match(w) {
				return i
			}
		}
		select {
		case <-f.wrote:
		case <-deadline:
			t.Fatalf("no matching write after %d; writes: %q", from, f.snapshot())
		}
	}
}

// cellCount counts cells painted by a frame; every cell starts a fresh SGR.
func cellCount(frame string) int {
	return strings.Count(frame, "\x1b[0;")
}

func TestHandleSessionResizeRepaints(t *testing.T) {
	pages := []render.Page{
		{Title: "one", Image: pixel.NewBuffer(8, 8)},
		{Title: "two", Image: pixel.NewBuffer(16, 16)},
	}
	s := NewSSHServer(":0", "", pages, quietLogger())
	sess := newFakeSession(40, 12)

	done := make(chan struct{})
	go func() {
		s.handleSession(sess)
		close(done)
	}()
	defer close(sess.input)

	first := sess.waitWrite(t, 0, func(w string) bool { return cellCount(w) == 40*12 })

	sess.winCh <- ssh.Window{Width: 30, Height: 10}
	resized := sess.waitWrite(t, first+1, func(w string) bool {
		return strings.HasPrefix(w, render.ClearScreen())
	})
	if got := cellCount(sess.snapshot()[resized]); got != 30*10 {
		t.Errorf("resize frame painted %d cells, want a full repaint of %d", got, 30*10)
	}

	sess.input <- []byte("n")
	next := sess.waitWrite(t, resized+1, func(w string) bool { return cellCount(w) > 0 })
	frame := sess.snapshot()[next]
	if strings.HasPrefix(frame, render.ClearScreen()) || cellCount(frame) >= 30*10 {
		t.Errorf("page change after resize should be a diff, got %d cells", cellCount(frame))
	}

	sess.input <- []byte("q")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("session did not end on quit")
	}
	writes := sess.snapshot()
	if last := writes[len(writes)-1]; last != render.DisableAltScreen() {
		t.Errorf("last write = %q, want alt screen restored", last)
	}
}

func TestHandleSessionRequiresPty(t *testing.T) {
	sess := &noPtySession{}
	NewSSHServer(":0", "", nil, quietLogger()).handleSession(sess)
	if !strings.Contains(sess.out.String(), "PTY required") {
		t.Errorf("output = %q", sess.out.String())
	}
}

type noPtySession struct {
	ssh.Session
	out strings.Builder
}

func (n *noPtySession) Pty() (ssh.Pty, <-chan ssh.Window, bool) { return ssh.Pty{}, nil, false }

func (n *noPtySession) Write(p []byte) (int, error) { return n.out.Write(p) }
