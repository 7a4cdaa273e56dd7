package server

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gliderlabs/ssh"

	"tilesystem/internal/render"
)

// SSHServer serves read-only atlas and map previews over SSH.
type SSHServer struct {
	addr    string
	hostKey string
	pages   []render.Page
	log     *slog.Logger
}

// NewSSHServer creates a new SSH server bound to the given address.
// Every session browses its own copy of pages.
func NewSSHServer(addr, hostKey string, pages []render.Page, log *slog.Logger) *SSHServer {
	if log == nil {
		log = slog.Default()
	}
	return &SSHServer{
		addr:    addr,
		hostKey: hostKey,
		pages:   pages,
		log:     log,
	}
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	// Set host key
	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	s.log.Info("SSH server listening", "addr", s.addr, "pages", len(s.pages))
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	// Require PTY
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	username := sess.User()
	if username == "" {
		username = "Anonymous"
	}
	log := s.log.With("user", username, "remote", sess.RemoteAddr().String())
	log.Info("viewer connected")
	defer log.Info("viewer disconnected")

	preview := render.NewPreview(s.pages, ptyReq.Window.Width, ptyReq.Window.Height)

	// Setup terminal
	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	io.WriteString(sess, render.ClearScreen())
	defer func() {
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
	}()
	io.WriteString(sess, preview.Render())

	// Input is read on its own goroutine; this loop is the only writer
	// to sess.
	done := make(chan struct{})
	defer close(done)
	input := make(chan []render.Action)
	go func() {
		defer close(input)
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				return
			}
			select {
			case input <- render.ParseInput(buf[:n]):
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case win, ok := <-winCh:
			if !ok {
				winCh = nil
				continue
			}
			preview.Resize(win.Width, win.Height)
			io.WriteString(sess, render.ClearScreen()+preview.Render())
		case actions, ok := <-input:
			if !ok {
				return
			}
			for _, action := range actions {
				if !preview.Apply(action) {
					return
				}
			}
			if out := preview.Render(); out != "" {
				io.WriteString(sess, out)
			}
		}
	}
}
