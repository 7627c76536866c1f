// Package server exposes the websocket channel an overlay client talks to:
// inbound configuration pushes, activation requests, and file-resolution
// requests. A channel failure never takes the process down; the overlay
// simply loses its click-to-open affordance.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/uilens-dev/uilens/internal/batch"
	"github.com/uilens-dev/uilens/internal/config"
	"github.com/uilens-dev/uilens/internal/session"
	"github.com/uilens-dev/uilens/internal/sourcemap"
)

const (
	writeWait = 10 * time.Second
	pongWait  = 60 * time.Second
	pingEvery = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		// Dev tooling; the channel binds to a local dev port.
		return true
	},
}

type Server struct {
	opts       config.Options
	session    *session.Session
	scheduler  batch.Scheduler
	launcher   Launcher
	httpServer *http.Server
}

// New wires the channel server. A nil scheduler falls back to a serial
// executor; a nil launcher falls back to logging.
func New(opts config.Options, sess *session.Session, scheduler batch.Scheduler, launcher Launcher) *Server {
	if scheduler == nil {
		scheduler = batch.NewSerial()
	}
	if launcher == nil {
		launcher = LogLauncher{}
	}
	s := &Server{
		opts:      opts,
		session:   sess,
		scheduler: scheduler,
		launcher:  launcher,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/uilens", s.handleSocket)
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: mux,
	}
	return s
}

func (s *Server) Start() error {
	log.Printf("uilens: channel listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	writeCh := make(chan outboundMessage, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(pingEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	send := func(out outboundMessage) {
		select {
		case writeCh <- out:
		case <-ctx.Done():
			// Connection gone; output is discarded, per the no-cancellation
			// policy for in-flight activations.
		}
	}

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			cancel()
			<-writerDone
			return
		}
		s.dispatch(msg, send)
	}
}

func (s *Server) dispatch(msg inboundMessage, send func(outboundMessage)) {
	switch msg.Type {
	case "config":
		s.applyConfig(msg)
	case "activate":
		s.handleActivate(msg, send)
	case "open":
		s.handleOpen(msg, send)
	case "rebuild":
		s.handleRebuild()
	case "registerSource":
		s.handleRegisterSource(msg)
	default:
		log.Printf("uilens: ignoring unknown message type %q", msg.Type)
	}
}

// applyConfig handles one idempotent per-category set call. Later calls
// fully replace prior values for that one category only.
func (s *Server) applyConfig(msg inboundMessage) {
	switch msg.Category {
	case "projectRoot":
		// An explicit --source-path keeps the highest precedence.
		if s.opts.SourcePath == "" {
			s.session.SetProjectRoot(msg.ProjectRoot)
		}
	case "usageMap":
		s.session.ReplaceUsageMap(msg.UsageMap)
	case "importMap":
		s.session.ReplaceImportMap(msg.ImportMap)
	case "projectFiles":
		s.session.ReplaceProjectFiles(msg.ProjectFiles)
	case "mode":
		s.session.SetMode(msg.Mode)
	default:
		log.Printf("uilens: ignoring unknown config category %q", msg.Category)
	}
}

func (s *Server) handleRebuild() {
	root := s.session.ProjectRoot()
	if root == "" {
		log.Printf("uilens: rebuild requested with no project root established")
		return
	}
	result, err := sourcemap.Scan(root)
	if err != nil {
		log.Printf("uilens: source map rebuild failed: %v", err)
		return
	}
	s.session.ReplaceSourceMap(result.Map)
	for _, issue := range result.Issues {
		log.Printf("uilens: scan issue %s: %s", issue.File, issue.Message)
	}
}

func (s *Server) handleRegisterSource(msg inboundMessage) {
	if msg.Name == "" || msg.File == "" {
		return
	}
	candidate := sourcemap.CandidateFor(s.session.ProjectRoot(), msg.File)
	s.session.RegisterSource(msg.Name, candidate)
}
