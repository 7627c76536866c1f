package server

import (
	"fmt"
	"log"
	"os/exec"
)

// Launcher is the hook an embedding collaborator implements to open a
// resolved file in an editor. Launch mechanics are outside the core; the
// default implementation only logs.
type Launcher interface {
	Open(path string) error
}

// LogLauncher logs the resolved file and opens nothing.
type LogLauncher struct{}

func (LogLauncher) Open(path string) error {
	log.Printf("uilens: resolved source file %s (no editor launcher configured)", path)
	return nil
}

// EditorLauncher spawns the configured editor command with the resolved
// file as its single argument. The spawn is fire-and-forget.
type EditorLauncher struct {
	Command string
}

func (l EditorLauncher) Open(path string) error {
	cmd := exec.Command(l.Command, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch editor %q: %w", l.Command, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
