// Package render draws images on the terminal through chafa.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ErrUnavailable is returned by Render when no chafa executable was found.
var ErrUnavailable = errors.New("terminal image renderer not available")

// Fixed display parameters.
var chafaArgs = []string{"--symbols=block", "--size=60x30"}

// Chafa renders images with the chafa executable.
type Chafa struct {
	path   string
	stderr io.Writer
}

// NewChafa resolves name (a bare command or a path) on PATH. A missing
// executable is not an error; Available reports false instead.
func NewChafa(name string) *Chafa {
	c := &Chafa{stderr: os.Stderr}
	if name == "" {
		return c
	}
	if path, err := exec.LookPath(name); err == nil {
		c.path = path
	}
	return c
}

func (c *Chafa) Available() bool {
	return c.path != ""
}

// Render runs chafa against path, sending its output to w.
func (c *Chafa) Render(ctx context.Context, w io.Writer, path string) error {
	if !c.Available() {
		return ErrUnavailable
	}

	args := append(append([]string(nil), chafaArgs...), path)
	cmd := exec.CommandContext(ctx, c.path, args...)
	cmd.Stdout = w
	cmd.Stderr = c.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", c.path, err)
	}
	return nil
}
