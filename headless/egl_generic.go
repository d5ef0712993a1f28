//go:build !linux

package headless

import (
	"fmt"

	"github.com/richinsley/golava/graphics"
)

// Context is unavailable off Linux.
type Context struct {
	graphics.Context
}

func New(width, height int) (*Context, error) {
	return nil, fmt.Errorf("%w: egl headless rendering is not supported on this platform", graphics.ErrContextUnavailable)
}
