// Package darkmode holds the per-session reactive state machine that maps an
// external toggle signal onto the current theme handle.
package darkmode

import (
	"github.com/alexisbeaulieu97/brandkit/internal/theme"
)

// SignalDark is the literal toggle value that selects dark mode; any other
// signal value selects light.
const SignalDark = "dark"

// Controller tracks the current mode for a single owning session. The light
// handle is built eagerly at construction; the dark handle is built on the
// first transition into dark mode and cached for the controller's lifetime
// (lazy-cached policy). State is confined to its owner, so no locking.
type Controller struct {
	builder *theme.Builder

	mode      theme.Mode
	light     *theme.Handle
	dark      *theme.Handle
	current   *theme.Handle
	listeners []func(*theme.Handle)
}

// New constructs a Controller in light mode.
func New(builder *theme.Builder) (*Controller, error) {
	light, err := builder.Build(theme.ModeLight)
	if err != nil {
		return nil, err
	}
	return &Controller{
		builder: builder,
		mode:    theme.ModeLight,
		light:   light,
		current: light,
	}, nil
}

// Subscribe registers a listener invoked whenever the current theme handle
// changes value. The contract is change-driven: a signal that reports the
// mode already in effect produces no notification.
func (c *Controller) Subscribe(fn func(*theme.Handle)) {
	if fn == nil {
		return
	}
	c.listeners = append(c.listeners, fn)
}

// Observe feeds one external toggle signal observation into the controller.
func (c *Controller) Observe(signal string) error {
	next := theme.ModeLight
	if signal == SignalDark {
		next = theme.ModeDark
	}

	if next == c.mode {
		return nil
	}

	handle := c.light
	if next == theme.ModeDark {
		if c.dark == nil {
			built, err := c.builder.Build(theme.ModeDark)
			if err != nil {
				return err
			}
			if built.Mode != theme.ModeDark {
				// No dark palette configured: dark mode degrades to the
				// light handle and repeated toggles stay silent.
				built = c.light
			}
			c.dark = built
		}
		handle = c.dark
	}

	c.mode = next
	if handle == c.current {
		// A brand without a dark palette degrades to the light handle; the
		// theme value did not change, so consumers are not re-rendered.
		return nil
	}

	c.current = handle
	for _, fn := range c.listeners {
		fn(handle)
	}
	return nil
}

// Mode returns the current mode.
func (c *Controller) Mode() theme.Mode {
	return c.mode
}

// Theme returns the handle for the current mode.
func (c *Controller) Theme() *theme.Handle {
	return c.current
}
