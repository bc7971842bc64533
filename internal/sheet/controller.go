// internal/sheet/controller.go
package sheet

import "errors"

// ErrNotMounted is returned by Controller.SnapTo when no engine is currently
// attached.
var ErrNotMounted = errors.New("sheet: no engine attached to controller")

// Controller is a long-lived handle that lets a caller command snaps and
// observe the sheet's active position without holding the engine itself. It
// may be constructed before any engine exists and reused across remounts:
// each engine attaches on construction and detaches on Close, and the latest
// attach wins.
type Controller struct {
	snapFn    func(*SnapPosition)
	regID     uint64
	positions []*SnapPosition
	current   *SnapPosition
}

// NewController creates a detached controller.
func NewController() *Controller {
	return &Controller{}
}

// SnapTo asks the attached engine to animate to the given position. It
// returns ErrNotMounted when no engine is attached; it never panics.
func (c *Controller) SnapTo(p *SnapPosition) error {
	if c.snapFn == nil {
		return ErrNotMounted
	}
	c.snapFn(p)
	return nil
}

// Current returns the position the engine last settled at or began animating
// toward, or nil before the first layout pass of the first mount. The value
// survives detaching so late observers still see where the sheet ended up.
func (c *Controller) Current() *SnapPosition {
	return c.current
}

// Positions returns the snap positions of the most recently attached engine.
// The slice is shared and must not be mutated.
func (c *Controller) Positions() []*SnapPosition {
	return c.positions
}

// Mounted reports whether an engine is currently attached.
func (c *Controller) Mounted() bool {
	return c.snapFn != nil
}

// attach registers the engine's snap callback and position list, replacing
// any previous registration. The returned detach releases only its own
// registration: a stale detach left over from a previous mount is a no-op, so
// closing an old engine after a remount cannot disconnect the new one.
func (c *Controller) attach(snapFn func(*SnapPosition), positions []*SnapPosition) (detach func()) {
	c.regID++
	id := c.regID
	c.snapFn = snapFn
	c.positions = positions
	return func() {
		if c.regID != id {
			return
		}
		c.snapFn = nil
	}
}

func (c *Controller) setCurrent(p *SnapPosition) {
	c.current = p
}
