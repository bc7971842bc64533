// Package sheet implements a draggable, snapping bottom sheet as a
// framework-agnostic state machine. The engine consumes decoded drag events
// and animation-frame ticks from a host event loop, owns the sheet's current
// offset, and picks snap targets with a hysteresis bias toward the position
// it last snapped to. Rendering, gesture decoding, and tick scheduling belong
// to the front end (see internal/sheetui for the bubbletea one).
package sheet

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// State is the engine's current mode. Exactly one owner mutates the offset in
// each state: user input while Dragging, the timed interpolation while
// Animating, nobody while Idle.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateAnimating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateAnimating:
		return "animating"
	}
	return "unknown"
}

// snapStickiness divides the distance to the last-snapped position when
// picking the closest target, making the current resting position ten times
// harder to leave than a raw nearest-distance comparison would imply.
const snapStickiness = 10.0

// DefaultHandleHeight is the grab-handle height used when Options leaves it zero.
const DefaultHandleHeight = 75.0

// Callbacks notify the host of sheet movement. Every field is optional; a nil
// callback suppresses the notification without changing any state transition.
type Callbacks struct {
	// OnMove fires with the new offset on every drag update and every
	// animation tick.
	OnMove func(offset float64)
	// OnSnapBegin fires once, synchronously, when a snap animation starts,
	// before the first tick.
	OnSnapBegin func()
	// OnSnapEnd fires exactly once when a snap animation runs to completion.
	// It never fires for a canceled animation.
	OnSnapEnd func()
}

// Options configures a new Engine.
type Options struct {
	// SnapPositions is the ordered list of resting positions. Order matters:
	// ties in the closest-position selection go to the earliest entry. Nil
	// means DefaultPositions; an explicitly empty list is a configuration
	// error.
	SnapPositions []*SnapPosition
	// InitialPosition is where the sheet rests once bounds are first known.
	// Defaults to SnapPositions[0]. It does not have to be a member of
	// SnapPositions, but if it is not, the sheet can never snap back to it
	// once left.
	InitialPosition *SnapPosition
	// HandleHeight is subtracted from the available height before resolving
	// fractional positions, so fractions are relative to the space below the
	// grab handle. Zero means DefaultHandleHeight.
	HandleHeight float64
	// Controller, when set, is attached to this engine for programmatic
	// snaps until Close.
	Controller *Controller
	Callbacks  Callbacks
	// Clock supplies the current time for animation progress. Defaults to
	// time.Now. Tests inject a fake.
	Clock func() time.Time
}

type animation struct {
	target   *SnapPosition
	from, to float64
	start    time.Time
}

// Engine is the drag-and-snap state machine. It is not safe for concurrent
// use: all methods must be called from the host's single event loop.
type Engine struct {
	positions    []*SnapPosition
	initial      *SnapPosition
	handleHeight float64
	cb           Callbacks
	clock        func() time.Time
	controller   *Controller
	detach       func()

	state       State
	bounds      Bounds
	seeded      bool
	offset      float64
	lastSnapped *SnapPosition
	anim        *animation
	generation  uint64
}

// NewEngine validates the configuration and creates an engine. The current
// offset is not seeded until SetBounds first reports a positive height.
func NewEngine(opts Options) (*Engine, error) {
	if opts.SnapPositions == nil {
		opts.SnapPositions = DefaultPositions()
	}
	if len(opts.SnapPositions) == 0 {
		return nil, errors.New("sheet: at least one snap position is required")
	}
	for i, p := range opts.SnapPositions {
		if p == nil {
			return nil, fmt.Errorf("sheet: snap position %d is nil", i)
		}
	}
	initial := opts.InitialPosition
	if initial == nil {
		initial = opts.SnapPositions[0]
	}
	handleHeight := opts.HandleHeight
	if handleHeight == 0 {
		handleHeight = DefaultHandleHeight
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	e := &Engine{
		positions:    opts.SnapPositions,
		initial:      initial,
		handleHeight: handleHeight,
		cb:           opts.Callbacks,
		clock:        clock,
		controller:   opts.Controller,
	}
	if e.controller != nil {
		e.detach = e.controller.attach(e.SnapTo, e.positions)
	}
	return e, nil
}

// SetBounds caches the available space reported by the host. The first call
// with a positive height seeds the current offset from the initial position;
// later calls only refresh the cached bounds.
func (e *Engine) SetBounds(b Bounds) {
	e.bounds = b
	if !e.seeded && b.MaxHeight > 0 {
		e.offset = e.resolve(e.initial)
		e.lastSnapped = e.initial
		if e.controller != nil {
			e.controller.setCurrent(e.initial)
		}
		e.seeded = true
	}
}

// DragStart begins a user drag, canceling any in-flight animation. A stale
// tick from the canceled animation can never apply afterwards.
func (e *Engine) DragStart() {
	e.cancelAnimation()
	e.state = StateDragging
}

// DragUpdate applies a vertical drag delta in screen coordinates: a positive
// (downward) delta lowers the sheet. No clamping is performed; the sheet may
// be dragged past the configured extremes. Ignored outside a drag.
func (e *Engine) DragUpdate(deltaY float64) {
	if e.state != StateDragging {
		return
	}
	e.offset -= deltaY
	if e.cb.OnMove != nil {
		e.cb.OnMove(e.offset)
	}
}

// DragEnd finishes a drag and starts animating toward the closest snap
// position. Ignored outside a drag.
func (e *Engine) DragEnd() {
	if e.state != StateDragging {
		return
	}
	e.beginSnap(e.closest())
}

// SnapTo starts animating toward the given position from any state,
// canceling any in-flight animation first. Before the first layout pass, or
// with a nil target, it is a no-op.
func (e *Engine) SnapTo(target *SnapPosition) {
	if target == nil || !e.seeded {
		return
	}
	e.beginSnap(target)
}

// Tick advances an in-flight animation to the current clock time and reports
// whether the animation is still running. On completion the offset lands
// exactly on the target value and OnSnapEnd fires once. Outside an animation
// Tick reports false and does nothing.
func (e *Engine) Tick() bool {
	if e.state != StateAnimating || e.anim == nil {
		return false
	}
	a := e.anim
	t := 1.0
	if d := a.target.Duration(); d > 0 {
		t = float64(e.clock().Sub(a.start)) / float64(d)
		if t < 0 {
			t = 0
		}
	}
	if t >= 1 {
		e.offset = a.to
		e.anim = nil
		e.state = StateIdle
		if e.cb.OnMove != nil {
			e.cb.OnMove(e.offset)
		}
		if e.cb.OnSnapEnd != nil {
			e.cb.OnSnapEnd()
		}
		return false
	}
	e.offset = a.from + (a.to-a.from)*a.target.Curve()(t)
	if e.cb.OnMove != nil {
		e.cb.OnMove(e.offset)
	}
	return true
}

// Generation identifies the current animation epoch. It is bumped whenever an
// animation is started or canceled; front ends stamp scheduled ticks with it
// and drop any tick whose generation no longer matches.
func (e *Engine) Generation() uint64 { return e.generation }

// Close cancels any in-flight animation without firing callbacks and
// detaches the controller. The engine must not be used afterwards.
func (e *Engine) Close() {
	e.cancelAnimation()
	e.state = StateIdle
	if e.detach != nil {
		e.detach()
		e.detach = nil
	}
}

// State returns the engine's current mode.
func (e *Engine) State() State { return e.state }

// Offset returns the sheet's current raised height in pixels. Zero until
// bounds are first known.
func (e *Engine) Offset() float64 { return e.offset }

// LastSnapped returns the position the engine last settled at or began
// animating toward, or nil before the first layout pass.
func (e *Engine) LastSnapped() *SnapPosition { return e.lastSnapped }

// Positions returns the configured snap positions. The slice is shared and
// must not be mutated.
func (e *Engine) Positions() []*SnapPosition { return e.positions }

// Bounds returns the last bounds reported by the host.
func (e *Engine) Bounds() Bounds { return e.bounds }

// HandleHeight returns the configured grab-handle height.
func (e *Engine) HandleHeight() float64 { return e.handleHeight }

func (e *Engine) beginSnap(target *SnapPosition) {
	e.cancelAnimation()
	e.anim = &animation{
		target: target,
		from:   e.offset,
		to:     e.resolve(target),
		start:  e.clock(),
	}
	e.state = StateAnimating
	e.lastSnapped = target
	if e.controller != nil {
		e.controller.setCurrent(target)
	}
	if e.cb.OnSnapBegin != nil {
		e.cb.OnSnapBegin()
	}
}

func (e *Engine) cancelAnimation() {
	e.anim = nil
	e.generation++
}

// resolve converts a position to pixels against the space below the grab
// handle. Absolute positions are unaffected by the adjustment.
func (e *Engine) resolve(p *SnapPosition) float64 {
	return p.ResolveToPixels(e.bounds.MaxHeight - e.handleHeight)
}

// closest picks the snap position with the minimum hysteresis-adjusted
// distance to the current offset: the last-snapped position's distance is
// divided by snapStickiness, and ties go to the earliest configured entry.
func (e *Engine) closest() *SnapPosition {
	var best *SnapPosition
	bestDist := math.Inf(1)
	for _, p := range e.positions {
		d := math.Abs(e.resolve(p) - e.offset)
		if p == e.lastSnapped {
			d /= snapStickiness
		}
		if d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}
