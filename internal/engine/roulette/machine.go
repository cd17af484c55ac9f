// Package roulette implements the time-driven animation state machine
// behind a roll: a cosmetic idle drift, a spin easing onto a
// predetermined winner, and a landed terminal state. The machine is
// advanced by frame callbacks and never blocks; randomness and timing
// are injected so runs are reproducible in tests.
package roulette

import (
	"math"
	"time"

	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/errors"
	"github.com/genroll/roulette-api/internal/pkg/rng"
)

// State identifies the machine's animation phase
type State string

// Machine states
const (
	StateIdleDrift State = "idle_drift"
	StateSpinning  State = "spinning"
	StateLanded    State = "landed"
)

const (
	// driftSpeed is the idle scroll rate in pixels per second
	driftSpeed = 26.0

	// The drift sequence repeats the pool enough times to fill at least
	// minDriftCards cards, and never fewer than minDriftRepeats cycles.
	minDriftCards   = 48
	minDriftRepeats = 6

	// The spin sequence is at least minSpinCards long and extends
	// landingTail cards past the landing slot.
	minSpinCards = 52
	landingTail  = 10

	// The landing slot is chosen uniformly from
	// [landingSlotBase, landingSlotBase+landingSlotSpread).
	landingSlotBase   = 44
	landingSlotSpread = 8

	// startSlot is the card centered under the pointer when a spin begins
	startSlot = 2
)

// Geometry describes the track the offset animates across. All values
// are in pixels.
type Geometry struct {
	CardWidth     float64
	Gap           float64
	ViewportWidth float64
}

// DefaultGeometry mirrors the view's five-card window
func DefaultGeometry() Geometry {
	g := Geometry{CardWidth: 150, Gap: 12}
	g.ViewportWidth = g.Unit()*5 - g.Gap
	return g
}

// Unit is the horizontal stride from one card to the next
func (g Geometry) Unit() float64 {
	return g.CardWidth + g.Gap
}

// CenterOnIndex returns the track offset placing the given card index
// under the pointer at the viewport center.
func (g Geometry) CenterOnIndex(index int) float64 {
	return g.ViewportWidth/2 - (float64(index)*g.Unit() + g.CardWidth/2)
}

// pointerIndex returns the card index currently under the pointer
func (g Geometry) pointerIndex(offset float64) int {
	return int(math.Floor((g.ViewportWidth/2 - offset - g.CardWidth/2) / g.Unit()))
}

// easeOutCubic maps linear progress to the deceleration curve
func easeOutCubic(progress float64) float64 {
	return 1 - math.Pow(1-progress, 3)
}

// Config holds the dependencies for a roulette machine
type Config struct {
	RNG      rng.Source
	Geometry Geometry

	// OnTick fires once per card-boundary crossing during a spin
	OnTick func()

	// OnLanded fires exactly once per spin, carrying the winner
	OnLanded func(winner catalog.Item)
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.RNG == nil {
		return errors.InvalidArgument("rng source is required")
	}
	return nil
}

// Machine is one stage's roulette. Instances are independent; the caller
// serializes access (single-writer cooperative scheduling).
type Machine struct {
	rng      rng.Source
	geometry Geometry
	onTick   func()
	onLanded func(winner catalog.Item)

	state   State
	pool    []catalog.Item
	display []catalog.Item
	offset  float64

	// drift
	lastFrame time.Time

	// spin
	spinStart     time.Time
	duration      time.Duration
	startOffset   float64
	targetOffset  float64
	winner        catalog.Item
	landingSlot   int
	lastTickIndex int
	tickPrimed    bool

	selected *catalog.Item
}

// New creates a roulette machine in the idle-drift state
func New(cfg *Config) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	geometry := cfg.Geometry
	if geometry.Unit() <= 0 {
		geometry = DefaultGeometry()
	}

	return &Machine{
		rng:      cfg.RNG,
		geometry: geometry,
		onTick:   cfg.OnTick,
		onLanded: cfg.OnLanded,
		state:    StateIdleDrift,
	}, nil
}

// State returns the current animation phase
func (m *Machine) State() State {
	return m.state
}

// Offset returns the current track offset in pixels
func (m *Machine) Offset() float64 {
	return m.offset
}

// Display returns the card sequence currently on the track
func (m *Machine) Display() []catalog.Item {
	return m.display
}

// Selected returns the landed winner, or nil before landing or after a
// clear.
func (m *Machine) Selected() *catalog.Item {
	return m.selected
}

// LandingSlot returns the slot index of the current or last spin
func (m *Machine) LandingSlot() int {
	return m.landingSlot
}

// SetPool replaces the draw pool. Outside of a spin the drift sequence
// is rebuilt immediately; during a spin the running display is left
// untouched and the new pool applies from the next spin.
func (m *Machine) SetPool(items []catalog.Item) {
	m.pool = items
	if m.state == StateSpinning {
		return
	}
	if m.selected != nil && !poolContains(items, m.selected.ID) {
		// The landed item fell out of the pool; drop the selection.
		m.selected = nil
		m.state = StateIdleDrift
	}
	m.rebuildDrift()
}

// Spin begins a roll. It is a no-op returning false when the pool is
// empty or a spin is already in progress.
func (m *Machine) Spin(now time.Time, duration time.Duration) bool {
	if m.state == StateSpinning || len(m.pool) == 0 {
		return false
	}

	m.winner = m.pool[m.rng.Intn(len(m.pool))]
	m.landingSlot = landingSlotBase + m.rng.Intn(landingSlotSpread)
	m.display = m.buildSpinSequence(m.landingSlot, m.winner)

	m.startOffset = m.geometry.CenterOnIndex(startSlot)
	m.targetOffset = m.geometry.CenterOnIndex(m.landingSlot)
	m.offset = m.startOffset
	m.spinStart = now
	m.duration = duration
	m.tickPrimed = false
	m.selected = nil
	m.state = StateSpinning
	return true
}

// Clear drops a landed selection and resumes idle drift. Clearing while
// idle or spinning is a no-op.
func (m *Machine) Clear() {
	if m.state != StateLanded {
		return
	}
	m.selected = nil
	m.state = StateIdleDrift
	m.rebuildDrift()
}

// Advance moves the animation to the given frame time. During a spin it
// fires edge-triggered tick events per card-boundary crossing and, on
// completion, snaps to the target and fires the landed event once.
func (m *Machine) Advance(now time.Time) {
	switch m.state {
	case StateSpinning:
		m.advanceSpin(now)
	case StateIdleDrift:
		m.advanceDrift(now)
	case StateLanded:
		// Stationary until cleared.
		m.lastFrame = time.Time{}
	}
}

func (m *Machine) advanceDrift(now time.Time) {
	if len(m.pool) == 0 || len(m.display) == 0 {
		m.lastFrame = time.Time{}
		return
	}

	if m.lastFrame.IsZero() {
		m.lastFrame = now
		return
	}

	delta := now.Sub(m.lastFrame)
	m.lastFrame = now
	m.offset -= delta.Seconds() * driftSpeed

	cycleWidth := float64(len(m.pool)) * m.geometry.Unit()
	if m.offset <= -cycleWidth {
		m.offset += cycleWidth
	}
}

func (m *Machine) advanceSpin(now time.Time) {
	elapsed := now.Sub(m.spinStart)
	progress := float64(elapsed) / float64(m.duration)
	if progress > 1 {
		progress = 1
	}
	if progress < 0 {
		progress = 0
	}

	m.offset = m.startOffset + (m.targetOffset-m.startOffset)*easeOutCubic(progress)
	m.emitBoundaryTick()

	if progress >= 1 {
		m.offset = m.targetOffset
		m.state = StateLanded
		m.lastFrame = time.Time{}
		m.tickPrimed = false
		winner := m.winner
		m.selected = &winner
		if m.onLanded != nil {
			m.onLanded(winner)
		}
	}
}

// emitBoundaryTick fires at most once per card-index change under the
// pointer. The first observation only primes the edge detector, so a
// stationary offset never re-fires.
func (m *Machine) emitBoundaryTick() {
	index := m.geometry.pointerIndex(m.offset)
	if !m.tickPrimed {
		m.tickPrimed = true
		m.lastTickIndex = index
		return
	}
	if index != m.lastTickIndex {
		m.lastTickIndex = index
		if m.onTick != nil {
			m.onTick()
		}
	}
}

// rebuildDrift replicates the pool to fill the minimum card budget and
// resets the offset.
func (m *Machine) rebuildDrift() {
	m.offset = 0
	m.lastFrame = time.Time{}

	if len(m.pool) == 0 {
		m.display = nil
		return
	}

	repeats := (minDriftCards + len(m.pool) - 1) / len(m.pool)
	if repeats < minDriftRepeats {
		repeats = minDriftRepeats
	}

	sequence := make([]catalog.Item, 0, repeats*len(m.pool))
	for i := 0; i < repeats; i++ {
		sequence = append(sequence, m.pool...)
	}
	m.display = sequence
}

// buildSpinSequence fills the track with independent uniform picks and
// forces the winner into the landing slot.
func (m *Machine) buildSpinSequence(slot int, winner catalog.Item) []catalog.Item {
	length := minSpinCards
	if slot+landingTail > length {
		length = slot + landingTail
	}

	sequence := make([]catalog.Item, length)
	for i := range sequence {
		if i == slot {
			sequence[i] = winner
			continue
		}
		sequence[i] = m.pool[m.rng.Intn(len(m.pool))]
	}
	return sequence
}

func poolContains(items []catalog.Item, id string) bool {
	for i := range items {
		if items[i].ID == id {
			return true
		}
	}
	return false
}
