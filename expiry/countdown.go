// Package expiry implements the self-destruct countdown of a room session.
package expiry

// State of a countdown. Expired is terminal until the next Arm.
type State int

const (
	Idle State = iota
	Armed
	Expired
)

func (s State) String() string {
	switch s {
	case Armed:
		return "armed"
	case Expired:
		return "expired"
	default:
		return "idle"
	}
}

// Countdown is a pure state machine: the owner feeds it one Tick per
// elapsed second. Countdown never touches the clock itself, so a single
// cadence drives it (re-arming can never double-tick) and tests advance
// virtual time by calling Tick.
type Countdown struct {
	state     State
	remaining int
}

func NewCountdown() *Countdown {
	return &Countdown{state: Idle}
}

// Arm resets the countdown to seconds. Arming while already armed
// replaces the previous countdown entirely.
func (c *Countdown) Arm(seconds int) {
	c.state = Armed
	c.remaining = seconds
}

// Disarm cancels the countdown without expiring it.
func (c *Countdown) Disarm() {
	c.state = Idle
	c.remaining = 0
}

// Tick consumes one elapsed second. It reports true exactly once, on
// the tick that reaches zero; ticks while idle or expired are no-ops.
func (c *Countdown) Tick() bool {
	if c.state != Armed {
		return false
	}
	c.remaining--
	if c.remaining > 0 {
		return false
	}
	c.remaining = 0
	c.state = Expired
	return true
}

func (c *Countdown) State() State {
	return c.state
}

// Remaining is the number of whole seconds left; only meaningful while
// the countdown is armed.
func (c *Countdown) Remaining() int {
	return c.remaining
}
