package expiry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Countdown_expires_exactly_once(t *testing.T) {
	req := require.New(t)
	c := NewCountdown()

	c.Arm(60)
	req.Equal(Armed, c.State())

	expirations := 0
	for i := 0; i < 120; i++ {
		if c.Tick() {
			expirations++
		}
	}

	req.Equal(1, expirations)
	req.Equal(Expired, c.State())
	req.Equal(0, c.Remaining())
}

func Test_Countdown_rearm_replaces_the_previous_cadence(t *testing.T) {
	req := require.New(t)
	c := NewCountdown()

	// Arm with 5s, advance 3s, re-arm with 10s: expiry must land exactly
	// 10 ticks after the re-arm point, not 2 ticks later.
	c.Arm(5)
	for i := 0; i < 3; i++ {
		req.False(c.Tick())
	}

	c.Arm(10)
	for i := 0; i < 9; i++ {
		req.False(c.Tick(), "tick %d must not expire", i)
	}
	req.True(c.Tick())
}

func Test_Countdown_disarm_returns_to_idle(t *testing.T) {
	req := require.New(t)
	c := NewCountdown()

	c.Arm(3)
	req.False(c.Tick())

	c.Disarm()
	req.Equal(Idle, c.State())

	// Ticks while idle never expire.
	for i := 0; i < 10; i++ {
		req.False(c.Tick())
	}
	req.Equal(Idle, c.State())
}

func Test_Countdown_ticks_decrement_by_one_second(t *testing.T) {
	req := require.New(t)
	c := NewCountdown()

	c.Arm(4)
	req.Equal(4, c.Remaining())
	c.Tick()
	req.Equal(3, c.Remaining())
	c.Tick()
	req.Equal(2, c.Remaining())
}
