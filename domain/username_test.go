package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_random_usernames_follow_the_adjective_noun_suffix_shape(t *testing.T) {
	require := require.New(t)
	shape := regexp.MustCompile(`^([A-Z][a-z]+)([A-Z][a-z]+)(\d{1,2})$`)

	for i := 0; i < 200; i++ {
		name := RandomUsername()
		parts := shape.FindStringSubmatch(name)
		require.Len(parts, 4, "unexpected username %q", name)
		assert.True(t, lo.Contains(usernameAdjectives, parts[1]), "unknown adjective in %q", name)
		assert.True(t, lo.Contains(usernameNouns, parts[2]), "unknown noun in %q", name)
	}
}

func TestNewMessage_assigns_a_fresh_id_per_call(t *testing.T) {
	require := require.New(t)

	now := time.Now()
	a := NewMessage("alice", "hi", KindText, now)
	b := NewMessage("alice", "hi", KindText, now)

	require.NotEqual(a.ID, b.ID)
	assert.Equal(t, KindText, a.Kind)
}
