package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, PairKey("alice", "bob"), PairKey("bob", "alice"))
	assert.Equal(t, "alice#bob", PairKey("bob", "alice"))
}

func TestHasParticipant(t *testing.T) {
	match := Match{Participants: []string{"alice", "bob"}}

	assert.True(t, match.HasParticipant("alice"))
	assert.True(t, match.HasParticipant("bob"))
	assert.False(t, match.HasParticipant("mallory"))
}

func TestCounterpartOf(t *testing.T) {
	match := Match{Participants: []string{"alice", "bob"}}

	assert.Equal(t, "bob", match.CounterpartOf("alice"))
	assert.Equal(t, "alice", match.CounterpartOf("bob"))
	assert.Empty(t, match.CounterpartOf("mallory"))
}

func TestIsAccepted(t *testing.T) {
	assert.True(t, (&Match{Status: StatusAccepted}).IsAccepted())
	assert.False(t, (&Match{Status: StatusPending}).IsAccepted())
	assert.False(t, (&Match{Status: StatusDeclined}).IsAccepted())
}
