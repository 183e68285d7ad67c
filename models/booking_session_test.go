package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingSessionMergeTaken(t *testing.T) {
	s := BookingSession{TakenSlots: []string{"09:00"}}

	s.MergeTaken("10:00")
	assert.Equal(t, []string{"09:00", "10:00"}, s.TakenSlots)

	s.MergeTaken("10:00")
	assert.Equal(t, []string{"09:00", "10:00"}, s.TakenSlots, "merging the same slot twice must not duplicate it")
}

func TestBookingSessionReplaceTaken(t *testing.T) {
	s := BookingSession{TakenSlots: []string{"09:00", "10:00"}}

	fresh := []string{"11:00"}
	s.ReplaceTaken(fresh)
	assert.Equal(t, []string{"11:00"}, s.TakenSlots)

	fresh[0] = "mutated"
	assert.Equal(t, []string{"11:00"}, s.TakenSlots, "replace must copy, not alias, the fresh slice")

	s.ReplaceTaken(nil)
	assert.Empty(t, s.TakenSlots)
}
