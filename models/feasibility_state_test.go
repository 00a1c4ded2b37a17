package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeasibilityState_HappyPath(t *testing.T) {
	c := &Candidate{}

	require.NoError(t, GetFeasibilityState(c.Status).DatesAvailable(c))
	assert.Equal(t, FeasibilityDatesAvailable, c.Status)

	require.NoError(t, GetFeasibilityState(c.Status).Accept(c))
	assert.Equal(t, FeasibilityFeasible, c.Status)
}

func TestFeasibilityState_RejectKeepsReason(t *testing.T) {
	c := &Candidate{}

	require.NoError(t, GetFeasibilityState(c.Status).DatesAvailable(c))
	require.NoError(t, GetFeasibilityState(c.Status).Reject(c, "price out of range"))

	assert.Equal(t, FeasibilityRejected, c.Status)
	assert.Equal(t, "price out of range", c.Reason)
}

func TestFeasibilityState_TerminalStates(t *testing.T) {
	rejected := &Candidate{Status: FeasibilityRejected}
	assert.Error(t, GetFeasibilityState(rejected.Status).Accept(rejected))
	assert.Error(t, GetFeasibilityState(rejected.Status).DatesAvailable(rejected))

	feasible := &Candidate{Status: FeasibilityFeasible}
	assert.Error(t, GetFeasibilityState(feasible.Status).Reject(feasible, "late"))
	assert.Equal(t, FeasibilityFeasible, feasible.Status)
}

func TestAccommodation_Helpers(t *testing.T) {
	acc := Accommodation{
		Amenities: map[string]bool{"wifi": true, "TV": false},
		MinGuests: 2,
		MaxGuests: 4,
	}

	assert.True(t, acc.HasAmenity(AmenityWiFi))
	assert.False(t, acc.HasAmenity(AmenityTV))
	assert.False(t, acc.HasAmenity(AmenityAC))

	assert.False(t, acc.FitsGuests(1))
	assert.True(t, acc.FitsGuests(4))
	assert.False(t, acc.FitsGuests(5))
}
