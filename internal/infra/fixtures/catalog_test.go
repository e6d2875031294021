package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOffers(t *testing.T) {
	catalog := NewCatalog()

	offers, err := catalog.GetOffers(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 2)

	assert.Equal(t, "FIRST50", offers[0].Code)
	assert.Equal(t, 50.0, offers[0].Savings(500))

	assert.Equal(t, "SAVE10", offers[1].Code)
	assert.Equal(t, 50.0, offers[1].Savings(500))
	assert.Equal(t, 100.0, offers[1].Savings(5000))
}

func TestGetTimeSlots(t *testing.T) {
	catalog := NewCatalog()

	groups, err := catalog.GetTimeSlots(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "morning", groups[0].Period)
	assert.Equal(t, "afternoon", groups[1].Period)
	assert.Equal(t, "evening", groups[2].Period)

	for _, group := range groups {
		for _, slot := range group.Slots {
			assert.NoError(t, slot.Validate())
		}
	}
}
