package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityFor(t *testing.T) {
	tests := []struct {
		name string
		days float64
		want Priority
	}{
		{name: "well under a day", days: 0.1, want: PriorityLow},
		{name: "exactly one day", days: 1, want: PriorityLow},
		{name: "just over one day", days: 1.5, want: PriorityMedium},
		{name: "exactly three days", days: 3, want: PriorityMedium},
		{name: "over three days", days: 3.5, want: PriorityHigh},
		{name: "a long estimate", days: 14, want: PriorityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriorityFor(tt.days))
		})
	}
}

func TestPriority_Badge(t *testing.T) {
	assert.Equal(t, BadgeSuccess, PriorityLow.Badge())
	assert.Equal(t, BadgeWarning, PriorityMedium.Badge())
	assert.Equal(t, BadgeDanger, PriorityHigh.Badge())
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, Status("Done").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatus_Badge(t *testing.T) {
	assert.Equal(t, BadgeSuccess, StatusCompleted.Badge())
	assert.Equal(t, BadgeWarning, StatusInProgress.Badge())
	assert.Equal(t, BadgeDanger, StatusBlocked.Badge())
	assert.Equal(t, BadgeSecondary, StatusTodo.Badge())
	assert.Equal(t, BadgeSecondary, Status("Done").Badge())
}
