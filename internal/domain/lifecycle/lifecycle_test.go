package lifecycle

import (
	"testing"
	"time"

	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_AllowedTransitions(t *testing.T) {
	tests := []struct {
		from   entity.Status
		action Action
		want   entity.Status
	}{
		{entity.StatusPending, ActionApprove, entity.StatusApproved},
		{entity.StatusApproved, ActionApprove, entity.StatusApproved},
		{entity.StatusApproved, ActionUnapprove, entity.StatusPending},
		{entity.StatusPending, ActionUnapprove, entity.StatusPending},
		{entity.StatusPending, ActionSoftDelete, entity.StatusDeleted},
		{entity.StatusApproved, ActionSoftDelete, entity.StatusDeleted},
		{entity.StatusDeleted, ActionRecover, entity.StatusApproved},
		{entity.StatusApproved, ActionRecover, entity.StatusApproved},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			got, err := Next(tt.from, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNext_RejectedTransitions(t *testing.T) {
	tests := []struct {
		from   entity.Status
		action Action
	}{
		{entity.StatusDeleted, ActionApprove},
		{entity.StatusDeleted, ActionUnapprove},
		{entity.StatusDeleted, ActionSoftDelete},
		{entity.StatusPending, ActionRecover},
		{entity.StatusApproved, Action("publish")},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			got, err := Next(tt.from, tt.action)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
			assert.Equal(t, tt.from, got)
		})
	}
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)

		return &ts
	}
	day := 24 * time.Hour

	tests := []struct {
		name      string
		deletedAt *time.Time
		want      int
	}{
		{name: "25 days ago", deletedAt: at(-25 * day), want: 5},
		{name: "35 days ago is clamped", deletedAt: at(-35 * day), want: 0},
		{name: "window just elapsed", deletedAt: at(-30 * day), want: 0},
		{name: "deleted now", deletedAt: at(0), want: 30},
		{name: "partial days round down", deletedAt: at(-(day + 23*time.Hour)), want: 29},
		{name: "never deleted", want: 30},
		{name: "future timestamp from clock skew", deletedAt: at(2 * time.Hour), want: 30},
		{name: "far future timestamp", deletedAt: at(10 * day), want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysRemaining(tt.deletedAt, now))
		})
	}
}

func TestPurgeEligible(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-29 * 24 * time.Hour)
	old := now.Add(-RetentionWindow)

	assert.False(t, PurgeEligible(&recent, now))
	assert.True(t, PurgeEligible(&old, now))
	assert.False(t, PurgeEligible(nil, now))
}
