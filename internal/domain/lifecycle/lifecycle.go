// Package lifecycle governs the moderation status of person records and the
// retention window of soft-deleted records.
package lifecycle

import (
	"math"
	"time"

	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
)

// Action is an admin action that moves a record between statuses.
type Action string

const (
	ActionApprove    Action = "approve"
	ActionUnapprove  Action = "unapprove"
	ActionSoftDelete Action = "softDelete"
	ActionRecover    Action = "recover"
)

// RetentionDays is the number of days a deleted record is kept before it
// becomes eligible for purge.
const RetentionDays = 30

// RetentionWindow is RetentionDays as a duration.
const RetentionWindow = RetentionDays * 24 * time.Hour

// Next returns the status reached by applying action to a record in status from.
// Recovering an approved record is an allowed no-op.
func Next(from entity.Status, action Action) (entity.Status, error) {
	switch action {
	case ActionApprove:
		if from == entity.StatusPending || from == entity.StatusApproved {
			return entity.StatusApproved, nil
		}
	case ActionUnapprove:
		if from == entity.StatusPending || from == entity.StatusApproved {
			return entity.StatusPending, nil
		}
	case ActionSoftDelete:
		if from == entity.StatusPending || from == entity.StatusApproved {
			return entity.StatusDeleted, nil
		}
	case ActionRecover:
		if from == entity.StatusDeleted || from == entity.StatusApproved {
			return entity.StatusApproved, nil
		}
	}

	return from, domainerrors.ErrInvalidTransition.WithDetails(string(action) + " from " + string(from))
}

// DaysRemaining returns the whole days left in the retention window, clamped
// to [0, RetentionDays]. A missing or future deletedAt yields the full window.
func DaysRemaining(deletedAt *time.Time, now time.Time) int {
	if deletedAt == nil {
		return RetentionDays
	}
	elapsed := int(math.Floor(now.Sub(*deletedAt).Hours() / 24))

	return min(RetentionDays, max(0, RetentionDays-elapsed))
}

// PurgeEligible reports whether the retention window has elapsed. It is
// advisory: purge is never blocked on it.
func PurgeEligible(deletedAt *time.Time, now time.Time) bool {
	if deletedAt == nil {
		return false
	}

	return now.Sub(*deletedAt) >= RetentionWindow
}
