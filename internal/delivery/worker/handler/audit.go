package handler

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "familytree/internal/delivery/context"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/genealogy"
	"familytree/internal/domain/service"
	"familytree/internal/errors"
)

// audit checks the records touched by event and alerts the administrators
// when their edges are broken.
func (h *PushHandler) audit(ctx context.Context, event *service.PersonEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if len(event.PersonIDs) == 0 {
		logger.Info("[Worker] Event names no records", slog.String("event_type", string(event.Type)))

		return nil
	}

	violations, err := h.familyUC.CheckIntegrity(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrStoreUnavailable) || domainerrors.IsRetryable(err) {
			return newRetryableError(err)
		}

		return err
	}

	relevant := affected(violations, event)
	if len(relevant) == 0 {
		logger.Info("[Worker] Graph is consistent",
			slog.String("event_type", string(event.Type)),
			slog.Int("records", len(event.PersonIDs)),
		)

		return nil
	}

	for _, v := range relevant {
		logger.Warn("[Worker] Integrity violation",
			slog.String("person_id", v.PersonID),
			slog.String("kind", string(v.Kind)),
			slog.String("detail", v.Detail),
		)
	}

	h.alertAdmins(ctx, event, relevant)

	return nil
}

// affected keeps the violations found on the records of the event. A purged
// record no longer exists, so the dangling links it leaves behind are
// reported wherever they are.
func affected(violations []genealogy.Violation, event *service.PersonEvent) []genealogy.Violation {
	out := make([]genealogy.Violation, 0, len(violations))
	for _, v := range violations {
		if slices.Contains(event.PersonIDs, v.PersonID) {
			out = append(out, v)

			continue
		}
		if event.Type == service.PersonPurged && v.Kind == genealogy.ViolationDanglingLink {
			out = append(out, v)
		}
	}

	return out
}

func (h *PushHandler) alertAdmins(ctx context.Context, event *service.PersonEvent, violations []genealogy.Violation) {
	if h.adminTopic == "" {
		return
	}

	ids := make([]string, 0, len(violations))
	for _, v := range violations {
		if !slices.Contains(ids, v.PersonID) {
			ids = append(ids, v.PersonID)
		}
	}

	title := "Family tree needs attention"
	body := fmt.Sprintf("%d problem(s) found after %s", len(violations), event.Type)
	data := map[string]string{
		"event_type": string(event.Type),
		"person_ids": strings.Join(ids, ","),
		"first":      violations[0].String(),
	}

	if err := h.notificationSvc.SendTopicNotification(ctx, h.adminTopic, title, body, data); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("[Worker] Failed to alert administrators",
			slog.String("topic", h.adminTopic),
			slog.Any("error", err),
		)
	}
}
