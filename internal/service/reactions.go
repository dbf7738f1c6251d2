package service

import (
	"context"
	"errors"

	"moodrealm/internal/middleware"
	"moodrealm/internal/models"
	"moodrealm/internal/observability"
	"moodrealm/internal/repository"
)

// ToggleResult is the outcome of a report toggle.
type ToggleResult struct {
	Count   int64
	Deleted bool
}

// toggleReport flips the reporter's membership and removes the target once the
// post-update report count reaches the threshold.
func toggleReport(
	ctx context.Context,
	reactions repository.ReactionRepository,
	targetType string,
	targetID, userID uint,
	remove func(context.Context, uint) error,
) (*ToggleResult, error) {
	count, err := reactions.Toggle(ctx, targetType, targetID, userID, models.ReactionReport)
	if err != nil {
		return nil, err
	}
	if count < models.ReportThreshold {
		return &ToggleResult{Count: count}, nil
	}

	if err := remove(ctx, targetID); err != nil {
		var appErr *models.AppError
		// A concurrent reporter may already have removed it.
		if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
			return nil, err
		}
	} else {
		observability.ContentAutoRemoved.WithLabelValues(targetType).Inc()
		middleware.Logger.InfoContext(ctx, "content removed after reports",
			"target_type", targetType,
			"target_id", targetID,
			"reports", count,
		)
	}
	return &ToggleResult{Count: count, Deleted: true}, nil
}
