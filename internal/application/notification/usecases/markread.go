package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/techile/fieldportal/internal/domain/notification"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type MarkReadCommand struct {
	NotificationID uint
	UserID         uint
}

type MarkReadUseCase struct {
	notifRepo notification.Repository
	logger    logger.Interface
}

func NewMarkReadUseCase(notifRepo notification.Repository, logger logger.Interface) *MarkReadUseCase {
	return &MarkReadUseCase{notifRepo: notifRepo, logger: logger}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, cmd MarkReadCommand) (*NotificationDetail, error) {
	if cmd.NotificationID == 0 {
		return nil, errors.NewValidationError("notification ID is required")
	}

	n, err := uc.notifRepo.FindByID(ctx, cmd.NotificationID)
	if err != nil {
		uc.logger.Errorw("failed to get notification", "notification_id", cmd.NotificationID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("notification %d not found", cmd.NotificationID))
	}
	if cmd.UserID != 0 && n.UserID() != cmd.UserID {
		return nil, errors.NewForbiddenError("notification belongs to another user")
	}

	n.MarkRead(time.Now())

	if err := uc.notifRepo.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to update notification", "notification_id", cmd.NotificationID, "error", err)
		return nil, errors.NewInternalError("failed to update notification")
	}

	return toNotificationDetail(n), nil
}

type MarkAllReadCommand struct {
	UserID uint
}

type MarkAllReadUseCase struct {
	notifRepo notification.Repository
	logger    logger.Interface
}

func NewMarkAllReadUseCase(notifRepo notification.Repository, logger logger.Interface) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{notifRepo: notifRepo, logger: logger}
}

func (uc *MarkAllReadUseCase) Execute(ctx context.Context, cmd MarkAllReadCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if err := uc.notifRepo.MarkAllRead(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to mark notifications read", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to mark notifications read")
	}
	return nil
}
