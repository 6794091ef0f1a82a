package usecases

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/notification"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
	"github.com/techile/fieldportal/internal/shared/utils"
)

type ListNotificationsQuery struct {
	UserID     uint
	UnreadOnly bool
	Page       int
	PageSize   int
}

type ListNotificationsUseCase struct {
	notifRepo notification.Repository
	logger    logger.Interface
}

func NewListNotificationsUseCase(notifRepo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notifRepo: notifRepo, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*NotificationList, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	pg := utils.ValidatePagination(query.Page, query.PageSize)
	offset := (pg.Page - 1) * pg.PageSize

	notifications, total, err := uc.notifRepo.ListByUser(ctx, query.UserID, query.UnreadOnly, offset, pg.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	details := make([]NotificationDetail, 0, len(notifications))
	for _, n := range notifications {
		details = append(details, *toNotificationDetail(n))
	}

	return &NotificationList{
		Notifications: details,
		Total:         total,
		Page:          pg.Page,
		PageSize:      pg.PageSize,
	}, nil
}
