package usecases

import "context"

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) (*NotificationList, error)
}

type MarkReadExecutor interface {
	Execute(ctx context.Context, cmd MarkReadCommand) (*NotificationDetail, error)
}

type MarkAllReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAllReadCommand) error
}
