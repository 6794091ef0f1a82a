package usecases

import "context"

type CreateWebsiteExecutor interface {
	Execute(ctx context.Context, cmd CreateWebsiteCommand) (*WebsiteDetail, error)
}

type GetWebsiteExecutor interface {
	Execute(ctx context.Context, query GetWebsiteQuery) (*WebsiteDetail, error)
}

type ListWebsitesExecutor interface {
	Execute(ctx context.Context, query ListWebsitesQuery) (*WebsiteList, error)
}

type UpdateWebsiteContentExecutor interface {
	Execute(ctx context.Context, cmd UpdateWebsiteContentCommand) (*WebsiteDetail, error)
}

type ChangeWebsiteStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeWebsiteStatusCommand) (*WebsiteDetail, error)
}

type PublishPageExecutor interface {
	Execute(ctx context.Context, cmd PublishPageCommand) (*WebsiteDetail, error)
}
