package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/client"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type AdjustCloudQuotaCommand struct {
	ClientID uint
	// QuotaGB replaces the allotment when non-negative; a negative value
	// leaves it unchanged.
	QuotaGB float64
	// UsedGB records the latest measured usage when non-negative.
	UsedGB float64
}

type AdjustCloudQuotaUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewAdjustCloudQuotaUseCase(clientRepo client.Repository, logger logger.Interface) *AdjustCloudQuotaUseCase {
	return &AdjustCloudQuotaUseCase{clientRepo: clientRepo, logger: logger}
}

func (uc *AdjustCloudQuotaUseCase) Execute(ctx context.Context, cmd AdjustCloudQuotaCommand) (*ClientDetail, error) {
	uc.logger.Infow("executing adjust cloud quota use case", "client_id", cmd.ClientID, "quota_gb", cmd.QuotaGB)

	if cmd.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}

	c, err := uc.clientRepo.FindByID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", cmd.ClientID))
	}

	if cmd.QuotaGB >= 0 {
		if err := c.SetCloudQuota(cmd.QuotaGB); err != nil {
			return nil, err
		}
	}
	if cmd.UsedGB >= 0 {
		if err := c.RecordCloudUsage(cmd.UsedGB); err != nil {
			return nil, err
		}
	}

	if err := uc.clientRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to update client")
	}

	return toClientDetail(c), nil
}
