package usecases

import (
	"context"
	"time"

	"github.com/techile/fieldportal/internal/domain/pricing"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type GenerateQuoteCommand struct {
	Request pricing.QuoteRequest
}

type GenerateQuoteUseCase struct {
	rates  GetRatesExecutor
	logger logger.Interface
}

func NewGenerateQuoteUseCase(rates GetRatesExecutor, logger logger.Interface) *GenerateQuoteUseCase {
	return &GenerateQuoteUseCase{rates: rates, logger: logger}
}

func (uc *GenerateQuoteUseCase) Execute(ctx context.Context, cmd GenerateQuoteCommand) (*pricing.Quote, error) {
	uc.logger.Infow("executing generate quote use case")

	if cmd.Request.IsEmpty() {
		return nil, errors.NewValidationError("quote request must include at least one service")
	}
	if cmd.Request.Maintenance != "" && !cmd.Request.Maintenance.IsValid() {
		return nil, errors.NewValidationError("invalid maintenance tier", cmd.Request.Maintenance.String())
	}
	if cmd.Request.Website != "" && !cmd.Request.Website.IsValid() {
		return nil, errors.NewValidationError("invalid website type", cmd.Request.Website.String())
	}

	rt, err := uc.rates.Execute(ctx)
	if err != nil {
		uc.logger.Errorw("failed to resolve rate table", "error", err)
		return nil, errors.NewInternalError("failed to resolve rate table")
	}

	quote := pricing.GenerateQuote(rt, cmd.Request, time.Now())
	uc.logger.Infow("quote generated", "reference", quote.Reference, "total", quote.Total, "items", len(quote.Items))
	return &quote, nil
}
