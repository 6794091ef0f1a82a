package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pricingusecases "github.com/techile/fieldportal/internal/application/pricing/usecases"
	"github.com/techile/fieldportal/internal/domain/pricing"
	"github.com/techile/fieldportal/internal/shared/logger"
	"github.com/techile/fieldportal/internal/shared/utils"
)

type PricingHandler struct {
	getRates      pricingusecases.GetRatesExecutor
	updateRates   pricingusecases.UpdateRatesExecutor
	generateQuote pricingusecases.GenerateQuoteExecutor
	logger        logger.Interface
}

func NewPricingHandler(
	getRates pricingusecases.GetRatesExecutor,
	updateRates pricingusecases.UpdateRatesExecutor,
	generateQuote pricingusecases.GenerateQuoteExecutor,
	logger logger.Interface,
) *PricingHandler {
	return &PricingHandler{
		getRates:      getRates,
		updateRates:   updateRates,
		generateQuote: generateQuote,
		logger:        logger,
	}
}

// GetRates returns the current rate table.
func (h *PricingHandler) GetRates(c *gin.Context) {
	rates, err := h.getRates.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", rates)
}

// UpdateRates replaces the configured rate table.
func (h *PricingHandler) UpdateRates(c *gin.Context) {
	var rates pricing.RateTable
	if err := c.ShouldBindJSON(&rates); err != nil {
		h.logger.Warnw("invalid request body for update rates", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateRates.Execute(c.Request.Context(), pricingusecases.UpdateRatesCommand{Rates: rates})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Rates updated", result)
}

// GenerateQuote prices the requested services without persisting anything.
func (h *PricingHandler) GenerateQuote(c *gin.Context) {
	var req pricing.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for quote", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	quote, err := h.generateQuote.Execute(c.Request.Context(), pricingusecases.GenerateQuoteCommand{Request: req})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", quote)
}
