package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clientusecases "github.com/techile/fieldportal/internal/application/client/usecases"
	subusecases "github.com/techile/fieldportal/internal/application/subscription/usecases"
	"github.com/techile/fieldportal/internal/shared/logger"
	"github.com/techile/fieldportal/internal/shared/utils"
)

type ChangePlanRequest struct {
	Tier  string `json:"tier" validate:"omitempty,oneof=base standard plus prestige"`
	Cycle string `json:"cycle" validate:"omitempty,oneof=monthly annual"`
}

type SubscriptionHandler struct {
	get        subusecases.GetSubscriptionExecutor
	changePlan subusecases.ChangePlanExecutor
	cancel     subusecases.CancelSubscriptionExecutor
	clients    clientusecases.GetClientExecutor
	logger     logger.Interface
}

func NewSubscriptionHandler(
	get subusecases.GetSubscriptionExecutor,
	changePlan subusecases.ChangePlanExecutor,
	cancel subusecases.CancelSubscriptionExecutor,
	clients clientusecases.GetClientExecutor,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		get:        get,
		changePlan: changePlan,
		cancel:     cancel,
		clients:    clients,
		logger:     logger,
	}
}

func (h *SubscriptionHandler) callerClientID(c *gin.Context) (uint, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return 0, err
	}

	me, err := h.clients.Execute(c.Request.Context(), clientusecases.GetClientQuery{UserID: userID})
	if err != nil {
		return 0, err
	}
	return me.ID, nil
}

// GetMySubscription returns the calling client's maintenance plan.
func (h *SubscriptionHandler) GetMySubscription(c *gin.Context) {
	clientID, err := h.callerClientID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.get.Execute(c.Request.Context(), subusecases.GetSubscriptionQuery{ClientID: clientID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetClientSubscription returns a client's maintenance plan by client ID.
func (h *SubscriptionHandler) GetClientSubscription(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.get.Execute(c.Request.Context(), subusecases.GetSubscriptionQuery{ClientID: clientID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ChangeMyPlan switches the calling client's tier or billing cycle.
func (h *SubscriptionHandler) ChangeMyPlan(c *gin.Context) {
	clientID, err := h.callerClientID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.applyPlanChange(c, clientID)
}

// ChangeClientPlan switches a client's tier or billing cycle by client ID.
func (h *SubscriptionHandler) ChangeClientPlan(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.applyPlanChange(c, clientID)
}

func (h *SubscriptionHandler) applyPlanChange(c *gin.Context, clientID uint) {
	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for plan change", "client_id", clientID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changePlan.Execute(c.Request.Context(), subusecases.ChangePlanCommand{
		ClientID: clientID,
		Tier:     req.Tier,
		Cycle:    req.Cycle,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription updated", result)
}

// CancelMySubscription cancels the calling client's plan at period end.
func (h *SubscriptionHandler) CancelMySubscription(c *gin.Context) {
	clientID, err := h.callerClientID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.cancel.Execute(c.Request.Context(), subusecases.CancelSubscriptionCommand{ClientID: clientID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription cancelled", result)
}
