package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clientusecases "github.com/techile/fieldportal/internal/application/client/usecases"
	"github.com/techile/fieldportal/internal/shared/logger"
	"github.com/techile/fieldportal/internal/shared/utils"
)

type UpdateProfileRequest struct {
	CompanyName string `json:"company_name" validate:"max=200"`
	FirstName   string `json:"first_name" validate:"max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
	Phone       string `json:"phone" validate:"max=30"`
	Address     string `json:"address" validate:"max=255"`
	City        string `json:"city" validate:"max=100"`
	Province    string `json:"province" validate:"max=50"`
	PostalCode  string `json:"postal_code" validate:"max=10"`
	IsInIslands bool   `json:"is_in_islands"`
}

type ClientAccountActionRequest struct {
	Action string `json:"action" validate:"required,oneof=suspend activate cancel"`
}

type AdjustCloudQuotaRequest struct {
	// Negative values leave the corresponding field unchanged.
	QuotaGB float64 `json:"quota_gb"`
	UsedGB  float64 `json:"used_gb"`
}

type ClientHandler struct {
	list            clientusecases.ListClientsExecutor
	get             clientusecases.GetClientExecutor
	updateProfile   clientusecases.UpdateProfileExecutor
	validateProfile clientusecases.ValidateProfileExecutor
	suspend         clientusecases.SuspendClientExecutor
	adjustQuota     clientusecases.AdjustCloudQuotaExecutor
	logger          logger.Interface
}

func NewClientHandler(
	list clientusecases.ListClientsExecutor,
	get clientusecases.GetClientExecutor,
	updateProfile clientusecases.UpdateProfileExecutor,
	validateProfile clientusecases.ValidateProfileExecutor,
	suspend clientusecases.SuspendClientExecutor,
	adjustQuota clientusecases.AdjustCloudQuotaExecutor,
	logger logger.Interface,
) *ClientHandler {
	return &ClientHandler{
		list:            list,
		get:             get,
		updateProfile:   updateProfile,
		validateProfile: validateProfile,
		suspend:         suspend,
		adjustQuota:     adjustQuota,
		logger:          logger,
	}
}

// ListClients returns a filtered, paginated client list.
func (h *ClientHandler) ListClients(c *gin.Context) {
	pg := utils.ParsePagination(c)

	result, err := h.list.Execute(c.Request.Context(), clientusecases.ListClientsQuery{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
		Page:     pg.Page,
		PageSize: pg.PageSize,
		OrderBy:  c.Query("order_by"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Clients, result.Total, result.Page, result.PageSize)
}

// GetClient returns a client by ID.
func (h *ClientHandler) GetClient(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.get.Execute(c.Request.Context(), clientusecases.GetClientQuery{ClientID: clientID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetMyProfile returns the authenticated client's own record.
func (h *ClientHandler) GetMyProfile(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.get.Execute(c.Request.Context(), clientusecases.GetClientQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateMyProfile updates the authenticated client's own record.
func (h *ClientHandler) UpdateMyProfile(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	me, err := h.get.Execute(c.Request.Context(), clientusecases.GetClientQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.applyProfileUpdate(c, me.ID)
}

// UpdateClient updates a client's profile by ID.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.applyProfileUpdate(c, clientID)
}

func (h *ClientHandler) applyProfileUpdate(c *gin.Context, clientID uint) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "client_id", clientID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateProfile.Execute(c.Request.Context(), clientusecases.UpdateProfileCommand{
		ClientID:    clientID,
		CompanyName: req.CompanyName,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		Province:    req.Province,
		PostalCode:  req.PostalCode,
		IsInIslands: req.IsInIslands,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", result)
}

// ValidateMyProfile reports the profile completeness of the calling client.
func (h *ClientHandler) ValidateMyProfile(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	me, err := h.get.Execute(c.Request.Context(), clientusecases.GetClientQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.validateProfile.Execute(c.Request.Context(), clientusecases.ValidateProfileQuery{ClientID: me.ID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateClientStatus suspends, reactivates, or cancels a client account.
func (h *ClientHandler) UpdateClientStatus(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ClientAccountActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for client status change", "client_id", clientID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.suspend.Execute(c.Request.Context(), clientusecases.SuspendClientCommand{
		ClientID: clientID,
		Action:   clientusecases.SuspendClientAction(req.Action),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client account updated", result)
}

// AdjustCloudQuota sets a client's cloud allotment or records measured usage.
func (h *ClientHandler) AdjustCloudQuota(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	req := AdjustCloudQuotaRequest{QuotaGB: -1, UsedGB: -1}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for cloud quota", "client_id", clientID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.adjustQuota.Execute(c.Request.Context(), clientusecases.AdjustCloudQuotaCommand{
		ClientID: clientID,
		QuotaGB:  req.QuotaGB,
		UsedGB:   req.UsedGB,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cloud quota updated", result)
}
