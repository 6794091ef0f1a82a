package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clientusecases "github.com/techile/fieldportal/internal/application/client/usecases"
	webusecases "github.com/techile/fieldportal/internal/application/website/usecases"
	"github.com/techile/fieldportal/internal/domain/website"
	"github.com/techile/fieldportal/internal/shared/logger"
	"github.com/techile/fieldportal/internal/shared/utils"
)

type CreateWebsiteRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Type      string `json:"type" validate:"required,oneof=vitrine pme ecommerce"`
	Domain    string `json:"domain" validate:"max=255"`
	Subdomain string `json:"subdomain" validate:"max=63"`
	// ClientID is honored for admin callers only.
	ClientID uint `json:"client_id"`
}

type UpdateWebsiteContentRequest struct {
	Content website.Content `json:"content" validate:"required"`
}

type PublishPageRequest struct {
	Published bool `json:"published"`
}

type ChangeWebsiteStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=planning development review live maintenance"`
}

type WebsiteHandler struct {
	create        webusecases.CreateWebsiteExecutor
	get           webusecases.GetWebsiteExecutor
	list          webusecases.ListWebsitesExecutor
	updateContent webusecases.UpdateWebsiteContentExecutor
	publishPage   webusecases.PublishPageExecutor
	changeStatus  webusecases.ChangeWebsiteStatusExecutor
	clients       clientusecases.GetClientExecutor
	logger        logger.Interface
}

func NewWebsiteHandler(
	create webusecases.CreateWebsiteExecutor,
	get webusecases.GetWebsiteExecutor,
	list webusecases.ListWebsitesExecutor,
	updateContent webusecases.UpdateWebsiteContentExecutor,
	publishPage webusecases.PublishPageExecutor,
	changeStatus webusecases.ChangeWebsiteStatusExecutor,
	clients clientusecases.GetClientExecutor,
	logger logger.Interface,
) *WebsiteHandler {
	return &WebsiteHandler{
		create:        create,
		get:           get,
		list:          list,
		updateContent: updateContent,
		publishPage:   publishPage,
		changeStatus:  changeStatus,
		clients:       clients,
		logger:        logger,
	}
}

func (h *WebsiteHandler) callerClientID(c *gin.Context) (uint, error) {
	if !currentUserRole(c).IsClient() {
		return 0, nil
	}

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

// CreateWebsite opens a website project.
func (h *WebsiteHandler) CreateWebsite(c *gin.Context) {
	var req CreateWebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create website", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	clientID := req.ClientID
	if currentUserRole(c).IsClient() {
		ownID, err := h.callerClientID(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		clientID = ownID
	}

	result, err := h.create.Execute(c.Request.Context(), webusecases.CreateWebsiteCommand{
		ClientID:  clientID,
		Name:      req.Name,
		Type:      req.Type,
		Domain:    req.Domain,
		Subdomain: req.Subdomain,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Website project created")
}

// GetWebsite returns a project, owner-scoped for client callers.
func (h *WebsiteHandler) GetWebsite(c *gin.Context) {
	websiteID, err := utils.ParseUintParam(c, "id", "website")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	clientID, err := h.callerClientID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.get.Execute(c.Request.Context(), webusecases.GetWebsiteQuery{
		WebsiteID: websiteID,
		ClientID:  clientID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListWebsites returns a paginated project list scoped to the caller.
func (h *WebsiteHandler) ListWebsites(c *gin.Context) {
	pg := utils.ParsePagination(c)

	query := webusecases.ListWebsitesQuery{
		Status:   c.Query("status"),
		Type:     c.Query("type"),
		Page:     pg.Page,
		PageSize: pg.PageSize,
		OrderBy:  c.Query("order_by"),
	}

	clientID, err := h.callerClientID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query.ClientID = clientID
	if query.ClientID == 0 {
		query.ClientID = parseQueryUint(c, "client_id")
	}

	result, err := h.list.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Websites, result.Total, result.Page, result.PageSize)
}

// UpdateContent replaces the editable site content.
func (h *WebsiteHandler) UpdateContent(c *gin.Context) {
	websiteID, err := utils.ParseUintParam(c, "id", "website")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateWebsiteContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for website content", "website_id", websiteID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	clientID, err := h.callerClientID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateContent.Execute(c.Request.Context(), webusecases.UpdateWebsiteContentCommand{
		WebsiteID: websiteID,
		ClientID:  clientID,
		Content:   req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Website content updated", result)
}

// PublishPage toggles a page's published flag.
func (h *WebsiteHandler) PublishPage(c *gin.Context) {
	websiteID, err := utils.ParseUintParam(c, "id", "website")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	slug := c.Param("slug")

	var req PublishPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for publish page", "website_id", websiteID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	clientID, err := h.callerClientID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.publishPage.Execute(c.Request.Context(), webusecases.PublishPageCommand{
		WebsiteID: websiteID,
		ClientID:  clientID,
		PageSlug:  slug,
		Published: req.Published,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Page updated", result)
}

// ChangeStatus moves the project through its lifecycle.
func (h *WebsiteHandler) ChangeStatus(c *gin.Context) {
	websiteID, err := utils.ParseUintParam(c, "id", "website")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeWebsiteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for website status", "website_id", websiteID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changeStatus.Execute(c.Request.Context(), webusecases.ChangeWebsiteStatusCommand{
		WebsiteID: websiteID,
		NewStatus: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Website status updated", result)
}
