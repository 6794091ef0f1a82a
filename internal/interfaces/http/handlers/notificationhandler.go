package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	notifusecases "github.com/techile/fieldportal/internal/application/notification/usecases"
	"github.com/techile/fieldportal/internal/shared/logger"
	"github.com/techile/fieldportal/internal/shared/utils"
)

type NotificationHandler struct {
	list        notifusecases.ListNotificationsExecutor
	markRead    notifusecases.MarkReadExecutor
	markAllRead notifusecases.MarkAllReadExecutor
	logger      logger.Interface
}

func NewNotificationHandler(
	list notifusecases.ListNotificationsExecutor,
	markRead notifusecases.MarkReadExecutor,
	markAllRead notifusecases.MarkAllReadExecutor,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		list:        list,
		markRead:    markRead,
		markAllRead: markAllRead,
		logger:      logger,
	}
}

// ListNotifications returns the caller's notifications, newest first.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pg := utils.ParsePagination(c)

	result, err := h.list.Execute(c.Request.Context(), notifusecases.ListNotificationsQuery{
		UserID:     userID,
		UnreadOnly: c.Query("unread_only") == "true",
		Page:       pg.Page,
		PageSize:   pg.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Notifications, result.Total, result.Page, result.PageSize)
}

// MarkRead marks a single notification as read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, err := utils.ParseUintParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markRead.Execute(c.Request.Context(), notifusecases.MarkReadCommand{
		NotificationID: notificationID,
		UserID:         userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked read", result)
}

// MarkAllRead marks every unread notification of the caller as read.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markAllRead.Execute(c.Request.Context(), notifusecases.MarkAllReadCommand{UserID: userID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked read", nil)
}
