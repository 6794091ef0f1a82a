package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	clientusecases "github.com/techile/fieldportal/internal/application/client/usecases"
	ticketusecases "github.com/techile/fieldportal/internal/application/ticket/usecases"
	"github.com/techile/fieldportal/internal/shared/logger"
	"github.com/techile/fieldportal/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"required"`
	Priority    string `json:"priority"`
	// ClientID is honored for admin callers only; clients always create
	// tickets on their own account.
	ClientID uint `json:"client_id"`
}

type ScheduleTicketRequest struct {
	ScheduledAt      time.Time `json:"scheduled_at" validate:"required"`
	Location         string    `json:"location" validate:"max=255"`
	DistanceKM       float64   `json:"distance_km" validate:"gte=0"`
	EstimatedMinutes int       `json:"estimated_minutes" validate:"gte=0"`
}

type AssignTicketRequest struct {
	TechnicianID uint `json:"technician_id" validate:"required"`
}

type ChangeTicketStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdateWorkflowStepRequest struct {
	Completed bool   `json:"completed"`
	Notes     string `json:"notes"`
}

type CompleteInterventionRequest struct {
	Notes         string `json:"notes"`
	ActualMinutes int    `json:"actual_minutes" validate:"gte=0"`
}

type AddTicketNoteRequest struct {
	Type    string `json:"type" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type TicketHandler struct {
	create     ticketusecases.CreateTicketExecutor
	list       ticketusecases.ListTicketsExecutor
	get        ticketusecases.GetTicketExecutor
	schedule   ticketusecases.ScheduleTicketExecutor
	assign     ticketusecases.AssignTicketExecutor
	status     ticketusecases.ChangeStatusExecutor
	cancel     ticketusecases.CancelTicketExecutor
	start      ticketusecases.StartInterventionExecutor
	updateStep ticketusecases.UpdateWorkflowStepExecutor
	complete   ticketusecases.CompleteInterventionExecutor
	addNote    ticketusecases.AddNoteExecutor
	clients    clientusecases.GetClientExecutor
	logger     logger.Interface
}

func NewTicketHandler(
	create ticketusecases.CreateTicketExecutor,
	list ticketusecases.ListTicketsExecutor,
	get ticketusecases.GetTicketExecutor,
	schedule ticketusecases.ScheduleTicketExecutor,
	assign ticketusecases.AssignTicketExecutor,
	status ticketusecases.ChangeStatusExecutor,
	cancel ticketusecases.CancelTicketExecutor,
	start ticketusecases.StartInterventionExecutor,
	updateStep ticketusecases.UpdateWorkflowStepExecutor,
	complete ticketusecases.CompleteInterventionExecutor,
	addNote ticketusecases.AddNoteExecutor,
	clients clientusecases.GetClientExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		create:     create,
		list:       list,
		get:        get,
		schedule:   schedule,
		assign:     assign,
		status:     status,
		cancel:     cancel,
		start:      start,
		updateStep: updateStep,
		complete:   complete,
		addNote:    addNote,
		clients:    clients,
		logger:     logger,
	}
}

// callerClientID resolves the calling user's client record when the caller
// holds the client role. Admin and technician callers get zero, which lifts
// the ownership restriction in the use cases.
func (h *TicketHandler) callerClientID(c *gin.Context) (uint, error) {
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

// CreateTicket opens a service request.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
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

	result, err := h.create.Execute(c.Request.Context(), ticketusecases.CreateTicketCommand{
		ClientID:    clientID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Priority:    req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ListTickets returns a filtered, paginated ticket list scoped to the caller.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	pg := utils.ParsePagination(c)

	query := ticketusecases.ListTicketsQuery{
		Status:   c.Query("status"),
		Type:     c.Query("type"),
		Priority: c.Query("priority"),
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
		query.AssigneeID = parseQueryUint(c, "assignee_id")
	}

	result, err := h.list.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// GetTicket returns a ticket, restricted to the owner for client callers.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	clientID, err := h.callerClientID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.get.Execute(c.Request.Context(), ticketusecases.GetTicketQuery{
		TicketID: ticketID,
		ClientID: clientID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ScheduleTicket books the on-site visit window.
func (h *TicketHandler) ScheduleTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ScheduleTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for schedule ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.schedule.Execute(c.Request.Context(), ticketusecases.ScheduleTicketCommand{
		TicketID:         ticketID,
		ScheduledAt:      req.ScheduledAt,
		Location:         req.Location,
		DistanceKM:       req.DistanceKM,
		EstimatedMinutes: req.EstimatedMinutes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket scheduled", result)
}

// AssignTicket assigns a technician to the ticket.
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	assignedBy, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assign.Execute(c.Request.Context(), ticketusecases.AssignTicketCommand{
		TicketID:     ticketID,
		TechnicianID: req.TechnicianID,
		AssignedBy:   assignedBy,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned", result)
}

// ChangeTicketStatus moves the ticket through its lifecycle.
func (h *TicketHandler) ChangeTicketStatus(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for ticket status change", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	changedBy, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.status.Execute(c.Request.Context(), ticketusecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: req.Status,
		ChangedBy: changedBy,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// CancelTicket cancels the ticket, owner-scoped for client callers.
func (h *TicketHandler) CancelTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	clientID, err := h.callerClientID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.cancel.Execute(c.Request.Context(), ticketusecases.CancelTicketCommand{
		TicketID:    ticketID,
		CancelledBy: userID,
		ClientID:    clientID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket cancelled", result)
}

// StartIntervention begins the on-site work and materializes the checklist.
func (h *TicketHandler) StartIntervention(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	technicianID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.start.Execute(c.Request.Context(), ticketusecases.StartInterventionCommand{
		TicketID:     ticketID,
		TechnicianID: technicianID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Intervention started", result)
}

// UpdateWorkflowStep checks or unchecks a checklist step.
func (h *TicketHandler) UpdateWorkflowStep(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	stepID, err := utils.ParseUintParam(c, "step_id", "workflow step")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateWorkflowStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for workflow step", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	technicianID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateStep.Execute(c.Request.Context(), ticketusecases.UpdateWorkflowStepCommand{
		TicketID:     ticketID,
		TechnicianID: technicianID,
		StepID:       int(stepID),
		Completed:    req.Completed,
		Notes:        req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Workflow step updated", result)
}

// CompleteIntervention wraps up the on-site work.
func (h *TicketHandler) CompleteIntervention(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompleteInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for complete intervention", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	technicianID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.complete.Execute(c.Request.Context(), ticketusecases.CompleteInterventionCommand{
		TicketID:      ticketID,
		TechnicianID:  technicianID,
		Notes:         req.Notes,
		ActualMinutes: req.ActualMinutes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Intervention completed", result)
}

// AddNote appends a note to the ticket.
func (h *TicketHandler) AddNote(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddTicketNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add note", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	authorID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addNote.Execute(c.Request.Context(), ticketusecases.AddNoteCommand{
		TicketID: ticketID,
		AuthorID: authorID,
		NoteType: req.Type,
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Note added")
}
