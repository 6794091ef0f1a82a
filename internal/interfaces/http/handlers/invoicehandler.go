package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clientusecases "github.com/techile/fieldportal/internal/application/client/usecases"
	invoiceusecases "github.com/techile/fieldportal/internal/application/invoice/usecases"
	"github.com/techile/fieldportal/internal/shared/logger"
	"github.com/techile/fieldportal/internal/shared/utils"
)

type CreateInvoiceItemRequest struct {
	Description string  `json:"description" validate:"required,max=255"`
	Quantity    float64 `json:"quantity" validate:"gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

type CreateInvoiceRequest struct {
	ClientID uint                       `json:"client_id" validate:"required"`
	TicketID *uint                      `json:"ticket_id"`
	Items    []CreateInvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	TaxRate  float64                    `json:"tax_rate" validate:"gte=0"`
	DueDays  int                        `json:"due_days" validate:"gte=0"`
	Notes    string                     `json:"notes"`
}

type InvoiceHandler struct {
	create         invoiceusecases.CreateInvoiceExecutor
	fromTicket     invoiceusecases.CreateInvoiceFromTicketExecutor
	get            invoiceusecases.GetInvoiceExecutor
	list           invoiceusecases.ListInvoicesExecutor
	send           invoiceusecases.SendInvoiceExecutor
	markPaid       invoiceusecases.MarkInvoicePaidExecutor
	cancel         invoiceusecases.CancelInvoiceExecutor
	processOverdue invoiceusecases.ProcessOverdueExecutor
	clients        clientusecases.GetClientExecutor
	logger         logger.Interface
}

func NewInvoiceHandler(
	create invoiceusecases.CreateInvoiceExecutor,
	fromTicket invoiceusecases.CreateInvoiceFromTicketExecutor,
	get invoiceusecases.GetInvoiceExecutor,
	list invoiceusecases.ListInvoicesExecutor,
	send invoiceusecases.SendInvoiceExecutor,
	markPaid invoiceusecases.MarkInvoicePaidExecutor,
	cancel invoiceusecases.CancelInvoiceExecutor,
	processOverdue invoiceusecases.ProcessOverdueExecutor,
	clients clientusecases.GetClientExecutor,
	logger logger.Interface,
) *InvoiceHandler {
	return &InvoiceHandler{
		create:         create,
		fromTicket:     fromTicket,
		get:            get,
		list:           list,
		send:           send,
		markPaid:       markPaid,
		cancel:         cancel,
		processOverdue: processOverdue,
		clients:        clients,
		logger:         logger,
	}
}

func (h *InvoiceHandler) callerClientID(c *gin.Context) (uint, error) {
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

// CreateInvoice creates a draft invoice from explicit line items.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create invoice", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]invoiceusecases.CreateInvoiceItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = invoiceusecases.CreateInvoiceItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	result, err := h.create.Execute(c.Request.Context(), invoiceusecases.CreateInvoiceCommand{
		ClientID: req.ClientID,
		TicketID: req.TicketID,
		Items:    items,
		TaxRate:  req.TaxRate,
		DueDays:  req.DueDays,
		Notes:    req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Invoice created successfully")
}

// CreateFromTicket bills a resolved ticket, idempotently.
func (h *InvoiceHandler) CreateFromTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.fromTicket.Execute(c.Request.Context(), invoiceusecases.CreateInvoiceFromTicketCommand{
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Invoice created from ticket")
}

// GetInvoice returns an invoice, owner-scoped for client callers.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoiceID, err := utils.ParseUintParam(c, "id", "invoice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	clientID, err := h.callerClientID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.get.Execute(c.Request.Context(), invoiceusecases.GetInvoiceQuery{
		InvoiceID: invoiceID,
		ClientID:  clientID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListInvoices returns a paginated invoice list scoped to the caller.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	pg := utils.ParsePagination(c)

	query := invoiceusecases.ListInvoicesQuery{
		Status:   c.Query("status"),
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

	utils.ListSuccessResponse(c, result.Invoices, result.Total, result.Page, result.PageSize)
}

// SendInvoice marks the invoice sent and starts the payment clock.
func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	invoiceID, err := utils.ParseUintParam(c, "id", "invoice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.send.Execute(c.Request.Context(), invoiceusecases.SendInvoiceCommand{InvoiceID: invoiceID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invoice sent", result)
}

// MarkPaid records payment of the invoice.
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	invoiceID, err := utils.ParseUintParam(c, "id", "invoice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markPaid.Execute(c.Request.Context(), invoiceusecases.MarkInvoicePaidCommand{InvoiceID: invoiceID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invoice marked paid", result)
}

// CancelInvoice voids the invoice.
func (h *InvoiceHandler) CancelInvoice(c *gin.Context) {
	invoiceID, err := utils.ParseUintParam(c, "id", "invoice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.cancel.Execute(c.Request.Context(), invoiceusecases.CancelInvoiceCommand{InvoiceID: invoiceID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invoice cancelled", result)
}

// ProcessOverdue sweeps sent invoices past their due date.
func (h *InvoiceHandler) ProcessOverdue(c *gin.Context) {
	result, err := h.processOverdue.Execute(c.Request.Context(), invoiceusecases.ProcessOverdueCommand{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Overdue sweep completed", result)
}
