package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicer/internal/core/id"
	"invoicer/internal/domain/invoice"
	"invoicer/internal/infrastructure/http/v1/dto"
)

// InvoiceService is the invoice API used by InvoiceHandler.
type InvoiceService interface {
	NextNumber(ctx context.Context) (string, error)
	List(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error)
	Get(ctx context.Context, invoiceID id.ID) (*invoice.Invoice, error)
	Create(ctx context.Context, req invoice.CreateRequest) (id.ID, error)
	Update(ctx context.Context, invoiceID id.ID, req invoice.UpdateRequest) error
	Delete(ctx context.Context, invoiceID id.ID) error
	Render(ctx context.Context, invoiceID id.ID, format invoice.Format) (*invoice.RenderedDocument, error)
}

// InvoiceHandler handles /invoices endpoints.
type InvoiceHandler struct {
	*BaseHandler
	service InvoiceService
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, service InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers invoice routes on group.
func (h *InvoiceHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/next-number", h.NextNumber)
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.PUT("/update/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.GET("/:id/pdf", h.export(invoice.FormatPDF))
	group.GET("/:id/csv", h.export(invoice.FormatCSV))
}

// NextNumber handles GET /invoices/next-number
func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	next, err := h.service.NextNumber(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NextNumberResponse{NextNumber: next})
}

// List handles GET /invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	var q dto.InvoiceListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromInvoices(items))
}

// Get handles GET /invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	invoiceID, ok := h.ParamID(c)
	if !ok {
		return
	}

	inv, err := h.service.Get(c.Request.Context(), invoiceID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromInvoice(inv))
}

// Create handles POST /invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	domainReq, err := req.ToDomain()
	if err != nil {
		h.Error(c, err)
		return
	}

	invoiceID, err := h.service.Create(c.Request.Context(), domainReq)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, invoiceID)
}

// Update handles PUT /invoices/:id and PUT /invoices/update/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	invoiceID, ok := h.ParamID(c)
	if !ok {
		return
	}
	var req dto.UpdateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	domainReq, err := req.ToDomain()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), invoiceID, domainReq); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "invoice updated")
}

// Delete handles DELETE /invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	invoiceID, ok := h.ParamID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), invoiceID); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "invoice deleted")
}

// export handles GET /invoices/:id/{pdf,csv}
func (h *InvoiceHandler) export(format invoice.Format) gin.HandlerFunc {
	return func(c *gin.Context) {
		invoiceID, ok := h.ParamID(c)
		if !ok {
			return
		}

		doc, err := h.service.Render(c.Request.Context(), invoiceID, format)
		if err != nil {
			h.Error(c, err)
			return
		}
		h.Attachment(c, doc.Filename, doc.ContentType, doc.Body)
	}
}
