package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/optic-manager/internal/dto"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/httpresp"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	ucInvoice "github.com/BruksfildServices01/optic-manager/internal/usecase/invoice"
	"github.com/BruksfildServices01/optic-manager/internal/views"
)

type InvoiceHandler struct {
	store   *store.Store
	create  *ucInvoice.CreateInvoice
	remove  *ucInvoice.DeleteInvoice
	printer *ucInvoice.PrintInvoice
	Feedback
}

func NewInvoiceHandler(
	store *store.Store,
	create *ucInvoice.CreateInvoice,
	remove *ucInvoice.DeleteInvoice,
	printer *ucInvoice.PrintInvoice,
	fb Feedback,
) *InvoiceHandler {
	return &InvoiceHandler{
		store:    store,
		create:   create,
		remove:   remove,
		printer:  printer,
		Feedback: fb,
	}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	var rows []dto.InvoiceRow
	h.store.View(func(col store.Collections) {
		rows = views.InvoiceRows(col)
	})
	httpresp.List(c, rows)
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidRequest(c)
		return
	}

	inv, err := h.create.Execute(c.Request.Context(), ucInvoice.CreateInvoiceInput{
		PatientID:     req.PatientID,
		Concept:       req.Concept,
		Amount:        string(req.Amount),
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.success("Factura generada exitosamente")
	httpresp.Created(c, inv)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		h.fail(c, err)
		return
	}

	h.success("Factura eliminada")
	c.Status(http.StatusNoContent)
}

// Print returns the data of the printed invoice. The HTML document is
// served under /web.
func (h *InvoiceHandler) Print(c *gin.Context) {
	doc, err := h.printer.Execute(c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, doc)
}
