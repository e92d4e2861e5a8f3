package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/optic-manager/internal/dto"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/notify"
	"github.com/BruksfildServices01/optic-manager/internal/render"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	"github.com/BruksfildServices01/optic-manager/internal/timezone"
	ucInvoice "github.com/BruksfildServices01/optic-manager/internal/usecase/invoice"
	"github.com/BruksfildServices01/optic-manager/internal/views"
)

// WebHandler serves the HTML screens. Templates are registered on the
// engine with SetHTMLTemplate.
type WebHandler struct {
	store    *store.Store
	clock    timezone.Clock
	notifier *notify.Notifier
	printer  *ucInvoice.PrintInvoice
	shopName string
}

func NewWebHandler(
	store *store.Store,
	clock timezone.Clock,
	notifier *notify.Notifier,
	printer *ucInvoice.PrintInvoice,
	shopName string,
) *WebHandler {
	return &WebHandler{
		store:    store,
		clock:    clock,
		notifier: notifier,
		printer:  printer,
		shopName: shopName,
	}
}

func (h *WebHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/web/"+views.SectionHome)
}

func (h *WebHandler) Section(c *gin.Context) {
	var (
		section views.Section
		err     error
	)
	h.store.View(func(col store.Collections) {
		section, err = views.Refresh(c.Param("section"), col, h.clock())
	})
	if err != nil {
		c.String(http.StatusNotFound, httperr.Message("section_not_found"))
		return
	}

	c.HTML(http.StatusOK, render.PageTemplate, h.page(section.Name, section, nil))
}

func (h *WebHandler) Report(c *gin.Context) {
	var (
		report dto.Report
		err    error
	)
	h.store.View(func(col store.Collections) {
		report, err = views.BuildReport(col.Invoices, c.Param("period"), h.clock())
	})
	if err != nil {
		c.String(http.StatusBadRequest, httperr.Message("invalid_report_period"))
		return
	}

	c.HTML(http.StatusOK, render.PageTemplate, h.page(views.SectionInvoices, views.Section{}, &report))
}

func (h *WebHandler) InvoicePrint(c *gin.Context) {
	doc, err := h.printer.Execute(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, httperr.Message("invoice_not_found"))
		return
	}
	c.HTML(http.StatusOK, render.InvoiceTemplate, doc)
}

func (h *WebHandler) page(active string, section views.Section, report *dto.Report) render.Page {
	return render.Page{
		ShopName:      h.shopName,
		Nav:           render.Navigation(active),
		Section:       section,
		Report:        report,
		Notifications: h.notifier.Active(),
	}
}
