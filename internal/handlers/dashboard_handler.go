package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/optic-manager/internal/dto"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/httpresp"
	"github.com/BruksfildServices01/optic-manager/internal/notify"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	"github.com/BruksfildServices01/optic-manager/internal/timezone"
	"github.com/BruksfildServices01/optic-manager/internal/views"
)

type DashboardHandler struct {
	store    *store.Store
	clock    timezone.Clock
	notifier *notify.Notifier
}

func NewDashboardHandler(store *store.Store, clock timezone.Clock, notifier *notify.Notifier) *DashboardHandler {
	return &DashboardHandler{store: store, clock: clock, notifier: notifier}
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	var d dto.Dashboard
	h.store.View(func(col store.Collections) {
		d = views.Dashboard(col, h.clock())
	})
	httpresp.OK(c, d)
}

func (h *DashboardHandler) Report(c *gin.Context) {
	var (
		report dto.Report
		err    error
	)
	h.store.View(func(col store.Collections) {
		report, err = views.BuildReport(col.Invoices, c.Param("period"), h.clock())
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, report)
}

// Notifications lists what is currently on screen.
func (h *DashboardHandler) Notifications(c *gin.Context) {
	httpresp.List(c, h.notifier.Active())
}
