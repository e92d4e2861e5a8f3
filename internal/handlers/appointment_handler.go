package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/optic-manager/internal/dto"
	"github.com/BruksfildServices01/optic-manager/internal/httpresp"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	ucAppointment "github.com/BruksfildServices01/optic-manager/internal/usecase/appointment"
	"github.com/BruksfildServices01/optic-manager/internal/views"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	store    *store.Store
	create   *ucAppointment.CreateAppointment
	remove   *ucAppointment.DeleteAppointment
	reminder *ucAppointment.SendReminder
	Feedback
}

func NewAppointmentHandler(
	store *store.Store,
	create *ucAppointment.CreateAppointment,
	remove *ucAppointment.DeleteAppointment,
	reminder *ucAppointment.SendReminder,
	fb Feedback,
) *AppointmentHandler {
	return &AppointmentHandler{
		store:    store,
		create:   create,
		remove:   remove,
		reminder: reminder,
		Feedback: fb,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var rows []dto.AppointmentRow
	h.store.View(func(col store.Collections) {
		rows = views.AppointmentRows(col, col.Appointments)
	})
	httpresp.List(c, rows)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidRequest(c)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		PatientID: req.PatientID,
		Date:      req.Date,
		Time:      req.Time,
		Type:      req.Type,
		Notes:     req.Notes,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.success("Cita agendada exitosamente")
	httpresp.Created(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		h.fail(c, err)
		return
	}

	h.success("Cita eliminada")
	c.Status(http.StatusNoContent)
}

// ======================================================
// REMINDER
// ======================================================

func (h *AppointmentHandler) Reminder(c *gin.Context) {
	res, err := h.reminder.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	if res.Sent {
		h.success("Recordatorio enviado por WhatsApp")
	}
	httpresp.OK(c, res)
}
