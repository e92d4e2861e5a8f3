package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/optic-manager/internal/dto"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/httpresp"
	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	ucMessage "github.com/BruksfildServices01/optic-manager/internal/usecase/message"
	"github.com/BruksfildServices01/optic-manager/internal/views"
	"github.com/BruksfildServices01/optic-manager/internal/whatsapp"
)

type MessageHandler struct {
	store *store.Store
	send  *ucMessage.SendWhatsApp
	Feedback
}

func NewMessageHandler(store *store.Store, send *ucMessage.SendWhatsApp, fb Feedback) *MessageHandler {
	return &MessageHandler{store: store, send: send, Feedback: fb}
}

// History lists the last ten messages, newest first.
func (h *MessageHandler) History(c *gin.Context) {
	var msgs []models.Message
	h.store.View(func(col store.Collections) {
		msgs = views.RecentMessages(col.Messages)
	})
	httpresp.List(c, msgs)
}

func (h *MessageHandler) SendWhatsApp(c *gin.Context) {
	var req dto.SendWhatsAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidRequest(c)
		return
	}

	res, err := h.send.Execute(c.Request.Context(), ucMessage.SendWhatsAppInput{
		PatientID: req.PatientID,
		Message:   req.Message,
		Type:      req.Type,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.success("Mensaje enviado exitosamente")
	httpresp.Created(c, res)
}

// Template returns a canned text. With ?patientId= the patient's name
// replaces the [Nombre] placeholder.
func (h *MessageHandler) Template(c *gin.Context) {
	name := ""
	if id := c.Query("patientId"); id != "" {
		h.store.View(func(col store.Collections) {
			if p, ok := col.FindPatient(id).Get(); ok {
				name = p.Name
			}
		})
	}

	text, ok := whatsapp.Template(c.Param("name"), name)
	if !ok {
		httperr.FromError(c, httperr.ErrBusiness("template_not_found"))
		return
	}
	httpresp.OK(c, gin.H{"name": c.Param("name"), "message": text})
}
