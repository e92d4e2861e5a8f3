package message

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/optic-manager/internal/audit"
	domain "github.com/BruksfildServices01/optic-manager/internal/domain/message"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/ids"
	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	"github.com/BruksfildServices01/optic-manager/internal/timezone"
	"github.com/BruksfildServices01/optic-manager/internal/whatsapp"
)

type SendWhatsAppInput struct {
	PatientID string
	Message   string
	Type      string
}

type SendWhatsAppResult struct {
	Message models.Message `json:"message"`
	Link    string         `json:"link"`
}

type SendWhatsApp struct {
	store  *store.Store
	audit  *audit.Logger
	clock  timezone.Clock
	opener whatsapp.LinkOpener
	log    *zap.Logger
}

func NewSendWhatsApp(
	store *store.Store,
	audit *audit.Logger,
	clock timezone.Clock,
	opener whatsapp.LinkOpener,
	log *zap.Logger,
) *SendWhatsApp {
	if log == nil {
		log = zap.NewNop()
	}
	return &SendWhatsApp{
		store:  store,
		audit:  audit,
		clock:  clock,
		opener: opener,
		log:    log,
	}
}

// Execute records the message as sent and hands the wa.me link to the
// opener. The record is kept even when the opener fails; delivery is
// finished by hand in WhatsApp.
func (uc *SendWhatsApp) Execute(
	ctx context.Context,
	in SendWhatsAppInput,
) (*SendWhatsAppResult, error) {

	patientID := strings.TrimSpace(in.PatientID)
	if patientID == "" {
		return nil, httperr.ErrBusiness("missing_patient")
	}
	if strings.TrimSpace(in.Message) == "" {
		return nil, httperr.ErrBusiness("missing_message")
	}
	kind := strings.TrimSpace(in.Type)
	if kind == "" {
		return nil, httperr.ErrBusiness("missing_type")
	}

	var (
		msg  models.Message
		link string
	)

	err := uc.store.Update(ctx, func(c *store.Collections) error {
		p, ok := c.FindPatient(patientID).Get()
		if !ok {
			return httperr.ErrBusiness("phone_unavailable")
		}

		built, ok := whatsapp.BuildLink(p.Phone, in.Message)
		if !ok {
			return httperr.ErrBusiness("phone_unavailable")
		}
		link = built

		msg = models.Message{
			ID:          ids.New(),
			PatientID:   p.ID,
			PatientName: p.Name,
			Phone:       p.Phone,
			Message:     in.Message,
			Type:        kind,
			SentAt:      uc.clock(),
			Status:      domain.StatusSent,
		}
		c.Messages = append(c.Messages, msg)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Log(audit.Event{
		Action:   "whatsapp_sent",
		Entity:   "message",
		EntityID: msg.ID,
		Metadata: map[string]any{"patient_id": msg.PatientID, "type": msg.Type},
	})

	if err := uc.opener.Open(ctx, link); err != nil {
		uc.log.Warn("failed to open whatsapp link", zap.String("message_id", msg.ID), zap.Error(err))
	}

	return &SendWhatsAppResult{Message: msg, Link: link}, nil
}
