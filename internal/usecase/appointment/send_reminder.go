package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/optic-manager/internal/audit"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	"github.com/BruksfildServices01/optic-manager/internal/whatsapp"
)

type ReminderResult struct {
	Sent bool   `json:"sent"`
	Link string `json:"link,omitempty"`
}

type SendReminder struct {
	store  *store.Store
	audit  *audit.Logger
	opener whatsapp.LinkOpener
	log    *zap.Logger
}

func NewSendReminder(
	store *store.Store,
	audit *audit.Logger,
	opener whatsapp.LinkOpener,
	log *zap.Logger,
) *SendReminder {
	if log == nil {
		log = zap.NewNop()
	}
	return &SendReminder{
		store:  store,
		audit:  audit,
		opener: opener,
		log:    log,
	}
}

// Execute opens a WhatsApp reminder for the appointment. Nothing is
// stored. A missing appointment or patient yields Sent=false.
func (uc *SendReminder) Execute(ctx context.Context, id string) (ReminderResult, error) {
	var (
		text, phone string
		found       bool
	)

	uc.store.View(func(c store.Collections) {
		ap, ok := c.FindAppointment(id).Get()
		if !ok {
			return
		}
		p, ok := c.FindPatient(ap.PatientID).Get()
		if !ok {
			return
		}
		found = true
		phone = p.Phone
		text = whatsapp.ReminderText(p.Name, ap.Date, ap.Time, ap.Type)
	})

	if !found {
		return ReminderResult{}, nil
	}

	link, ok := whatsapp.BuildLink(phone, text)
	if !ok {
		return ReminderResult{}, httperr.ErrBusiness("phone_unavailable")
	}

	if err := uc.opener.Open(ctx, link); err != nil {
		uc.log.Warn("failed to open whatsapp link", zap.String("appointment_id", id), zap.Error(err))
	}

	uc.audit.Log(audit.Event{Action: "appointment_reminder_sent", Entity: "appointment", EntityID: id})

	return ReminderResult{Sent: true, Link: link}, nil
}
