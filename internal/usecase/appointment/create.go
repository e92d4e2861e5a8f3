package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/optic-manager/internal/audit"
	domain "github.com/BruksfildServices01/optic-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/ids"
	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	"github.com/BruksfildServices01/optic-manager/internal/timezone"
	"github.com/BruksfildServices01/optic-manager/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PatientID string
	Date      string
	Time      string
	Type      string
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	store *store.Store
	audit *audit.Logger
	clock timezone.Clock
}

func NewCreateAppointment(
	store *store.Store,
	audit *audit.Logger,
	clock timezone.Clock,
) *CreateAppointment {
	return &CreateAppointment{
		store: store,
		audit: audit,
		clock: clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books an appointment. Past dates are accepted: the shop also
// records visits after the fact.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if strings.TrimSpace(in.PatientID) == "" {
		return nil, httperr.ErrBusiness("missing_patient")
	}

	date := strings.TrimSpace(in.Date)
	clock := strings.TrimSpace(in.Time)
	if !validators.IsDate(date) || !validators.IsClock(clock) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	kind := strings.TrimSpace(in.Type)
	if kind == "" {
		return nil, httperr.ErrBusiness("missing_type")
	}

	ap := models.Appointment{
		ID:        ids.New(),
		PatientID: strings.TrimSpace(in.PatientID),
		Date:      date,
		Time:      clock,
		Type:      kind,
		Notes:     strings.TrimSpace(in.Notes),
		Status:    string(domain.InitialStatus()),
		CreatedAt: uc.clock(),
	}

	if err := uc.store.Update(ctx, func(c *store.Collections) error {
		c.Appointments = append(c.Appointments, ap)
		return nil
	}); err != nil {
		return nil, err
	}

	uc.audit.Log(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"date": ap.Date, "time": ap.Time},
	})

	return &ap, nil
}
