package patient

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/optic-manager/internal/audit"
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

type CreatePatientInput struct {
	Name      string
	Phone     string
	Email     string
	BirthDate string
	Address   string
}

// ======================================================
// USE CASE
// ======================================================

type CreatePatient struct {
	store *store.Store
	audit *audit.Logger
	clock timezone.Clock
}

func NewCreatePatient(
	store *store.Store,
	audit *audit.Logger,
	clock timezone.Clock,
) *CreatePatient {
	return &CreatePatient{
		store: store,
		audit: audit,
		clock: clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePatient) Execute(
	ctx context.Context,
	in CreatePatientInput,
) (*models.Patient, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("missing_name")
	}

	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return nil, httperr.ErrBusiness("missing_phone")
	}

	email := strings.TrimSpace(in.Email)
	if email != "" && !validators.IsEmail(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	p := models.Patient{
		ID:        ids.New(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		BirthDate: strings.TrimSpace(in.BirthDate),
		Address:   strings.TrimSpace(in.Address),
		CreatedAt: uc.clock(),
	}

	if err := uc.store.Update(ctx, func(c *store.Collections) error {
		c.Patients = append(c.Patients, p)
		return nil
	}); err != nil {
		return nil, err
	}

	uc.audit.Log(audit.Event{
		Action:   "patient_created",
		Entity:   "patient",
		EntityID: p.ID,
	})

	return &p, nil
}
