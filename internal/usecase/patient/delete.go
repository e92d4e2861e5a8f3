package patient

import (
	"context"

	"github.com/BruksfildServices01/optic-manager/internal/audit"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/store"
)

type DeletePatient struct {
	store *store.Store
	audit *audit.Logger
}

func NewDeletePatient(store *store.Store, audit *audit.Logger) *DeletePatient {
	return &DeletePatient{store: store, audit: audit}
}

// Execute removes the patient. Orders, invoices, appointments and
// messages that point at it are kept and show a placeholder name.
// An unknown id is a no-op.
func (uc *DeletePatient) Execute(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return httperr.ErrBusiness("confirmation_required")
	}

	removed := false
	err := uc.store.Update(ctx, func(c *store.Collections) error {
		c.Patients, removed = store.RemoveByID(c.Patients, id, func(p models.Patient) string { return p.ID })
		if !removed {
			return store.ErrUnchanged
		}
		return nil
	})
	if err != nil {
		return err
	}

	if removed {
		uc.audit.Log(audit.Event{Action: "patient_deleted", Entity: "patient", EntityID: id})
	}
	return nil
}
