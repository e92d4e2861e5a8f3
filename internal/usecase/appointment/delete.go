package appointment

import (
	"context"

	"github.com/BruksfildServices01/optic-manager/internal/audit"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/store"
)

type DeleteAppointment struct {
	store *store.Store
	audit *audit.Logger
}

func NewDeleteAppointment(store *store.Store, audit *audit.Logger) *DeleteAppointment {
	return &DeleteAppointment{store: store, audit: audit}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return httperr.ErrBusiness("confirmation_required")
	}

	removed := false
	err := uc.store.Update(ctx, func(c *store.Collections) error {
		c.Appointments, removed = store.RemoveByID(c.Appointments, id, func(a models.Appointment) string { return a.ID })
		if !removed {
			return store.ErrUnchanged
		}
		return nil
	})
	if err != nil {
		return err
	}

	if removed {
		uc.audit.Log(audit.Event{Action: "appointment_deleted", Entity: "appointment", EntityID: id})
	}
	return nil
}
