package invoice

import (
	"context"

	"github.com/BruksfildServices01/optic-manager/internal/audit"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/store"
)

type DeleteInvoice struct {
	store *store.Store
	audit *audit.Logger
}

func NewDeleteInvoice(store *store.Store, audit *audit.Logger) *DeleteInvoice {
	return &DeleteInvoice{store: store, audit: audit}
}

func (uc *DeleteInvoice) Execute(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return httperr.ErrBusiness("confirmation_required")
	}

	removed := false
	err := uc.store.Update(ctx, func(c *store.Collections) error {
		c.Invoices, removed = store.RemoveByID(c.Invoices, id, func(i models.Invoice) string { return i.ID })
		if !removed {
			return store.ErrUnchanged
		}
		return nil
	})
	if err != nil {
		return err
	}

	if removed {
		uc.audit.Log(audit.Event{Action: "invoice_deleted", Entity: "invoice", EntityID: id})
	}
	return nil
}
