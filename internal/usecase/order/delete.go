package order

import (
	"context"

	"github.com/BruksfildServices01/optic-manager/internal/audit"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/store"
)

type DeleteOrder struct {
	store *store.Store
	audit *audit.Logger
}

func NewDeleteOrder(store *store.Store, audit *audit.Logger) *DeleteOrder {
	return &DeleteOrder{store: store, audit: audit}
}

func (uc *DeleteOrder) Execute(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return httperr.ErrBusiness("confirmation_required")
	}

	removed := false
	err := uc.store.Update(ctx, func(c *store.Collections) error {
		c.Orders, removed = store.RemoveByID(c.Orders, id, func(o models.Order) string { return o.ID })
		if !removed {
			return store.ErrUnchanged
		}
		return nil
	})
	if err != nil {
		return err
	}

	if removed {
		uc.audit.Log(audit.Event{Action: "order_deleted", Entity: "order", EntityID: id})
	}
	return nil
}
