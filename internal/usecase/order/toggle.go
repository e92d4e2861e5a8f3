package order

import (
	"context"

	"github.com/BruksfildServices01/optic-manager/internal/audit"
	domain "github.com/BruksfildServices01/optic-manager/internal/domain/order"
	"github.com/BruksfildServices01/optic-manager/internal/store"
)

type ToggleOrder struct {
	store *store.Store
	audit *audit.Logger
}

func NewToggleOrder(store *store.Store, audit *audit.Logger) *ToggleOrder {
	return &ToggleOrder{store: store, audit: audit}
}

// Execute flips the order between active and completed and returns the
// new status. An unknown id changes nothing and returns "".
func (uc *ToggleOrder) Execute(ctx context.Context, id string) (domain.Status, error) {
	var next domain.Status

	err := uc.store.Update(ctx, func(c *store.Collections) error {
		for i := range c.Orders {
			if c.Orders[i].ID != id {
				continue
			}
			domain.Toggle(&c.Orders[i])
			next = domain.Status(c.Orders[i].Status)
			return nil
		}
		return store.ErrUnchanged
	})
	if err != nil {
		return "", err
	}

	if next != "" {
		uc.audit.Log(audit.Event{
			Action:   "order_status_changed",
			Entity:   "order",
			EntityID: id,
			Metadata: map[string]any{"status": string(next)},
		})
	}
	return next, nil
}
