package order

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/optic-manager/internal/audit"
	domain "github.com/BruksfildServices01/optic-manager/internal/domain/order"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/ids"
	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	"github.com/BruksfildServices01/optic-manager/internal/timezone"
	"github.com/BruksfildServices01/optic-manager/internal/validators"
)

type CreateOrderInput struct {
	PatientID string
	LensType  string
	Material  string
	Price     string
	Notes     string
}

type CreateOrder struct {
	store *store.Store
	audit *audit.Logger
	clock timezone.Clock
}

func NewCreateOrder(
	store *store.Store,
	audit *audit.Logger,
	clock timezone.Clock,
) *CreateOrder {
	return &CreateOrder{
		store: store,
		audit: audit,
		clock: clock,
	}
}

func (uc *CreateOrder) Execute(
	ctx context.Context,
	in CreateOrderInput,
) (*models.Order, error) {

	if strings.TrimSpace(in.PatientID) == "" {
		return nil, httperr.ErrBusiness("missing_patient")
	}

	lensType := strings.TrimSpace(in.LensType)
	if lensType == "" {
		return nil, httperr.ErrBusiness("missing_lens_type")
	}

	price, ok := validators.ParseMoney(in.Price)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_price")
	}
	if price.IsNegative() {
		return nil, httperr.ErrBusiness("negative_price")
	}

	o := models.Order{
		ID:        ids.New(),
		PatientID: strings.TrimSpace(in.PatientID),
		LensType:  lensType,
		Material:  strings.TrimSpace(in.Material),
		Price:     price,
		Notes:     strings.TrimSpace(in.Notes),
		Status:    string(domain.InitialStatus()),
		CreatedAt: uc.clock(),
	}

	if err := uc.store.Update(ctx, func(c *store.Collections) error {
		c.Orders = append(c.Orders, o)
		return nil
	}); err != nil {
		return nil, err
	}

	uc.audit.Log(audit.Event{
		Action:   "order_created",
		Entity:   "order",
		EntityID: o.ID,
		Metadata: map[string]any{"patient_id": o.PatientID, "price": o.Price.String()},
	})

	return &o, nil
}
