package invoice

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/optic-manager/internal/audit"
	domain "github.com/BruksfildServices01/optic-manager/internal/domain/invoice"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/ids"
	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	"github.com/BruksfildServices01/optic-manager/internal/timezone"
	"github.com/BruksfildServices01/optic-manager/internal/validators"
)

type CreateInvoiceInput struct {
	PatientID     string
	Concept       string
	Amount        string
	PaymentMethod string
}

type CreateInvoice struct {
	store *store.Store
	audit *audit.Logger
	clock timezone.Clock
}

func NewCreateInvoice(
	store *store.Store,
	audit *audit.Logger,
	clock timezone.Clock,
) *CreateInvoice {
	return &CreateInvoice{
		store: store,
		audit: audit,
		clock: clock,
	}
}

// Execute records a paid invoice dated today in the shop's timezone.
func (uc *CreateInvoice) Execute(
	ctx context.Context,
	in CreateInvoiceInput,
) (*models.Invoice, error) {

	if strings.TrimSpace(in.PatientID) == "" {
		return nil, httperr.ErrBusiness("missing_patient")
	}

	concept := strings.TrimSpace(in.Concept)
	if concept == "" {
		return nil, httperr.ErrBusiness("missing_concept")
	}

	amount, ok := validators.ParseMoney(in.Amount)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_amount")
	}
	if amount.IsNegative() {
		return nil, httperr.ErrBusiness("negative_amount")
	}

	method := strings.TrimSpace(in.PaymentMethod)
	if method == "" {
		return nil, httperr.ErrBusiness("missing_payment")
	}

	now := uc.clock()
	inv := models.Invoice{
		ID:            ids.New(),
		PatientID:     strings.TrimSpace(in.PatientID),
		Concept:       concept,
		Amount:        amount,
		PaymentMethod: method,
		Date:          timezone.Today(now),
		Status:        domain.StatusPaid,
	}

	// The number depends on the count, so it is taken under the store lock.
	if err := uc.store.Update(ctx, func(c *store.Collections) error {
		inv.Number = domain.Number(now, len(c.Invoices))
		c.Invoices = append(c.Invoices, inv)
		return nil
	}); err != nil {
		return nil, err
	}

	uc.audit.Log(audit.Event{
		Action:   "invoice_created",
		Entity:   "invoice",
		EntityID: inv.ID,
		Metadata: map[string]any{"number": inv.Number, "amount": inv.Amount.String()},
	})

	return &inv, nil
}
