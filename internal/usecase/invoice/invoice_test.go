package invoice

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/optic-manager/internal/audit"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	"github.com/BruksfildServices01/optic-manager/internal/timezone"
)

func TestCreateInvoice_SequentialNumbers(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.NewMemoryBackend(), nil)
	loc := timezone.Location("Africa/Malabo")
	now := time.Date(2024, 6, 1, 23, 30, 0, 0, loc)
	uc := NewCreateInvoice(s, audit.New(nil), timezone.FixedClock(now))

	for i := 1; i <= 3; i++ {
		inv, err := uc.Execute(ctx, CreateInvoiceInput{
			PatientID: "p1", Concept: "Lentes", Amount: "100", PaymentMethod: "cash",
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("2024-%04d", i), inv.Number)
		assert.Equal(t, "2024-06-01", inv.Date)
		assert.Equal(t, "paid", inv.Status)
	}
	assert.Len(t, s.Snapshot().Invoices, 3)
}

func TestCreateInvoice_Validation(t *testing.T) {
	s := store.New(store.NewMemoryBackend(), nil)
	uc := NewCreateInvoice(s, audit.New(nil), timezone.FixedClock(time.Now()))

	cases := map[string]CreateInvoiceInput{
		"missing_patient": {Concept: "x", Amount: "1", PaymentMethod: "cash"},
		"missing_concept": {PatientID: "p1", Amount: "1", PaymentMethod: "cash"},
		"invalid_amount":  {PatientID: "p1", Concept: "x", Amount: "NaN", PaymentMethod: "cash"},
		"negative_amount": {PatientID: "p1", Concept: "x", Amount: "-3", PaymentMethod: "cash"},
		"missing_payment": {PatientID: "p1", Concept: "x", Amount: "3"},
	}
	for code, in := range cases {
		_, err := uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, code), code)
	}

	_, err := uc.Execute(context.Background(), CreateInvoiceInput{PatientID: "p1", Concept: "x", Amount: "1e200000000", PaymentMethod: "cash"})
	assert.True(t, httperr.IsBusiness(err, "invalid_amount"), "exponent notation is rejected")
	assert.Empty(t, s.Snapshot().Invoices)
}

func TestDeleteInvoice(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.NewMemoryBackend(), nil)
	inv, err := NewCreateInvoice(s, audit.New(nil), timezone.FixedClock(time.Now())).
		Execute(ctx, CreateInvoiceInput{PatientID: "p1", Concept: "x", Amount: "1", PaymentMethod: "card"})
	require.NoError(t, err)

	del := NewDeleteInvoice(s, audit.New(nil))
	assert.True(t, httperr.IsBusiness(del.Execute(ctx, inv.ID, false), "confirmation_required"))
	require.NoError(t, del.Execute(ctx, inv.ID, true))
	assert.Empty(t, s.Snapshot().Invoices)
	require.NoError(t, del.Execute(ctx, inv.ID, true))
}

func TestPrintInvoice(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.NewMemoryBackend(), nil)
	require.NoError(t, s.Update(ctx, func(c *store.Collections) error {
		c.Patients = []models.Patient{{ID: "p1", Name: "Ana", Phone: "222"}}
		c.Invoices = []models.Invoice{
			{ID: "i1", Number: "2024-0001", PatientID: "p1", Concept: "Lentes", PaymentMethod: "cash", Date: "2024-06-01"},
			{ID: "i2", Number: "2024-0002", PatientID: "gone"},
		}
		return nil
	}))
	uc := NewPrintInvoice(s, "Optica Maxima G.E")

	doc, err := uc.Execute("i1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", doc.PatientName)
	assert.Equal(t, "222", doc.PatientPhone)
	assert.Equal(t, "Optica Maxima G.E", doc.ShopName)

	_, err = uc.Execute("i2")
	assert.True(t, httperr.IsBusiness(err, "invoice_not_found"))
	_, err = uc.Execute("missing")
	assert.True(t, httperr.IsBusiness(err, "invoice_not_found"))
}
