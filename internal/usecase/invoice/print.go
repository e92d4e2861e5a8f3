package invoice

import (
	"github.com/BruksfildServices01/optic-manager/internal/dto"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/store"
)

type PrintInvoice struct {
	store    *store.Store
	shopName string
}

func NewPrintInvoice(store *store.Store, shopName string) *PrintInvoice {
	return &PrintInvoice{store: store, shopName: shopName}
}

// Execute gathers what goes on the printed invoice. Both the invoice and
// its patient must exist.
func (uc *PrintInvoice) Execute(id string) (*dto.InvoiceDocument, error) {
	var (
		doc   dto.InvoiceDocument
		found bool
	)

	uc.store.View(func(c store.Collections) {
		inv, ok := c.FindInvoice(id).Get()
		if !ok {
			return
		}
		p, ok := c.FindPatient(inv.PatientID).Get()
		if !ok {
			return
		}
		found = true
		doc = dto.InvoiceDocument{
			Number:        inv.Number,
			Date:          inv.Date,
			PatientName:   p.Name,
			PatientPhone:  p.Phone,
			Concept:       inv.Concept,
			Amount:        inv.Amount,
			PaymentMethod: inv.PaymentMethod,
			ShopName:      uc.shopName,
		}
	})

	if !found {
		return nil, httperr.ErrBusiness("invoice_not_found")
	}
	return &doc, nil
}
