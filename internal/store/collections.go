package store

import (
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/BruksfildServices01/optic-manager/internal/models"
)

const (
	KeyPatients     = "patients"
	KeyOrders       = "orders"
	KeyInvoices     = "invoices"
	KeyAppointments = "appointments"
	KeyMessages     = "messages"
)

// Keys lists the storage keys in the order they are written.
var Keys = []string{KeyPatients, KeyOrders, KeyInvoices, KeyAppointments, KeyMessages}

// Collections is the whole persisted state of the shop. Slices keep
// insertion order.
type Collections struct {
	Patients     []models.Patient
	Orders       []models.Order
	Invoices     []models.Invoice
	Appointments []models.Appointment
	Messages     []models.Message
}

// Clone copies every slice so the result can be mutated freely.
func (c Collections) Clone() Collections {
	return Collections{
		Patients:     slices.Clone(c.Patients),
		Orders:       slices.Clone(c.Orders),
		Invoices:     slices.Clone(c.Invoices),
		Appointments: slices.Clone(c.Appointments),
		Messages:     slices.Clone(c.Messages),
	}
}

func (c Collections) FindPatient(id string) mo.Option[models.Patient] {
	p, ok := lo.Find(c.Patients, func(p models.Patient) bool { return p.ID == id })
	return optionOf(p, ok)
}

func (c Collections) FindOrder(id string) mo.Option[models.Order] {
	o, ok := lo.Find(c.Orders, func(o models.Order) bool { return o.ID == id })
	return optionOf(o, ok)
}

func (c Collections) FindInvoice(id string) mo.Option[models.Invoice] {
	inv, ok := lo.Find(c.Invoices, func(i models.Invoice) bool { return i.ID == id })
	return optionOf(inv, ok)
}

func (c Collections) FindAppointment(id string) mo.Option[models.Appointment] {
	a, ok := lo.Find(c.Appointments, func(a models.Appointment) bool { return a.ID == id })
	return optionOf(a, ok)
}

func optionOf[T any](v T, ok bool) mo.Option[T] {
	if !ok {
		return mo.None[T]()
	}
	return mo.Some(v)
}

// RemoveByID drops every element whose id matches and reports whether
// anything was removed.
func RemoveByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	kept := lo.Reject(items, func(item T, _ int) bool { return idOf(item) == id })
	return kept, len(kept) != len(items)
}
