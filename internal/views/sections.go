package views

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/optic-manager/internal/dto"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/store"
)

const (
	SectionHome          = "inicio"
	SectionPatients      = "patients"
	SectionOrders        = "orders"
	SectionInvoices      = "invoices"
	SectionAppointments  = "appointments"
	SectionNotifications = "notifications"
)

// Sections in navigation order.
var Sections = []string{
	SectionHome,
	SectionPatients,
	SectionOrders,
	SectionInvoices,
	SectionAppointments,
	SectionNotifications,
}

var sectionTitles = map[string]string{
	SectionHome:          "Inicio",
	SectionPatients:      "Pacientes",
	SectionOrders:        "Pedidos",
	SectionInvoices:      "Facturas",
	SectionAppointments:  "Citas",
	SectionNotifications: "WhatsApp",
}

func SectionTitle(name string) string {
	return sectionTitles[name]
}

// Section is the view model of one screen. Only the fields of the
// requested section are filled.
type Section struct {
	Name           string
	Title          string
	Dashboard      *dto.Dashboard
	Patients       []models.Patient
	Orders         []dto.OrderRow
	Invoices       []dto.InvoiceRow
	Appointments   []dto.AppointmentRow
	Messages       []models.Message
	PatientOptions []dto.PatientOption
}

// Refresh recomputes one section from the current state.
func Refresh(section string, c store.Collections, now time.Time) (Section, error) {
	name := strings.ToLower(strings.TrimSpace(section))
	title, ok := sectionTitles[name]
	if !ok {
		return Section{}, httperr.ErrBusiness("section_not_found")
	}

	s := Section{Name: name, Title: title, PatientOptions: PatientOptions(c)}

	switch name {
	case SectionHome:
		d := Dashboard(c, now)
		s.Dashboard = &d
	case SectionPatients:
		s.Patients = c.Patients
	case SectionOrders:
		s.Orders = OrderRows(c, c.Orders)
	case SectionInvoices:
		s.Invoices = InvoiceRows(c)
	case SectionAppointments:
		s.Appointments = AppointmentRows(c, c.Appointments)
	case SectionNotifications:
		s.Messages = RecentMessages(c.Messages)
	}
	return s, nil
}
