package views

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	domainAppointment "github.com/BruksfildServices01/optic-manager/internal/domain/appointment"
	domainOrder "github.com/BruksfildServices01/optic-manager/internal/domain/order"
	"github.com/BruksfildServices01/optic-manager/internal/dto"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	"github.com/BruksfildServices01/optic-manager/internal/timezone"
)

// MissingPatient is shown wherever a record points at a deleted patient.
const MissingPatient = "Paciente no encontrado"

const (
	recentOrdersLimit   = 5
	upcomingLimit       = 5
	messageHistoryLimit = 10
)

// ======================================================
// PATIENTS
// ======================================================

func PatientName(c store.Collections, id string) string {
	p, ok := c.FindPatient(id).Get()
	if !ok {
		return MissingPatient
	}
	return p.Name
}

func PatientOptions(c store.Collections) []dto.PatientOption {
	return lo.Map(c.Patients, func(p models.Patient, _ int) dto.PatientOption {
		return dto.PatientOption{ID: p.ID, Name: p.Name}
	})
}

// ======================================================
// ORDERS
// ======================================================

func OrderRows(c store.Collections, orders []models.Order) []dto.OrderRow {
	return lo.Map(orders, func(o models.Order, _ int) dto.OrderRow {
		return dto.OrderRow{
			Order:       o,
			PatientName: PatientName(c, o.PatientID),
			StatusLabel: domainOrder.Status(o.Status).Label(),
		}
	})
}

// RecentOrders is the last five orders by insertion, newest first.
func RecentOrders(c store.Collections) []dto.OrderRow {
	return OrderRows(c, lastReversed(c.Orders, recentOrdersLimit))
}

// ActiveOrders counts active orders of all time.
func ActiveOrders(orders []models.Order) int {
	return lo.CountBy(orders, func(o models.Order) bool {
		return o.Status == string(domainOrder.StatusActive)
	})
}

// ======================================================
// INVOICES
// ======================================================

func InvoiceRows(c store.Collections) []dto.InvoiceRow {
	return lo.Map(c.Invoices, func(inv models.Invoice, _ int) dto.InvoiceRow {
		return dto.InvoiceRow{Invoice: inv, PatientName: PatientName(c, inv.PatientID)}
	})
}

// MonthlyRevenue sums invoices dated in now's month and year. Dates that
// do not parse are ignored.
func MonthlyRevenue(invoices []models.Invoice, now time.Time) decimal.Decimal {
	inMonth := lo.Filter(invoices, func(inv models.Invoice, _ int) bool {
		d, err := timezone.ParseDate(inv.Date, now.Location())
		return err == nil && d.Year() == now.Year() && d.Month() == now.Month()
	})
	return sumAmounts(inMonth)
}

func FormatMoney(symbol string, d decimal.Decimal) string {
	return symbol + d.StringFixed(2)
}

// ======================================================
// APPOINTMENTS
// ======================================================

func AppointmentRows(c store.Collections, apts []models.Appointment) []dto.AppointmentRow {
	return lo.Map(apts, func(a models.Appointment, _ int) dto.AppointmentRow {
		return dto.AppointmentRow{
			Appointment: a,
			PatientName: PatientName(c, a.PatientID),
			StatusLabel: domainAppointment.Status(a.Status).Label(),
		}
	})
}

// TodayAppointments compares the stored date string with now's date.
func TodayAppointments(apts []models.Appointment, now time.Time) []models.Appointment {
	today := timezone.Today(now)
	return lo.Filter(apts, func(a models.Appointment, _ int) bool { return a.Date == today })
}

// UpcomingAppointments keeps appointments at or after now, earliest
// first, at most five. Ties keep insertion order; entries whose date or
// time does not parse are left out.
func UpcomingAppointments(c store.Collections, now time.Time) []dto.AppointmentRow {
	type dated struct {
		apt models.Appointment
		at  time.Time
	}

	var upcoming []dated
	for _, a := range c.Appointments {
		at, err := timezone.ParseDateTime(a.Date, a.Time, now.Location())
		if err != nil || at.Before(now) {
			continue
		}
		upcoming = append(upcoming, dated{apt: a, at: at})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].at.Before(upcoming[j].at)
	})

	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}
	return AppointmentRows(c, lo.Map(upcoming, func(d dated, _ int) models.Appointment { return d.apt }))
}

// ======================================================
// MESSAGES
// ======================================================

// RecentMessages is the last ten messages, newest first.
func RecentMessages(msgs []models.Message) []models.Message {
	return lastReversed(msgs, messageHistoryLimit)
}

// ======================================================
// DASHBOARD
// ======================================================

func Dashboard(c store.Collections, now time.Time) dto.Dashboard {
	return dto.Dashboard{
		TotalPatients:        len(c.Patients),
		ActiveOrders:         ActiveOrders(c.Orders),
		TodayAppointments:    len(TodayAppointments(c.Appointments, now)),
		MonthlyRevenue:       MonthlyRevenue(c.Invoices, now),
		RecentOrders:         RecentOrders(c),
		UpcomingAppointments: UpcomingAppointments(c, now),
	}
}

// ======================================================
// REPORTS
// ======================================================

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// BuildReport summarizes the invoices of a period ending now:
//
//	daily    invoice date equals today
//	weekly   invoice date at or after now minus seven days
//	monthly  invoice date at or after the same day of the previous month
func BuildReport(invoices []models.Invoice, period string, now time.Time) (dto.Report, error) {
	period = strings.ToLower(strings.TrimSpace(period))
	loc := now.Location()

	var keep func(models.Invoice) bool
	switch period {
	case PeriodDaily:
		today := timezone.Today(now)
		keep = func(inv models.Invoice) bool { return inv.Date == today }
	case PeriodWeekly:
		keep = onOrAfter(now.Add(-7*24*time.Hour), loc)
	case PeriodMonthly:
		keep = onOrAfter(time.Date(now.Year(), now.Month()-1, now.Day(), 0, 0, 0, 0, loc), loc)
	default:
		return dto.Report{}, httperr.ErrBusiness("invalid_report_period")
	}

	selected := lo.Filter(invoices, func(inv models.Invoice, _ int) bool { return keep(inv) })
	total := sumAmounts(selected)

	report := dto.Report{Period: period, Count: len(selected), Total: total, Average: decimal.Zero}
	if report.Count > 0 {
		report.Average = total.Div(decimal.NewFromInt(int64(report.Count)))
	}
	return report, nil
}

func onOrAfter(from time.Time, loc *time.Location) func(models.Invoice) bool {
	return func(inv models.Invoice) bool {
		d, err := timezone.ParseDate(inv.Date, loc)
		return err == nil && !d.Before(from)
	}
}

// ======================================================
// HELPERS
// ======================================================

func sumAmounts(invoices []models.Invoice) decimal.Decimal {
	return lo.Reduce(invoices, func(acc decimal.Decimal, inv models.Invoice, _ int) decimal.Decimal {
		return acc.Add(inv.Amount)
	}, decimal.Zero)
}

func lastReversed[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[len(items)-n:]
	}
	out := slices.Clone(items)
	slices.Reverse(out)
	return out
}
