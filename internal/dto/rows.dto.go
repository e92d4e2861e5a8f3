package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/optic-manager/internal/models"
)

// Rows carry the resolved patient name next to the stored record so the
// table and JSON listings never look the patient up twice.

type PatientOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type OrderRow struct {
	models.Order
	PatientName string `json:"patientName"`
	StatusLabel string `json:"statusLabel"`
}

type InvoiceRow struct {
	models.Invoice
	PatientName string `json:"patientName"`
}

type AppointmentRow struct {
	models.Appointment
	PatientName string `json:"patientName"`
	StatusLabel string `json:"statusLabel"`
}

type Report struct {
	Period  string          `json:"period"`
	Count   int             `json:"count"`
	Total   decimal.Decimal `json:"total"`
	Average decimal.Decimal `json:"average"`
}

type Dashboard struct {
	TotalPatients        int              `json:"totalPatients"`
	ActiveOrders         int              `json:"activeOrders"`
	TodayAppointments    int              `json:"todayAppointments"`
	MonthlyRevenue       decimal.Decimal  `json:"monthlyRevenue"`
	RecentOrders         []OrderRow       `json:"recentOrders"`
	UpcomingAppointments []AppointmentRow `json:"upcomingAppointments"`
}

// InvoiceDocument is everything printed on a FACTURA.
type InvoiceDocument struct {
	Number        string          `json:"number"`
	Date          string          `json:"date"`
	PatientName   string          `json:"patientName"`
	PatientPhone  string          `json:"patientPhone"`
	Concept       string          `json:"concept"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	ShopName      string          `json:"shopName"`
}
