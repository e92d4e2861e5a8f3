package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/optic-manager/internal/dto"
	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/notify"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	"github.com/BruksfildServices01/optic-manager/internal/views"
)

func fixture() store.Collections {
	return store.Collections{
		Patients: []models.Patient{{ID: "p1", Name: "Ana <Obiang>", Phone: "222"}},
		Orders: []models.Order{
			{ID: "o1", PatientID: "p1", LensType: "Progresivo", Price: decimal.RequireFromString("150"), Status: "active"},
			{ID: "o2", PatientID: "gone", LensType: "Monofocal", Price: decimal.Zero, Status: "completed"},
		},
		Invoices:     []models.Invoice{{ID: "i1", Number: "2024-0001", PatientID: "p1", Amount: decimal.NewFromInt(100), Date: "2024-06-01"}},
		Appointments: []models.Appointment{{ID: "a1", PatientID: "p1", Date: "2024-06-02", Time: "09:00", Type: "Examen", Status: "pending"}},
		Messages:     []models.Message{{ID: "m1", PatientName: "Ana", Message: "Hola", Type: "custom", Status: "sent", SentAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}},
	}
}

func TestRenderer_Sections(t *testing.T) {
	r, err := New("$")
	require.NoError(t, err)
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	want := map[string][]string{
		views.SectionHome:          {"$100.00", "Progresivo - Sin especificar", "Próximas citas", "Pendiente"},
		views.SectionPatients:      {"Ana &lt;Obiang&gt;", "<td>-</td>"},
		views.SectionOrders:        {"Activo", "Completado", "Completar", "Reactivar", views.MissingPatient, "$150.00"},
		views.SectionInvoices:      {"2024-0001", "/web/invoices/i1/print"},
		views.SectionAppointments:  {"Recordar", "Pendiente"},
		views.SectionNotifications: {"Enviado", "01/06/2024"},
	}

	for name, fragments := range want {
		section, err := views.Refresh(name, fixture(), now)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.Page(&buf, Page{
			ShopName:      "Optica Maxima G.E",
			Nav:           Navigation(name),
			Section:       section,
			Notifications: []notify.Notification{{Message: "Paciente eliminado", Severity: notify.SeveritySuccess}},
		}))

		html := buf.String()
		assert.Contains(t, html, "notification-success", name)
		for _, f := range fragments {
			assert.Contains(t, html, f, name)
		}
	}
}

func TestRenderer_Report(t *testing.T) {
	r, err := New("$")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, Page{
		Nav:    Navigation(views.SectionInvoices),
		Report: &dto.Report{Period: "weekly", Count: 0, Total: decimal.Zero, Average: decimal.Zero},
	}))
	assert.Contains(t, buf.String(), "Facturas (weekly)")
	assert.Contains(t, buf.String(), "$0.00")
}

func TestRenderer_Invoice(t *testing.T) {
	r, err := New("$")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Invoice(&buf, dto.InvoiceDocument{
		Number: "2024-0007", Date: "2024-06-01", PatientName: "Ana", PatientPhone: "222",
		Concept: "Lentes", Amount: decimal.RequireFromString("99.5"), PaymentMethod: "cash",
		ShopName: "Optica Maxima G.E",
	}))

	html := buf.String()
	for _, f := range []string{"FACTURA", "2024-0007", "$99.50", "Gracias por su confianza en Optica Maxima G.E"} {
		assert.Contains(t, html, f)
	}
}

func TestNavigation(t *testing.T) {
	nav := Navigation(views.SectionOrders)
	require.Len(t, nav, len(views.Sections))
	assert.Equal(t, "Inicio", nav[0].Title)
	assert.True(t, nav[2].Active)
	assert.False(t, nav[0].Active)
}
