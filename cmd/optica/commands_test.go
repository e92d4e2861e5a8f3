package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/notify"
	"github.com/BruksfildServices01/optic-manager/internal/store"
)

var now = time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

func fixture() store.Collections {
	return store.Collections{
		Patients: []models.Patient{
			{ID: "p1", Name: "Ana", Phone: "222", Email: "ana@example.com"},
			{ID: "p2", Name: "Luis", Phone: "333"},
		},
		Orders: []models.Order{{ID: "o1", PatientID: "p1", Status: "active"}},
		Invoices: []models.Invoice{
			{ID: "i1", Number: "2024-0001", PatientID: "p1", Concept: "Lentes", Amount: decimal.NewFromInt(100), PaymentMethod: "cash", Date: "2024-06-01"},
			{ID: "i2", Number: "2024-0002", PatientID: "p1", Amount: decimal.NewFromInt(50), Date: "2024-06-15"},
			{ID: "i3", Number: "2024-0003", PatientID: "p1", Amount: decimal.NewFromInt(999), Date: "2024-05-30"},
		},
		Appointments: []models.Appointment{{ID: "a1", PatientID: "p2", Date: "2024-06-21", Time: "09:00", Type: "Examen", Status: "confirmed"}},
		Messages:     []models.Message{{ID: "m1", PatientName: "Ana", Type: "ready", Message: "Listo", Status: "sent", SentAt: now}},
	}
}

func withNotifier(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	current.notifier = notify.New(time.Hour, notify.TerminalSink{Out: &buf})
	t.Cleanup(func() { current.notifier = nil })
	return &buf
}

func TestWriteStats(t *testing.T) {
	var buf bytes.Buffer
	writeStats(&buf, fixture(), now, "$")

	out := buf.String()
	assert.Contains(t, out, "Pacientes:         2")
	assert.Contains(t, out, "Pedidos activos:   1")
	assert.Contains(t, out, "Ingresos del mes:  $150.00")
	assert.Contains(t, out, "Luis")
	assert.Contains(t, out, "Confirmada")
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, fixture(), "monthly", now, "$"))
	assert.Contains(t, buf.String(), "Facturas (monthly):  3")
	assert.Contains(t, buf.String(), "Total Ingresos:  $1149.00")
	assert.Contains(t, buf.String(), "Promedio:        $383.00")
}

func TestWriteReport_UnknownPeriod(t *testing.T) {
	errOut := withNotifier(t)

	err := writeReport(&bytes.Buffer{}, fixture(), "yearly", now, "$")
	assert.True(t, httperr.IsBusiness(err, "invalid_report_period"))
	assert.Contains(t, errOut.String(), "Tipo de reporte inválido.")
}

func TestPrintInvoice(t *testing.T) {
	s := store.New(store.NewMemoryBackend(), nil)
	require.NoError(t, s.Update(context.Background(), func(c *store.Collections) error {
		*c = fixture()
		return nil
	}))

	var buf bytes.Buffer
	require.NoError(t, printInvoice(&buf, s, "i1", "Optica Maxima G.E", "$"))
	assert.Contains(t, buf.String(), "FACTURA")
	assert.Contains(t, buf.String(), "$100.00")

	errOut := withNotifier(t)
	err := printInvoice(&bytes.Buffer{}, s, "missing", "Optica Maxima G.E", "$")
	assert.True(t, httperr.IsBusiness(err, "invoice_not_found"))
	assert.Contains(t, errOut.String(), "Factura no encontrada.")
}

func TestWritePatients(t *testing.T) {
	var buf bytes.Buffer
	writePatients(&buf, fixture().Patients)
	assert.Contains(t, buf.String(), "ana@example.com")
	assert.Contains(t, buf.String(), "Luis")

	buf.Reset()
	writePatients(&buf, nil)
	assert.Contains(t, buf.String(), "Sin pacientes registrados")
}

func TestWriteMessages(t *testing.T) {
	var buf bytes.Buffer
	writeMessages(&buf, fixture().Messages)
	assert.Contains(t, buf.String(), "Listo")
	assert.Contains(t, buf.String(), "Enviado")
	assert.Contains(t, buf.String(), "20/06/2024")

	buf.Reset()
	writeMessages(&buf, nil)
	assert.Contains(t, buf.String(), "Sin mensajes enviados")
}
