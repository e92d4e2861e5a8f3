package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	domainMessage "github.com/BruksfildServices01/optic-manager/internal/domain/message"
	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/render"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	ucInvoice "github.com/BruksfildServices01/optic-manager/internal/usecase/invoice"
	"github.com/BruksfildServices01/optic-manager/internal/views"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// ======================================================
// STATS
// ======================================================

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		writeStats(cmd.OutOrStdout(), current.store.Snapshot(), current.clock(), current.cfg.CurrencySymbol)
		return nil
	},
}

func writeStats(w io.Writer, c store.Collections, now time.Time, symbol string) {
	d := views.Dashboard(c, now)

	fmt.Fprintln(w, titleStyle.Render("Inicio"))
	fmt.Fprintf(w, "Pacientes:         %d\n", d.TotalPatients)
	fmt.Fprintf(w, "Pedidos activos:   %d\n", d.ActiveOrders)
	fmt.Fprintf(w, "Citas hoy:         %d\n", d.TodayAppointments)
	fmt.Fprintf(w, "Ingresos del mes:  %s\n", views.FormatMoney(symbol, d.MonthlyRevenue))

	if len(d.UpcomingAppointments) > 0 {
		rows := make([][]string, 0, len(d.UpcomingAppointments))
		for _, a := range d.UpcomingAppointments {
			rows = append(rows, []string{a.PatientName, a.Type, a.Date + " " + a.Time, a.StatusLabel})
		}
		fmt.Fprintln(w, titleStyle.Render("Próximas citas"))
		fmt.Fprintln(w, newTable("Paciente", "Tipo", "Fecha", "Estado").Rows(rows...))
	}
}

// ======================================================
// REPORT
// ======================================================

var reportCmd = &cobra.Command{
	Use:       "report <daily|weekly|monthly>",
	Short:     "Summarize invoices of a period",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{views.PeriodDaily, views.PeriodWeekly, views.PeriodMonthly},
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeReport(cmd.OutOrStdout(), current.store.Snapshot(), args[0], current.clock(), current.cfg.CurrencySymbol)
	},
}

func writeReport(w io.Writer, c store.Collections, period string, now time.Time, symbol string) error {
	report, err := views.BuildReport(c.Invoices, period, now)
	if err != nil {
		current.notifyErr(err)
		return err
	}

	fmt.Fprintf(w, "Facturas (%s):  %d\n", report.Period, report.Count)
	fmt.Fprintf(w, "Total Ingresos:  %s\n", views.FormatMoney(symbol, report.Total))
	fmt.Fprintf(w, "Promedio:        %s\n", views.FormatMoney(symbol, report.Average))
	return nil
}

// ======================================================
// INVOICE PRINT
// ======================================================

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Invoice documents",
}

var invoicePrintCmd = &cobra.Command{
	Use:   "print <id>",
	Short: "Write the printable invoice as HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if path, _ := cmd.Flags().GetString("out"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return printInvoice(out, current.store, args[0], current.cfg.ShopName, current.cfg.CurrencySymbol)
	},
}

func printInvoice(w io.Writer, s *store.Store, id, shopName, symbol string) error {
	doc, err := ucInvoice.NewPrintInvoice(s, shopName).Execute(id)
	if err != nil {
		current.notifyErr(err)
		return err
	}

	r, err := render.New(symbol)
	if err != nil {
		return err
	}
	return r.Invoice(w, *doc)
}

// ======================================================
// PATIENTS
// ======================================================

var patientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "Patient records",
}

var patientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every patient",
	RunE: func(cmd *cobra.Command, args []string) error {
		writePatients(cmd.OutOrStdout(), current.store.Snapshot().Patients)
		return nil
	},
}

func writePatients(w io.Writer, patients []models.Patient) {
	if len(patients) == 0 {
		color.New(color.FgYellow).Fprintln(w, "Sin pacientes registrados")
		return
	}

	rows := make([][]string, 0, len(patients))
	for _, p := range patients {
		email := p.Email
		if email == "" {
			email = "-"
		}
		rows = append(rows, []string{p.Name, p.Phone, email})
	}
	fmt.Fprintln(w, newTable("Nombre", "Teléfono", "Email").Rows(rows...))
}

// ======================================================
// MESSAGES
// ======================================================

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "WhatsApp messages",
}

var messagesHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the last ten messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		writeMessages(cmd.OutOrStdout(), views.RecentMessages(current.store.Snapshot().Messages))
		return nil
	},
}

func writeMessages(w io.Writer, msgs []models.Message) {
	if len(msgs) == 0 {
		color.New(color.FgYellow).Fprintln(w, "Sin mensajes enviados")
		return
	}

	rows := make([][]string, 0, len(msgs))
	for _, m := range msgs {
		rows = append(rows, []string{m.PatientName, m.Type, m.Message, m.SentAt.Format("02/01/2006"), domainMessage.Label(m.Status)})
	}
	fmt.Fprintln(w, newTable("Paciente", "Tipo", "Mensaje", "Fecha", "Estado").Rows(rows...))
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

// notifyErr shows a business error on the terminal the way the web
// screens would.
func (a *app) notifyErr(err error) {
	if a.notifier == nil {
		return
	}
	if code, ok := httperr.CodeOf(err); ok {
		a.notifier.Error(httperr.Message(code))
	}
}

func init() {
	invoicePrintCmd.Flags().String("out", "", "write to this file instead of stdout")
	invoiceCmd.AddCommand(invoicePrintCmd)
	patientsCmd.AddCommand(patientsListCmd)
	messagesCmd.AddCommand(messagesHistoryCmd)
}
