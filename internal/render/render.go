package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/shopspring/decimal"

	domainAppointment "github.com/BruksfildServices01/optic-manager/internal/domain/appointment"
	domainMessage "github.com/BruksfildServices01/optic-manager/internal/domain/message"
	domainOrder "github.com/BruksfildServices01/optic-manager/internal/domain/order"
	"github.com/BruksfildServices01/optic-manager/internal/dto"
	"github.com/BruksfildServices01/optic-manager/internal/notify"
	"github.com/BruksfildServices01/optic-manager/internal/views"
)

//go:embed templates/*.html
var files embed.FS

const (
	PageTemplate    = "layout"
	InvoiceTemplate = "invoice"
)

type NavItem struct {
	Name   string
	Title  string
	Active bool
}

// Page is the data of a full screen render.
type Page struct {
	ShopName      string
	Nav           []NavItem
	Section       views.Section
	Report        *dto.Report
	Notifications []notify.Notification
}

type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates. Money is shown with symbol and two
// decimals.
func New(symbol string) (*Renderer, error) {
	funcs := template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return views.FormatMoney(symbol, d)
		},
		"orderLabel": func(status string) string {
			return domainOrder.Status(status).Label()
		},
		"orderAction": func(status string) string {
			if status == string(domainOrder.StatusActive) {
				return "Completar"
			}
			return "Reactivar"
		},
		"appointmentLabel": func(status string) string {
			return domainAppointment.Status(status).Label()
		},
		"messageLabel": domainMessage.Label,
		"day": func(t time.Time) string {
			return t.Format("02/01/2006")
		},
		"orDash": func(s string) string {
			if s == "" {
				return "-"
			}
			return s
		},
	}

	tmpl, err := template.New("optica").Funcs(funcs).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Template is handed to gin's HTML renderer.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

func Navigation(active string) []NavItem {
	nav := make([]NavItem, 0, len(views.Sections))
	for _, name := range views.Sections {
		nav = append(nav, NavItem{Name: name, Title: views.SectionTitle(name), Active: name == active})
	}
	return nav
}

func (r *Renderer) Page(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, PageTemplate, p)
}

func (r *Renderer) Invoice(w io.Writer, doc dto.InvoiceDocument) error {
	return r.tmpl.ExecuteTemplate(w, InvoiceTemplate, doc)
}
