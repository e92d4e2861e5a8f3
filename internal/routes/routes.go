package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/optic-manager/internal/audit"
	"github.com/BruksfildServices01/optic-manager/internal/config"
	"github.com/BruksfildServices01/optic-manager/internal/handlers"
	"github.com/BruksfildServices01/optic-manager/internal/middleware"
	"github.com/BruksfildServices01/optic-manager/internal/notify"
	"github.com/BruksfildServices01/optic-manager/internal/render"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	"github.com/BruksfildServices01/optic-manager/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/optic-manager/internal/usecase/appointment"
	ucInvoice "github.com/BruksfildServices01/optic-manager/internal/usecase/invoice"
	ucMessage "github.com/BruksfildServices01/optic-manager/internal/usecase/message"
	ucOrder "github.com/BruksfildServices01/optic-manager/internal/usecase/order"
	ucPatient "github.com/BruksfildServices01/optic-manager/internal/usecase/patient"
	"github.com/BruksfildServices01/optic-manager/internal/whatsapp"
)

// Deps are the singletons shared by every route.
type Deps struct {
	Config   *config.Config
	Store    *store.Store
	Logger   *zap.Logger
	Notifier *notify.Notifier
	Opener   whatsapp.LinkOpener
	Clock    timezone.Clock
	Renderer *render.Renderer
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.CORSMiddleware(d.Config.CORSAllowedOrigins))

	r.SetHTMLTemplate(d.Renderer.Template())

	// ======================================================
	// INFRA
	// ======================================================
	auditLogger := audit.New(d.Logger)
	fb := handlers.NewFeedback(d.Notifier, d.Logger)

	// ======================================================
	// USE CASES
	// ======================================================
	createPatientUC := ucPatient.NewCreatePatient(d.Store, auditLogger, d.Clock)
	deletePatientUC := ucPatient.NewDeletePatient(d.Store, auditLogger)

	createOrderUC := ucOrder.NewCreateOrder(d.Store, auditLogger, d.Clock)
	toggleOrderUC := ucOrder.NewToggleOrder(d.Store, auditLogger)
	deleteOrderUC := ucOrder.NewDeleteOrder(d.Store, auditLogger)

	createInvoiceUC := ucInvoice.NewCreateInvoice(d.Store, auditLogger, d.Clock)
	deleteInvoiceUC := ucInvoice.NewDeleteInvoice(d.Store, auditLogger)
	printInvoiceUC := ucInvoice.NewPrintInvoice(d.Store, d.Config.ShopName)

	createAppointmentUC := ucAppointment.NewCreateAppointment(d.Store, auditLogger, d.Clock)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(d.Store, auditLogger)
	sendReminderUC := ucAppointment.NewSendReminder(d.Store, auditLogger, d.Opener, d.Logger)

	sendWhatsAppUC := ucMessage.NewSendWhatsApp(d.Store, auditLogger, d.Clock, d.Opener, d.Logger)

	// ======================================================
	// HANDLERS
	// ======================================================
	patientHandler := handlers.NewPatientHandler(d.Store, createPatientUC, deletePatientUC, fb)
	orderHandler := handlers.NewOrderHandler(d.Store, createOrderUC, toggleOrderUC, deleteOrderUC, fb)
	invoiceHandler := handlers.NewInvoiceHandler(d.Store, createInvoiceUC, deleteInvoiceUC, printInvoiceUC, fb)
	appointmentHandler := handlers.NewAppointmentHandler(d.Store, createAppointmentUC, deleteAppointmentUC, sendReminderUC, fb)
	messageHandler := handlers.NewMessageHandler(d.Store, sendWhatsAppUC, fb)
	dashboardHandler := handlers.NewDashboardHandler(d.Store, d.Clock, d.Notifier)
	webHandler := handlers.NewWebHandler(d.Store, d.Clock, d.Notifier, printInvoiceUC, d.Config.ShopName)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/", webHandler.Index)
	web := r.Group("/web")
	{
		web.GET("", webHandler.Index)
		web.GET("/:section", webHandler.Section)
		web.GET("/reports/:period", webHandler.Report)
		web.GET("/invoices/:id/print", webHandler.InvoicePrint)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/patients", patientHandler.List)
		api.POST("/patients", patientHandler.Create)
		api.DELETE("/patients/:id", patientHandler.Delete)

		api.GET("/orders", orderHandler.List)
		api.POST("/orders", orderHandler.Create)
		api.PATCH("/orders/:id/toggle", orderHandler.Toggle)
		api.DELETE("/orders/:id", orderHandler.Delete)

		api.GET("/invoices", invoiceHandler.List)
		api.POST("/invoices", invoiceHandler.Create)
		api.GET("/invoices/:id/print", invoiceHandler.Print)
		api.DELETE("/invoices/:id", invoiceHandler.Delete)

		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.POST("/appointments/:id/reminder", appointmentHandler.Reminder)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		api.GET("/messages", messageHandler.History)
		api.POST("/messages/whatsapp", messageHandler.SendWhatsApp)
		api.GET("/message-templates/:name", messageHandler.Template)

		api.GET("/dashboard", dashboardHandler.Dashboard)
		api.GET("/reports/:period", dashboardHandler.Report)
		api.GET("/notifications", dashboardHandler.Notifications)
	}
}
