package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// ======================================================
// BUSINESS CODES
// ======================================================

var messages = map[string]string{
	"invalid_request":       "Datos inválidos.",
	"missing_name":          "El nombre es obligatorio.",
	"missing_phone":         "El teléfono es obligatorio.",
	"invalid_email":         "El correo electrónico no es válido.",
	"missing_patient":       "Selecciona un paciente.",
	"missing_lens_type":     "El tipo de lente es obligatorio.",
	"invalid_price":         "El precio no es un número válido.",
	"negative_price":        "El precio no puede ser negativo.",
	"missing_concept":       "El concepto es obligatorio.",
	"missing_payment":       "El método de pago es obligatorio.",
	"invalid_amount":        "El monto no es un número válido.",
	"negative_amount":       "El monto no puede ser negativo.",
	"missing_type":          "El tipo es obligatorio.",
	"invalid_date_or_time":  "Fecha u hora inválida.",
	"missing_message":       "El mensaje es obligatorio.",
	"phone_unavailable":     "No se pudo enviar el mensaje. Verifica el teléfono del paciente.",
	"confirmation_required": "Confirma la eliminación antes de continuar.",
	"invalid_report_period": "Tipo de reporte inválido.",
	"section_not_found":     "Sección no encontrada.",
	"template_not_found":    "Plantilla no encontrada.",
	"invoice_not_found":     "Factura no encontrada.",
}

var notFoundCodes = map[string]bool{
	"section_not_found":  true,
	"template_not_found": true,
	"invoice_not_found":  true,
}

// Message is the user facing text for a business code.
func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return "Operación no permitida."
}

// FromError writes err as a JSON error. Business errors map to 400/404,
// everything else is a 500.
func FromError(c *gin.Context, err error) {
	code, ok := CodeOf(err)
	if !ok {
		Internal(c, "internal_error", "Error interno. Intenta de nuevo.")
		return
	}
	if notFoundCodes[code] {
		NotFound(c, code, Message(code))
		return
	}
	BadRequest(c, code, Message(code))
}
