package whatsapp

import (
	"fmt"
	"strings"
)

const namePlaceholder = "[Nombre]"

var templates = map[string]string{
	"followup":    "Hola [Nombre], queremos informarte que tu pedido de lentes está en proceso. Te avisaremos cuando esté listo. Gracias por tu paciencia.",
	"ready":       "¡Hola [Nombre]! Tu pedido de lentes ya está listo para recoger. Puedes pasar en cualquier momento durante nuestro horario de atención.",
	"appointment": "Hola [Nombre], te recordamos que tienes una cita programada para el [fecha] a las [hora]. Esperamos verte pronto.",
}

// Template returns a canned message. When patientName is not empty the
// [Nombre] placeholder is filled in.
func Template(name, patientName string) (string, bool) {
	text, ok := templates[name]
	if !ok {
		return "", false
	}
	if patientName != "" {
		text = strings.ReplaceAll(text, namePlaceholder, patientName)
	}
	return text, true
}

func ReminderText(patientName, date, clock, kind string) string {
	return fmt.Sprintf(
		"Hola %s, te recordamos que tienes una cita programada para el %s a las %s. Tipo: %s. Esperamos verte pronto.",
		patientName, date, clock, kind,
	)
}
