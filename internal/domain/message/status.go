package message

// StatusSent is recorded as soon as the deep link is handed off; there
// is no delivery confirmation.
const StatusSent = "sent"

func Label(status string) string {
	if status == StatusSent {
		return "Enviado"
	}
	return status
}
