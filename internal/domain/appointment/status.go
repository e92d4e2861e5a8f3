package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
)

// InitialStatus is the status of a freshly booked appointment.
func InitialStatus() Status {
	return StatusConfirmed
}

func (s Status) Label() string {
	if s == StatusConfirmed {
		return "Confirmada"
	}
	return "Pendiente"
}
