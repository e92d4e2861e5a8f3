package order

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusActive
}

// Next flips between active and completed. Any value other than active
// is treated as completed, so a second toggle always lands on a valid
// status.
func (s Status) Next() Status {
	if s == StatusActive {
		return StatusCompleted
	}
	return StatusActive
}

func (s Status) Label() string {
	if s == StatusActive {
		return "Activo"
	}
	return "Completado"
}
