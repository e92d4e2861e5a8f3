package models

import "time"

type Appointment struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patientId"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Time      string    `json:"time"` // HH:MM
	Type      string    `json:"type"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
