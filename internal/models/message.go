package models

import "time"

// Message keeps PatientName and Phone as copies taken when it was sent;
// they are not refreshed when the patient changes or is deleted.
type Message struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patientId"`
	PatientName string    `json:"patientName"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	Type        string    `json:"type"`
	SentAt      time.Time `json:"sentAt"`
	Status      string    `json:"status"`
}
