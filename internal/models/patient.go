package models

import "time"

// Patient is referenced by every other record through PatientID.
type Patient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	BirthDate string    `json:"birthDate"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
