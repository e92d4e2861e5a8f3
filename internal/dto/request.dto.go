package dto

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Numeric accepts a JSON number or a JSON string and keeps the raw text.
// Parsing is left to the use case so a non numeric value gets its own
// business error instead of a generic bind failure.
type Numeric string

func (n *Numeric) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Numeric(strings.TrimSpace(s))
		return nil
	}
	*n = Numeric(b)
	return nil
}

type CreatePatientRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
	Address   string `json:"address"`
}

type CreateOrderRequest struct {
	PatientID string  `json:"patientId"`
	LensType  string  `json:"lensType"`
	Material  string  `json:"material"`
	Price     Numeric `json:"price"`
	Notes     string  `json:"notes"`
}

type CreateInvoiceRequest struct {
	PatientID     string  `json:"patientId"`
	Concept       string  `json:"concept"`
	Amount        Numeric `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

type CreateAppointmentRequest struct {
	PatientID string `json:"patientId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Type      string `json:"type"`
	Notes     string `json:"notes"`
}

type SendWhatsAppRequest struct {
	PatientID string `json:"patientId"`
	Message   string `json:"message"`
	Type      string `json:"type"`
}
