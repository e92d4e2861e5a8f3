package models

import "github.com/shopspring/decimal"

type Invoice struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	PatientID     string          `json:"patientId"`
	Concept       string          `json:"concept"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Date          string          `json:"date"` // YYYY-MM-DD, shop local
	Status        string          `json:"status"`
}
