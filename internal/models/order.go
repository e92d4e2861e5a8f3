package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID        string          `json:"id"`
	PatientID string          `json:"patientId"`
	LensType  string          `json:"lensType"`
	Material  string          `json:"material,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Notes     string          `json:"notes,omitempty"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}
