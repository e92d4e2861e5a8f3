package order

import "github.com/BruksfildServices01/optic-manager/internal/models"

// ===============================
// Domain Actions
// ===============================

func Toggle(o *models.Order) {
	o.Status = string(Status(o.Status).Next())
}
