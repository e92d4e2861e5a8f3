package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/optic-manager/internal/models"
)

func TestToggle_IsInvolution(t *testing.T) {
	for _, start := range []Status{StatusActive, StatusCompleted} {
		o := models.Order{Status: string(start)}
		Toggle(&o)
		assert.NotEqual(t, string(start), o.Status)
		Toggle(&o)
		assert.Equal(t, string(start), o.Status)
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Activo", StatusActive.Label())
	assert.Equal(t, "Completado", StatusCompleted.Label())
}
