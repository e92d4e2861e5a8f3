package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/optic-manager/internal/dto"
	"github.com/BruksfildServices01/optic-manager/internal/httpresp"
	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	ucPatient "github.com/BruksfildServices01/optic-manager/internal/usecase/patient"
)

type PatientHandler struct {
	store  *store.Store
	create *ucPatient.CreatePatient
	remove *ucPatient.DeletePatient
	Feedback
}

func NewPatientHandler(
	store *store.Store,
	create *ucPatient.CreatePatient,
	remove *ucPatient.DeletePatient,
	fb Feedback,
) *PatientHandler {
	return &PatientHandler{
		store:    store,
		create:   create,
		remove:   remove,
		Feedback: fb,
	}
}

// ======================================================
// LIST
// ======================================================
func (h *PatientHandler) List(c *gin.Context) {
	var patients []models.Patient
	h.store.View(func(col store.Collections) {
		patients = append(patients, col.Patients...)
	})
	httpresp.List(c, patients)
}

// ======================================================
// CREATE
// ======================================================
func (h *PatientHandler) Create(c *gin.Context) {
	var req dto.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidRequest(c)
		return
	}

	p, err := h.create.Execute(c.Request.Context(), ucPatient.CreatePatientInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		BirthDate: req.BirthDate,
		Address:   req.Address,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.success("Paciente registrado exitosamente")
	httpresp.Created(c, p)
}

// ======================================================
// DELETE
// ======================================================
func (h *PatientHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		h.fail(c, err)
		return
	}

	h.success("Paciente eliminado")
	c.Status(http.StatusNoContent)
}
