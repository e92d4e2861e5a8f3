package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/optic-manager/internal/dto"
	"github.com/BruksfildServices01/optic-manager/internal/httpresp"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	ucOrder "github.com/BruksfildServices01/optic-manager/internal/usecase/order"
	"github.com/BruksfildServices01/optic-manager/internal/views"
)

type OrderHandler struct {
	store  *store.Store
	create *ucOrder.CreateOrder
	toggle *ucOrder.ToggleOrder
	remove *ucOrder.DeleteOrder
	Feedback
}

func NewOrderHandler(
	store *store.Store,
	create *ucOrder.CreateOrder,
	toggle *ucOrder.ToggleOrder,
	remove *ucOrder.DeleteOrder,
	fb Feedback,
) *OrderHandler {
	return &OrderHandler{
		store:    store,
		create:   create,
		toggle:   toggle,
		remove:   remove,
		Feedback: fb,
	}
}

func (h *OrderHandler) List(c *gin.Context) {
	var rows []dto.OrderRow
	h.store.View(func(col store.Collections) {
		rows = views.OrderRows(col, col.Orders)
	})
	httpresp.List(c, rows)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidRequest(c)
		return
	}

	o, err := h.create.Execute(c.Request.Context(), ucOrder.CreateOrderInput{
		PatientID: req.PatientID,
		LensType:  req.LensType,
		Material:  req.Material,
		Price:     string(req.Price),
		Notes:     req.Notes,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.success("Pedido registrado exitosamente")
	httpresp.Created(c, o)
}

// Toggle answers 204 without feedback when the order does not exist.
func (h *OrderHandler) Toggle(c *gin.Context) {
	next, err := h.toggle.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if next == "" {
		c.Status(http.StatusNoContent)
		return
	}

	h.success("Estado del pedido actualizado")
	httpresp.OK(c, gin.H{
		"id":          c.Param("id"),
		"status":      next,
		"statusLabel": next.Label(),
	})
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		h.fail(c, err)
		return
	}

	h.success("Pedido eliminado")
	c.Status(http.StatusNoContent)
}
