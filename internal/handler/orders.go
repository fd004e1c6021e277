package handler

import (
	"net/http"

	"github.com/minimindteam/Dash/internal/domain"
	"github.com/minimindteam/Dash/internal/service"
)

// OrderHandler handles package orders.
type OrderHandler struct {
	orders *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// HandleSubmit accepts an order from the public pricing page.
// POST /api/orders
func (h *OrderHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req orderDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order := &domain.Order{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		Message:      req.Message,
		Budget:       req.Budget,
		Timeline:     req.Timeline,
		PackageName:  req.PackageName,
		PackagePrice: req.PackagePrice,
	}
	if err := h.orders.Submit(r.Context(), order); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOrderDTO(order))
}

// HandleList returns all orders, newest first.
// GET /api/orders
func (h *OrderHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]orderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, toOrderDTO(&orders[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// HandleUpdateStatus moves an order to the status named in the query.
// PUT /api/orders/{id}?status=confirmed
func (h *OrderHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("id")
	status := r.URL.Query().Get("status")

	if err := h.orders.UpdateStatus(r.Context(), SessionFromContext(r.Context()), orderID, status); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes one order.
// DELETE /api/orders/{id}
func (h *OrderHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.Delete(r.Context(), SessionFromContext(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
