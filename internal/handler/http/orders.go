package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var order models.CompleteOrder
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		log.Err(err).Str("func", "*Handler.createOrder").Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSONBody)
		return
	}

	// a body without a user reference is placed for the authenticated user
	if order.UserID == "" {
		if userID, ok := utils.GetUserIDFromContext(ctx); ok {
			order.UserID = userID
		}
	}

	createdOrder, err := h.services.OrderService.CreateCompleteOrder(ctx, order)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("order_id", createdOrder.ID).Str("user_id", createdOrder.UserID).Msg("order successfully placed")

	if _, writeErr := utils.WriteJSON(w, createdOrder, http.StatusOK); writeErr != nil {
		log.Err(writeErr).Str("func", "*Handler.createOrder").Msg("failed to write response")
	}
}

func (h *Handler) showOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	orderID, parseErr := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	if parseErr != nil {
		log.Err(parseErr).Str("func", "*Handler.showOrder").Msg("invalid order id url parameter")
		writeError(w, r, ErrInvalidURLParameter)
		return
	}

	order, err := h.services.OrderService.ShowCompleteOrder(ctx, orderID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, writeErr := utils.WriteJSON(w, order, http.StatusOK); writeErr != nil {
		log.Err(writeErr).Str("func", "*Handler.showOrder").Msg("failed to write response")
	}
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	orderID, parseErr := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	if parseErr != nil {
		log.Err(parseErr).Str("func", "*Handler.deleteOrder").Msg("invalid order id url parameter")
		writeError(w, r, ErrInvalidURLParameter)
		return
	}

	deletedOrder, err := h.services.OrderService.DeleteOrder(ctx, orderID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("order_id", deletedOrder.ID).Msg("order successfully deleted")

	if _, writeErr := utils.WriteJSON(w, deletedOrder, http.StatusOK); writeErr != nil {
		log.Err(writeErr).Str("func", "*Handler.deleteOrder").Msg("failed to write response")
	}
}

func (h *Handler) showUserOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "userId")

	var status *models.OrderStatus
	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		parsed := models.OrderStatus(statusParam)
		status = &parsed
	}

	orders, err := h.services.OrderService.ShowUserOrders(ctx, userID, status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, writeErr := utils.WriteJSON(w, orders, http.StatusOK); writeErr != nil {
		log.Err(writeErr).Str("func", "*Handler.showUserOrders").Msg("failed to write response")
	}
}
