package orders_get

import (
	"errors"
	"net/http"
	"time"

	"orderhub/internal/entities"
	"orderhub/internal/generated/dto"
	"orderhub/internal/handlers/rest/respond"
	"orderhub/internal/service/order"
	"orderhub/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	orderEntities, err := h.service.GetOrders(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrUnknownStatus):
			respond.Error(w, http.StatusBadRequest, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTOs := make([]dto.Order, len(orderEntities))
	for i := range orderEntities {
		orderDTOs[i] = respond.ToOrderDTO(&orderEntities[i])
	}

	err = respond.JSON(w, http.StatusOK, orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.OrderFilter, error) {
	var filter entities.OrderFilter

	query := r.URL.Query()

	if raw := query.Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return entities.OrderFilter{}, errInvalidSince
		}
		filter.Since = &since
	}

	if raw := query.Get("order_status"); raw != "" {
		status := entities.OrderStatusType(raw)
		filter.OrderStatus = &status
	}

	if raw := query.Get("approval_status"); raw != "" {
		status := entities.ApprovalStatusType(raw)
		filter.ApprovalStatus = &status
	}

	return filter, nil
}

var errInvalidSince = errors.New("invalid since parameter, expected RFC3339 timestamp")
