package order_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	orderID := mux.Vars(r)["id"]

	var updateDTO dto.OrderUpdate
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if updateDTO.DeliveryCharge == nil && updateDTO.OrderStatus == nil {
		respond.Error(w, http.StatusBadRequest, order.ErrMissingRequiredFields)
		return
	}

	var res *entities.Order

	// стоимость доставки применяем до смены статуса: переход в терминальный
	// статус в том же запросе не должен отрезать правку суммы
	if updateDTO.DeliveryCharge != nil {
		res, err = h.service.SetDeliveryCharge(r.Context(), orderID, *updateDTO.DeliveryCharge)
		if err != nil {
			h.writeError(w, err)
			return
		}
	}

	if updateDTO.OrderStatus != nil {
		res, err = h.service.ChangeOrderStatus(r.Context(), orderID, entities.OrderStatusType(*updateDTO.OrderStatus))
		if err != nil {
			h.writeError(w, err)
			return
		}
	}

	err = respond.JSON(w, http.StatusOK, respond.ToOrderDTO(res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrInvalidOrderID),
		errors.Is(err, order.ErrInvalidDeliveryCharge),
		errors.Is(err, order.ErrUnknownStatus),
		errors.Is(err, order.ErrMissingRequiredFields):
		respond.Error(w, http.StatusBadRequest, err)
	case errors.Is(err, order.ErrOrderNotFound):
		respond.Error(w, http.StatusNotFound, err)
	case errors.Is(err, order.ErrOrderNotApproved),
		errors.Is(err, order.ErrVersionConflict):
		respond.Error(w, http.StatusConflict, err)
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrTerminalState):
		respond.Error(w, http.StatusUnprocessableEntity, err)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
