package order_approve_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

	var approveDTO dto.OrderApprove
	err := json.NewDecoder(r.Body).Decode(&approveDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// отсутствие стоимости доставки - ошибка валидации, не ноль по умолчанию
	if approveDTO.DeliveryCharge == nil {
		respond.Error(w, http.StatusBadRequest, order.ErrInvalidDeliveryCharge)
		return
	}

	res, err := h.service.ApproveOrder(r.Context(), orderID, *approveDTO.DeliveryCharge)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidDeliveryCharge):
			respond.Error(w, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound):
			respond.Error(w, http.StatusNotFound, err)
		case errors.Is(err, order.ErrApprovalNotPending),
			errors.Is(err, order.ErrVersionConflict):
			respond.Error(w, http.StatusConflict, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	err = respond.JSON(w, http.StatusOK, respond.ToOrderDTO(res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
