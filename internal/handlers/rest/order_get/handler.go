package order_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

	res, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			respond.Error(w, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound):
			respond.Error(w, http.StatusNotFound, err)
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
