package orders_bulk_approve_post

import (
	"encoding/json"
	"net/http"

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
	var bulkDTO dto.OrderBulkApprove
	err := json.NewDecoder(r.Body).Decode(&bulkDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if len(bulkDTO.OrderIDs) == 0 {
		respond.Error(w, http.StatusBadRequest, order.ErrMissingRequiredFields)
		return
	}

	if bulkDTO.DeliveryCharge == nil {
		respond.Error(w, http.StatusBadRequest, order.ErrInvalidDeliveryCharge)
		return
	}

	results := h.service.BulkApproveOrders(r.Context(), bulkDTO.OrderIDs, *bulkDTO.DeliveryCharge)

	// частичные отказы не меняют код ответа: статус каждого заказа в теле
	resultDTOs := make([]dto.OrderBulkApproveResult, len(results))
	for i, res := range results {
		resultDTOs[i].OrderID = res.OrderID
		resultDTOs[i].Succeeded = res.Succeeded
		if res.Err != nil {
			errText := res.Err.Error()
			resultDTOs[i].Error = &errText
		}
	}

	err = respond.JSON(w, http.StatusOK, resultDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
