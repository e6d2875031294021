package delete_address

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HSM-BookingFlowService/internal/api/handlers"
	"github.com/m04kA/HSM-BookingFlowService/internal/api/middleware"
	"github.com/m04kA/HSM-BookingFlowService/internal/service/addresses"
)

const (
	msgUnauthorized     = "требуется авторизация"
	msgInvalidFlowID    = "некорректный идентификатор сессии"
	msgInvalidAddressID = "некорректный идентификатор адреса"
	msgFlowNotFound     = "сессия бронирования не найдена"
	msgAccessDenied     = "доступ запрещён"
	msgFlowNotEditable  = "сессия уже отправлена и недоступна для изменения"
	msgAddressNotFound  = "адрес не найден"
)

type Handler struct {
	service AddressService
	logger  Logger
}

func NewHandler(service AddressService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/flows/{flowId}/addresses/{addressId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)

	flowID := vars["flowId"]
	if _, err := uuid.Parse(flowID); err != nil {
		h.logger.Warn("DELETE /flows/{flowId}/addresses/{addressId} - Invalid flow id: %s", flowID)
		handlers.RespondBadRequest(w, msgInvalidFlowID)
		return
	}

	addressID, err := strconv.ParseInt(vars["addressId"], 10, 64)
	if err != nil || addressID <= 0 {
		h.logger.Warn("DELETE /flows/{flowId}/addresses/{addressId} - Invalid address id: %s", vars["addressId"])
		handlers.RespondBadRequest(w, msgInvalidAddressID)
		return
	}

	result, err := h.service.Delete(r.Context(), flowID, userID, addressID)
	if err != nil {
		switch {
		case errors.Is(err, addresses.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, addresses.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, addresses.ErrFlowNotEditable):
			handlers.RespondConflict(w, msgFlowNotEditable)

		case errors.Is(err, addresses.ErrAddressNotFound):
			h.logger.Warn("DELETE /flows/{flowId}/addresses/{addressId} - Address not found: flow_id=%s, address_id=%d",
				flowID, addressID)
			handlers.RespondNotFound(w, msgAddressNotFound)

		default:
			h.logger.Error("DELETE /flows/{flowId}/addresses/{addressId} - Failed to delete: flow_id=%s, error=%v",
				flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /flows/{flowId}/addresses/{addressId} - Address deleted: flow_id=%s, address_id=%d",
		flowID, addressID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
