package select_address

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HSM-BookingFlowService/internal/api/handlers"
	"github.com/m04kA/HSM-BookingFlowService/internal/api/middleware"
	"github.com/m04kA/HSM-BookingFlowService/internal/service/addresses"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgInvalidFlowID      = "некорректный идентификатор сессии"
	msgFlowNotFound       = "сессия бронирования не найдена"
	msgAccessDenied       = "доступ запрещён"
	msgFlowNotEditable    = "сессия уже отправлена и недоступна для изменения"
	msgAddressNotFound    = "адрес не найден"
)

type SelectAddressRequest struct {
	AddressID int64 `json:"addressId"`
}

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

// Handle PUT /api/v1/flows/{flowId}/address
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]
	if _, err := uuid.Parse(flowID); err != nil {
		h.logger.Warn("PUT /flows/{flowId}/address - Invalid flow id: %s", flowID)
		handlers.RespondBadRequest(w, msgInvalidFlowID)
		return
	}

	var req SelectAddressRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /flows/{flowId}/address - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Select(r.Context(), flowID, userID, req.AddressID)
	if err != nil {
		switch {
		case errors.Is(err, addresses.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, addresses.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, addresses.ErrFlowNotEditable):
			handlers.RespondConflict(w, msgFlowNotEditable)

		case errors.Is(err, addresses.ErrAddressNotFound):
			h.logger.Warn("PUT /flows/{flowId}/address - Address not found: flow_id=%s, address_id=%d",
				flowID, req.AddressID)
			handlers.RespondNotFound(w, msgAddressNotFound)

		default:
			h.logger.Error("PUT /flows/{flowId}/address - Failed to select: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /flows/{flowId}/address - Address selected: flow_id=%s, address_id=%d", flowID, req.AddressID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
