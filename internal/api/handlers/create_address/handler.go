package create_address

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

// Handle POST /api/v1/flows/{flowId}/addresses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]
	if _, err := uuid.Parse(flowID); err != nil {
		h.logger.Warn("POST /flows/{flowId}/addresses - Invalid flow id: %s", flowID)
		handlers.RespondBadRequest(w, msgInvalidFlowID)
		return
	}

	var req CreateAddressRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flows/{flowId}/addresses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), flowID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, addresses.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, addresses.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, addresses.ErrFlowNotEditable):
			handlers.RespondConflict(w, msgFlowNotEditable)

		case errors.Is(err, addresses.ErrValidation):
			h.logger.Warn("POST /flows/{flowId}/addresses - Validation failed: flow_id=%s, error=%v", flowID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /flows/{flowId}/addresses - Failed to create: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flows/{flowId}/addresses - Address created and selected: flow_id=%s", flowID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
