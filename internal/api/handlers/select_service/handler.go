package select_service

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HSM-BookingFlowService/internal/api/handlers"
	"github.com/m04kA/HSM-BookingFlowService/internal/api/middleware"
	"github.com/m04kA/HSM-BookingFlowService/internal/service/flows"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgInvalidFlowID      = "некорректный идентификатор сессии"
	msgFlowNotFound       = "сессия бронирования не найдена"
	msgAccessDenied       = "доступ запрещён"
	msgFlowNotEditable    = "сессия уже отправлена и недоступна для изменения"
	msgServiceNotFound    = "услуга не найдена"
)

type SelectServiceRequest struct {
	ServiceID int64 `json:"serviceId"`
}

type Handler struct {
	service FlowService
	logger  Logger
}

func NewHandler(service FlowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/flows/{flowId}/service
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]
	if _, err := uuid.Parse(flowID); err != nil {
		h.logger.Warn("PUT /flows/{flowId}/service - Invalid flow id: %s", flowID)
		handlers.RespondBadRequest(w, msgInvalidFlowID)
		return
	}

	var req SelectServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /flows/{flowId}/service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SelectService(r.Context(), flowID, userID, req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, flows.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, flows.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, flows.ErrFlowNotEditable):
			handlers.RespondConflict(w, msgFlowNotEditable)

		case errors.Is(err, flows.ErrServiceNotFound):
			h.logger.Warn("PUT /flows/{flowId}/service - Service not found: flow_id=%s, service_id=%d",
				flowID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("PUT /flows/{flowId}/service - Failed to select service: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /flows/{flowId}/service - Service selected: flow_id=%s, service_id=%d", flowID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
