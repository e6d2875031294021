package get_flow

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
	msgUnauthorized  = "требуется авторизация"
	msgInvalidFlowID = "некорректный идентификатор сессии"
	msgFlowNotFound  = "сессия бронирования не найдена"
	msgAccessDenied  = "доступ запрещён"
)

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

// Handle GET /api/v1/flows/{flowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]
	if _, err := uuid.Parse(flowID); err != nil {
		h.logger.Warn("GET /flows/{flowId} - Invalid flow id: %s", flowID)
		handlers.RespondBadRequest(w, msgInvalidFlowID)
		return
	}

	result, err := h.service.GetByID(r.Context(), flowID, userID)
	if err != nil {
		switch {
		case errors.Is(err, flows.ErrFlowNotFound):
			h.logger.Warn("GET /flows/{flowId} - Flow not found: flow_id=%s", flowID)
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, flows.ErrAccessDenied):
			h.logger.Warn("GET /flows/{flowId} - Access denied: flow_id=%s, user_id=%d", flowID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /flows/{flowId} - Failed to get flow: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
