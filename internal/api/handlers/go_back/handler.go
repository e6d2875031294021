package go_back

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
	msgUnauthorized    = "требуется авторизация"
	msgInvalidFlowID   = "некорректный идентификатор сессии"
	msgFlowNotFound    = "сессия бронирования не найдена"
	msgAccessDenied    = "доступ запрещён"
	msgFlowNotEditable = "сессия уже отправлена и недоступна для изменения"
	msgCannotGoBack    = "переход назад с текущего шага невозможен"
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

// Handle POST /api/v1/flows/{flowId}/prev
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]
	if _, err := uuid.Parse(flowID); err != nil {
		h.logger.Warn("POST /flows/{flowId}/prev - Invalid flow id: %s", flowID)
		handlers.RespondBadRequest(w, msgInvalidFlowID)
		return
	}

	result, err := h.service.Back(r.Context(), flowID, userID)
	if err != nil {
		switch {
		case errors.Is(err, flows.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, flows.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, flows.ErrFlowNotEditable):
			handlers.RespondConflict(w, msgFlowNotEditable)

		case errors.Is(err, flows.ErrCannotGoBack):
			h.logger.Warn("POST /flows/{flowId}/prev - Cannot go back: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgCannotGoBack)

		default:
			h.logger.Error("POST /flows/{flowId}/prev - Failed to go back: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flows/{flowId}/prev - Went back: flow_id=%s, step=%d", flowID, result.CurrentStep)
	handlers.RespondJSON(w, http.StatusOK, result)
}
