package check_availability

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HSM-BookingFlowService/internal/api/handlers"
	"github.com/m04kA/HSM-BookingFlowService/internal/api/middleware"
	checkAvailability "github.com/m04kA/HSM-BookingFlowService/internal/usecase/check_availability"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidFlowID      = "некорректный идентификатор сессии"
	msgFlowNotFound       = "сессия бронирования не найдена"
	msgAccessDenied       = "доступ запрещён"
	msgFlowNotEditable    = "сессия уже отправлена и недоступна для изменения"
	msgScheduleIncomplete = "для проверки доступности нужны дата, слот и адрес"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/flows/{flowId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]
	if _, err := uuid.Parse(flowID); err != nil {
		h.logger.Warn("POST /flows/{flowId}/availability - Invalid flow id: %s", flowID)
		handlers.RespondBadRequest(w, msgInvalidFlowID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), flowID, userID)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, checkAvailability.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, checkAvailability.ErrFlowNotEditable):
			handlers.RespondConflict(w, msgFlowNotEditable)

		case errors.Is(err, checkAvailability.ErrScheduleIncomplete):
			h.logger.Warn("POST /flows/{flowId}/availability - Schedule incomplete: flow_id=%s", flowID)
			handlers.RespondBadRequest(w, msgScheduleIncomplete)

		default:
			h.logger.Error("POST /flows/{flowId}/availability - Check failed: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flows/{flowId}/availability - Check done: flow_id=%s, available=%t, applied=%t",
		flowID, result.Available, result.Applied)
	handlers.RespondJSON(w, http.StatusOK, result)
}
