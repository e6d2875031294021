package advance_step

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HSM-BookingFlowService/internal/api/handlers"
	"github.com/m04kA/HSM-BookingFlowService/internal/api/middleware"
	advanceStep "github.com/m04kA/HSM-BookingFlowService/internal/usecase/advance_step"
)

const (
	msgUnauthorized           = "требуется авторизация"
	msgInvalidFlowID          = "некорректный идентификатор сессии"
	msgFlowNotFound           = "сессия бронирования не найдена"
	msgAccessDenied           = "доступ запрещён"
	msgFlowNotEditable        = "сессия уже отправлена и недоступна для изменения"
	msgCannotAdvance          = "переход вперёд с текущего шага невозможен"
	msgStepIncomplete         = "текущий шаг не завершён"
	msgAvailabilityNotChecked = "доступность слота не подтверждена"
)

type Handler struct {
	useCase AdvanceStepUseCase
	logger  Logger
}

func NewHandler(useCase AdvanceStepUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/flows/{flowId}/next
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]
	if _, err := uuid.Parse(flowID); err != nil {
		h.logger.Warn("POST /flows/{flowId}/next - Invalid flow id: %s", flowID)
		handlers.RespondBadRequest(w, msgInvalidFlowID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), flowID, userID)
	if err != nil {
		switch {
		case errors.Is(err, advanceStep.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, advanceStep.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, advanceStep.ErrFlowNotEditable):
			handlers.RespondConflict(w, msgFlowNotEditable)

		case errors.Is(err, advanceStep.ErrCannotAdvance):
			h.logger.Warn("POST /flows/{flowId}/next - Cannot advance: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgCannotAdvance)

		case errors.Is(err, advanceStep.ErrAvailabilityNotConfirmed):
			h.logger.Warn("POST /flows/{flowId}/next - Availability not confirmed: flow_id=%s", flowID)
			handlers.RespondBadRequest(w, msgAvailabilityNotChecked)

		case errors.Is(err, advanceStep.ErrStepIncomplete):
			h.logger.Warn("POST /flows/{flowId}/next - Step incomplete: flow_id=%s", flowID)
			handlers.RespondBadRequest(w, msgStepIncomplete)

		default:
			h.logger.Error("POST /flows/{flowId}/next - Failed to advance: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flows/{flowId}/next - Advanced: flow_id=%s, step=%d", flowID, result.CurrentStep)
	handlers.RespondJSON(w, http.StatusOK, result)
}
