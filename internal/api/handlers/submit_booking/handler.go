package submit_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HSM-BookingFlowService/internal/api/handlers"
	"github.com/m04kA/HSM-BookingFlowService/internal/api/middleware"
	submitBooking "github.com/m04kA/HSM-BookingFlowService/internal/usecase/submit_booking"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidFlowID      = "некорректный идентификатор сессии"
	msgFlowNotFound       = "сессия бронирования не найдена"
	msgAccessDenied       = "доступ запрещён"
	msgSubmissionInFlight = "отправка уже выполняется"
	msgAlreadyConfirmed   = "бронирование уже подтверждено"
	msgNotReady           = "не выполнены условия для отправки бронирования"
	msgSlotConflict       = "выбранный временной слот уже занят"
	msgSubmissionFailed   = "не удалось создать бронирование, попробуйте ещё раз"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/flows/{flowId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]
	if _, err := uuid.Parse(flowID); err != nil {
		h.logger.Warn("POST /flows/{flowId}/submit - Invalid flow id: %s", flowID)
		handlers.RespondBadRequest(w, msgInvalidFlowID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), flowID, userID)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, submitBooking.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, submitBooking.ErrSubmissionInFlight):
			h.logger.Warn("POST /flows/{flowId}/submit - Submission in flight: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgSubmissionInFlight)

		case errors.Is(err, submitBooking.ErrAlreadyConfirmed):
			h.logger.Warn("POST /flows/{flowId}/submit - Already confirmed: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgAlreadyConfirmed)

		case errors.Is(err, submitBooking.ErrNotReady):
			h.logger.Warn("POST /flows/{flowId}/submit - Not ready: flow_id=%s", flowID)
			handlers.RespondBadRequest(w, msgNotReady)

		case errors.Is(err, submitBooking.ErrSlotConflict):
			h.logger.Warn("POST /flows/{flowId}/submit - Slot conflict: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, submitBooking.ErrSubmissionFailed):
			h.logger.Error("POST /flows/{flowId}/submit - Submission failed: flow_id=%s, error=%v", flowID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSubmissionFailed)

		default:
			h.logger.Error("POST /flows/{flowId}/submit - Failed to submit: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flows/{flowId}/submit - Booking confirmed: flow_id=%s, booking_id=%v",
		flowID, *result.BookingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
