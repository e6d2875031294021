package start_flow

import (
	"errors"
	"net/http"

	"github.com/m04kA/HSM-BookingFlowService/internal/api/handlers"
	"github.com/m04kA/HSM-BookingFlowService/internal/api/middleware"
	startFlow "github.com/m04kA/HSM-BookingFlowService/internal/usecase/start_flow"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgUnauthorized         = "требуется авторизация"
	msgProfessionalNotFound = "профессионал не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgInvalidInput         = "некорректные входные данные"
)

type Handler struct {
	useCase StartFlowUseCase
	logger  Logger
}

func NewHandler(useCase StartFlowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/flows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req StartFlowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, startFlow.ErrProfessionalNotFound):
			h.logger.Warn("POST /flows - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, startFlow.ErrServiceNotFound):
			h.logger.Warn("POST /flows - Service not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, startFlow.ErrInvalidInput):
			h.logger.Warn("POST /flows - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /flows - Failed to start flow: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flows - Flow started: flow_id=%s, user_id=%d, professional_id=%d",
		result.ID, userID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
