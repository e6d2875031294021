package apply_offer

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
	msgOfferNotFound      = "оффер не найден"
)

type ApplyOfferRequest struct {
	OfferID int64 `json:"offerId"`
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

// Handle PUT /api/v1/flows/{flowId}/offer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flowID := mux.Vars(r)["flowId"]
	if _, err := uuid.Parse(flowID); err != nil {
		h.logger.Warn("PUT /flows/{flowId}/offer - Invalid flow id: %s", flowID)
		handlers.RespondBadRequest(w, msgInvalidFlowID)
		return
	}

	var req ApplyOfferRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /flows/{flowId}/offer - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ApplyOffer(r.Context(), flowID, userID, req.OfferID)
	if err != nil {
		switch {
		case errors.Is(err, flows.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, flows.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, flows.ErrFlowNotEditable):
			handlers.RespondConflict(w, msgFlowNotEditable)

		case errors.Is(err, flows.ErrOfferNotFound):
			h.logger.Warn("PUT /flows/{flowId}/offer - Offer not found: flow_id=%s, offer_id=%d", flowID, req.OfferID)
			handlers.RespondNotFound(w, msgOfferNotFound)

		default:
			h.logger.Error("PUT /flows/{flowId}/offer - Failed to apply offer: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /flows/{flowId}/offer - Offer applied: flow_id=%s, offer_id=%d", flowID, req.OfferID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
