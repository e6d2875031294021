package start_flow

import (
	startFlow "github.com/m04kA/HSM-BookingFlowService/internal/usecase/start_flow"
)

// StartFlowRequest HTTP request model
type StartFlowRequest struct {
	ProfessionalID int64  `json:"professionalId"`
	ServiceID      *int64 `json:"serviceId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *StartFlowRequest) ToUseCaseRequest(userID int64) *startFlow.Request {
	return &startFlow.Request{
		UserID:         userID,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
	}
}
