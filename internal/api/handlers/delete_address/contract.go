package delete_address

import (
	"context"

	flowmodels "github.com/m04kA/HSM-BookingFlowService/internal/service/flows/models"
)

type AddressService interface {
	Delete(ctx context.Context, flowID string, userID, addressID int64) (*flowmodels.FlowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
