package create_address

import (
	"context"

	addrmodels "github.com/m04kA/HSM-BookingFlowService/internal/service/addresses/models"
	flowmodels "github.com/m04kA/HSM-BookingFlowService/internal/service/flows/models"
)

type AddressService interface {
	Create(ctx context.Context, flowID string, req *addrmodels.CreateAddressRequest) (*flowmodels.FlowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
