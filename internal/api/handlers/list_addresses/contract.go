package list_addresses

import (
	"context"

	addrmodels "github.com/m04kA/HSM-BookingFlowService/internal/service/addresses/models"
)

type AddressService interface {
	List(ctx context.Context, flowID string, userID int64) (*addrmodels.ListAddressesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
