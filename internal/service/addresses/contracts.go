package addresses

import (
	"context"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	"github.com/m04kA/HSM-BookingFlowService/internal/integrations/userservice"
)

// FlowRepository интерфейс репозитория сессий бронирования
type FlowRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Flow, error)
	Update(ctx context.Context, f *domain.Flow) error
}

// UserServiceClient интерфейс клиента для UserService (адресная книга)
type UserServiceClient interface {
	ListAddresses(ctx context.Context, userID int64) ([]*domain.Address, error)
	CreateAddress(ctx context.Context, userID int64, data *userservice.AddressCreate) (*domain.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
