package submit_booking

import (
	"context"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	"github.com/m04kA/HSM-BookingFlowService/internal/integrations/bookingservice"
)

// FlowRepository интерфейс репозитория сессий бронирования
type FlowRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Flow, error)
	Update(ctx context.Context, f *domain.Flow) error
}

// BookingServiceClient интерфейс клиента для BookingService
type BookingServiceClient interface {
	CreateBooking(ctx context.Context, data *bookingservice.CreateBookingRequest) (*bookingservice.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
