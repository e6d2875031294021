package start_flow

import (
	"context"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
)

// FlowRepository интерфейс репозитория сессий бронирования
type FlowRepository interface {
	Create(ctx context.Context, f *domain.Flow) (*domain.Flow, error)
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetProfessionalPublicProfile(ctx context.Context, professionalID int64) (*domain.Professional, error)
	GetServicesByProfessional(ctx context.Context, professionalID int64) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
