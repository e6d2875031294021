package advance_step

import (
	"context"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
)

// FlowRepository интерфейс репозитория сессий бронирования
type FlowRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Flow, error)
	Update(ctx context.Context, f *domain.Flow) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
