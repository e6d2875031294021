package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	"github.com/m04kA/HSM-BookingFlowService/pkg/types"
)

// FlowRepository интерфейс репозитория сессий бронирования
type FlowRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Flow, error)
	Update(ctx context.Context, f *domain.Flow) error
	// ApplyAvailabilityResult применяет результат проверки, только если
	// generation не изменился с момента её старта
	ApplyAvailabilityResult(ctx context.Context, flowID string, generation int64, status domain.AvailabilityStatus) (bool, error)
}

// AvailabilityChecker интерфейс проверки доступности слота (ProfileService)
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, professionalID int64, date time.Time, slot types.TimeString, pincode string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
