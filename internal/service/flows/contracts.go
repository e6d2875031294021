package flows

import (
	"context"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
)

// FlowRepository интерфейс репозитория сессий бронирования
type FlowRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Flow, error)
	Update(ctx context.Context, f *domain.Flow) error
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetServicesByProfessional(ctx context.Context, professionalID int64) ([]*domain.Service, error)
}

// OfferProvider источник офферов (ProfileService или фикстуры)
type OfferProvider interface {
	GetOffers(ctx context.Context) ([]*domain.Offer, error)
}

// TimeSlotProvider источник сетки временных слотов
type TimeSlotProvider interface {
	GetTimeSlots(ctx context.Context) ([]domain.TimeSlotGroup, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
