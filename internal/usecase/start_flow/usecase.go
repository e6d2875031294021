package start_flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	profileClient "github.com/m04kA/HSM-BookingFlowService/internal/integrations/profileservice"
	flowmodels "github.com/m04kA/HSM-BookingFlowService/internal/service/flows/models"
)

// UseCase use case для старта сессии бронирования
type UseCase struct {
	flowRepo      FlowRepository
	profileClient ProfileServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(flowRepo FlowRepository, profileClient ProfileServiceClient, logger Logger) *UseCase {
	return &UseCase{
		flowRepo:      flowRepo,
		profileClient: profileClient,
		logger:        logger,
	}
}

// Execute выполняет use case старта сессии
// Снапшотит профессионала и его услуги; единственная услуга выбирается сразу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*flowmodels.FlowResponse, error) {
	uc.logger.Info("StartFlow: user=%d, professional=%d", req.UserID, req.ProfessionalID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("StartFlow: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем публичный профиль профессионала
	professional, err := uc.profileClient.GetProfessionalPublicProfile(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, profileClient.ErrProfessionalNotFound) {
			uc.logger.Warn("StartFlow: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("StartFlow: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Получаем услуги для подсчёта и возможного автовыбора
	services, err := uc.profileClient.GetServicesByProfessional(ctx, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("StartFlow: failed to get services for professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	// 4. Собираем новую сессию на шаге 1
	flow := &domain.Flow{
		ID:               uuid.NewString(),
		UserID:           req.UserID,
		CurrentStep:      domain.StepProfessional,
		Status:           domain.FlowStatusDraft,
		ProfessionalID:   professional.ID,
		ProfessionalName: professional.Name,
		ProfessionalRate: professional.HourlyRate,
		ServiceCount:     len(services),
		Availability:     domain.AvailabilityUnchecked,
	}

	// 5. Выбор услуги: явный предвыбор или автовыбор единственной
	switch {
	case req.ServiceID != nil:
		var selected *domain.Service
		for _, svc := range services {
			if svc.ID == *req.ServiceID {
				selected = svc
				break
			}
		}
		if selected == nil {
			uc.logger.Warn("StartFlow: preselected service id=%d not found for professional id=%d",
				*req.ServiceID, req.ProfessionalID)
			return nil, ErrServiceNotFound
		}
		flow.SelectService(selected)
	case len(services) == 1:
		flow.SelectService(services[0])
		uc.logger.Info("StartFlow: auto-selected the only service id=%d", services[0].ID)
	}

	// 6. Сохраняем сессию
	created, err := uc.flowRepo.Create(ctx, flow)
	if err != nil {
		uc.logger.Error("StartFlow: failed to create flow: %v", err)
		return nil, fmt.Errorf("%w: failed to create flow: %v", ErrInternal, err)
	}

	uc.logger.Info("StartFlow: successfully created flow id=%s for user=%d", created.ID, req.UserID)

	return flowmodels.FromDomainFlow(created), nil
}
