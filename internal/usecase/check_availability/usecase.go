package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	flowRepo "github.com/m04kA/HSM-BookingFlowService/internal/infra/storage/flow"
	flowmodels "github.com/m04kA/HSM-BookingFlowService/internal/service/flows/models"
)

// UseCase use case проверки доступности слота
// Проверка асинхронна относительно правок расписания: результат применяется
// только если дата/слот не менялись с момента её старта (generation)
type UseCase struct {
	flowRepo FlowRepository
	checker  AvailabilityChecker
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(flowRepo FlowRepository, checker AvailabilityChecker, logger Logger) *UseCase {
	return &UseCase{
		flowRepo: flowRepo,
		checker:  checker,
		logger:   logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, flowID string, userID int64) (*Response, error) {
	uc.logger.Info("CheckAvailability: flow=%s, user=%d", flowID, userID)

	// 1. Получаем сессию и проверяем владельца
	flow, err := uc.flowRepo.GetByID(ctx, flowID)
	if err != nil {
		if errors.Is(err, flowRepo.ErrFlowNotFound) {
			uc.logger.Warn("CheckAvailability: flow=%s not found", flowID)
			return nil, ErrFlowNotFound
		}
		uc.logger.Error("CheckAvailability: repository error for flow=%s: %v", flowID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	if flow.UserID != userID {
		uc.logger.Warn("CheckAvailability: access denied for user=%d to flow=%s", userID, flowID)
		return nil, ErrAccessDenied
	}
	if flow.Status != domain.FlowStatusDraft {
		uc.logger.Warn("CheckAvailability: flow=%s is not editable, status=%s", flowID, flow.Status)
		return nil, ErrFlowNotEditable
	}

	// 2. Для проверки нужны дата, слот и адрес (pincode)
	if !flow.ScheduleComplete() {
		uc.logger.Warn("CheckAvailability: flow=%s schedule is incomplete", flowID)
		return nil, ErrScheduleIncomplete
	}

	// 3. Стартуем проверку: новый generation, статус checking
	generation := flow.BeginAvailabilityCheck()
	if err := uc.flowRepo.Update(ctx, flow); err != nil {
		uc.logger.Error("CheckAvailability: failed to mark flow=%s as checking: %v", flowID, err)
		return nil, fmt.Errorf("%w: failed to update flow: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckAvailability: flow=%s checking generation=%d, date=%s, slot=%s, pincode=%s",
		flowID, generation, flow.Date.Format(domain.DateFormat), flow.TimeSlot, flow.Address.Pincode)

	// 4. Спрашиваем ProfileService
	available, err := uc.checker.CheckAvailability(ctx, flow.ProfessionalID, *flow.Date, flow.TimeSlot, flow.Address.Pincode)
	if err != nil {
		// Откатываем checking, если generation не изменился
		if _, applyErr := uc.flowRepo.ApplyAvailabilityResult(ctx, flowID, generation, domain.AvailabilityUnchecked); applyErr != nil {
			uc.logger.Error("CheckAvailability: failed to reset flow=%s after checker error: %v", flowID, applyErr)
		}
		uc.logger.Error("CheckAvailability: checker failed for flow=%s: %v", flowID, err)
		return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}

	status := domain.AvailabilityUnavailable
	if available {
		status = domain.AvailabilityAvailable
	}

	// 5. Применяем результат, только если расписание не менялось
	applied, err := uc.flowRepo.ApplyAvailabilityResult(ctx, flowID, generation, status)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to apply result for flow=%s: %v", flowID, err)
		return nil, fmt.Errorf("%w: failed to apply result: %v", ErrInternal, err)
	}
	if !applied {
		uc.logger.Warn("CheckAvailability: flow=%s result for generation=%d is stale, discarded", flowID, generation)
	} else {
		uc.logger.Info("CheckAvailability: flow=%s generation=%d result=%s", flowID, generation, status)
	}

	// 6. Перечитываем актуальное состояние
	fresh, err := uc.flowRepo.GetByID(ctx, flowID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to reload flow=%s: %v", flowID, err)
		return nil, fmt.Errorf("%w: failed to reload flow: %v", ErrInternal, err)
	}

	return &Response{
		Available: available,
		Applied:   applied,
		Flow:      flowmodels.FromDomainFlow(fresh),
	}, nil
}
