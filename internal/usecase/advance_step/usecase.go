package advance_step

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	flowRepo "github.com/m04kA/HSM-BookingFlowService/internal/infra/storage/flow"
	flowmodels "github.com/m04kA/HSM-BookingFlowService/internal/service/flows/models"
)

// UseCase use case для перехода на следующий шаг мастера
type UseCase struct {
	flowRepo FlowRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(flowRepo FlowRepository, logger Logger) *UseCase {
	return &UseCase{
		flowRepo: flowRepo,
		logger:   logger,
	}
}

// Execute выполняет переход вперёд
// Переход возможен только при выполненном предикате валидности текущего шага;
// шаг 5 достижим только через отправку бронирования
func (uc *UseCase) Execute(ctx context.Context, flowID string, userID int64) (*flowmodels.FlowResponse, error) {
	uc.logger.Info("AdvanceStep: flow=%s, user=%d", flowID, userID)

	// 1. Получаем сессию и проверяем владельца
	flow, err := uc.flowRepo.GetByID(ctx, flowID)
	if err != nil {
		if errors.Is(err, flowRepo.ErrFlowNotFound) {
			uc.logger.Warn("AdvanceStep: flow=%s not found", flowID)
			return nil, ErrFlowNotFound
		}
		uc.logger.Error("AdvanceStep: repository error for flow=%s: %v", flowID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	if flow.UserID != userID {
		uc.logger.Warn("AdvanceStep: access denied for user=%d to flow=%s", userID, flowID)
		return nil, ErrAccessDenied
	}
	if flow.Status != domain.FlowStatusDraft {
		uc.logger.Warn("AdvanceStep: flow=%s is not editable, status=%s", flowID, flow.Status)
		return nil, ErrFlowNotEditable
	}

	// 2. Переход вперёд возможен только с шагов 1-3
	if !flow.CanAdvance() {
		uc.logger.Warn("AdvanceStep: flow=%s cannot advance from step=%d", flowID, flow.CurrentStep)
		return nil, ErrCannotAdvance
	}

	// 3. Текущий шаг должен быть завершён
	if !flow.StepValid(flow.CurrentStep) {
		// Для шага 2 отдельно различаем незаполненное расписание и
		// неподтверждённую доступность
		if flow.CurrentStep == domain.StepSchedule && flow.ScheduleComplete() &&
			flow.Availability != domain.AvailabilityAvailable {
			uc.logger.Warn("AdvanceStep: flow=%s availability=%s, cannot advance", flowID, flow.Availability)
			return nil, ErrAvailabilityNotConfirmed
		}
		uc.logger.Warn("AdvanceStep: flow=%s step=%d is incomplete", flowID, flow.CurrentStep)
		return nil, ErrStepIncomplete
	}

	// 4. Двигаем шаг и сохраняем
	flow.Advance()

	if err := uc.flowRepo.Update(ctx, flow); err != nil {
		if errors.Is(err, flowRepo.ErrFlowNotFound) {
			return nil, ErrFlowNotFound
		}
		uc.logger.Error("AdvanceStep: failed to update flow=%s: %v", flowID, err)
		return nil, fmt.Errorf("%w: failed to update flow: %v", ErrInternal, err)
	}

	uc.logger.Info("AdvanceStep: flow=%s advanced to step=%d", flowID, flow.CurrentStep)

	return flowmodels.FromDomainFlow(flow), nil
}
