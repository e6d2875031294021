package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	flowRepo "github.com/m04kA/HSM-BookingFlowService/internal/infra/storage/flow"
	bookingClient "github.com/m04kA/HSM-BookingFlowService/internal/integrations/bookingservice"
	flowmodels "github.com/m04kA/HSM-BookingFlowService/internal/service/flows/models"
)

// UseCase use case отправки бронирования
// Сериализуемая транзакция с захватом строки защищает от двойной отправки:
// второй запрос увидит статус submitting и будет отклонён
type UseCase struct {
	flowRepo      FlowRepository
	bookingClient BookingServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	flowRepo FlowRepository,
	bookingClient BookingServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		flowRepo:      flowRepo,
		bookingClient: bookingClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute выполняет отправку бронирования
func (uc *UseCase) Execute(ctx context.Context, flowID string, userID int64) (*flowmodels.FlowResponse, error) {
	uc.logger.Info("SubmitBooking: flow=%s, user=%d", flowID, userID)

	var flow *domain.Flow

	// 1. Захватываем сессию и переводим её в submitting
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		locked, err := uc.flowRepo.GetByID(txCtx, flowID)
		if err != nil {
			if errors.Is(err, flowRepo.ErrFlowNotFound) {
				return ErrFlowNotFound
			}
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}
		if locked.UserID != userID {
			return ErrAccessDenied
		}

		switch locked.Status {
		case domain.FlowStatusSubmitting:
			return ErrSubmissionInFlight
		case domain.FlowStatusConfirmed:
			return ErrAlreadyConfirmed
		}

		if !locked.ReadyToSubmit() {
			return ErrNotReady
		}

		locked.Status = domain.FlowStatusSubmitting
		if err := uc.flowRepo.Update(txCtx, locked); err != nil {
			return fmt.Errorf("%w: failed to mark flow as submitting: %v", ErrInternal, err)
		}

		flow = locked
		return nil
	})
	if err != nil {
		uc.logger.Warn("SubmitBooking: flow=%s rejected: %v", flowID, err)
		return nil, err
	}

	// 2. Создаем бронирование в BookingService
	pricing := flow.Pricing()
	req := &bookingClient.CreateBookingRequest{
		UserID:         flow.UserID,
		ProfessionalID: flow.ProfessionalID,
		ServiceID:      flow.ServiceID,
		ServiceName:    flow.ServiceName,
		ScheduledDate:  flow.Date.Format(domain.DateFormat),
		ScheduledTime:  flow.TimeSlot.String(),
		Address: bookingClient.AddressSnapshot{
			Label:    flow.Address.Label,
			HouseNo:  flow.Address.HouseNo,
			Area:     flow.Address.Area,
			Landmark: flow.Address.Landmark,
			City:     flow.Address.City,
			State:    flow.Address.State,
			Pincode:  flow.Address.Pincode,
		},
		ContactNumber: *flow.ContactNumber,
		Price:         pricing.Total,
		PaymentMethod: *flow.PaymentMethod,
		Notes:         flow.Notes,
	}

	booking, err := uc.bookingClient.CreateBooking(ctx, req)
	if err != nil {
		// 3а. Отправка не удалась: возвращаем flow в draft, шаг остаётся прежним
		uc.logger.Error("SubmitBooking: flow=%s booking creation failed: %v", flowID, err)

		flow.Status = domain.FlowStatusDraft
		if updErr := uc.flowRepo.Update(ctx, flow); updErr != nil {
			uc.logger.Error("SubmitBooking: failed to revert flow=%s to draft: %v", flowID, updErr)
		}

		if errors.Is(err, bookingClient.ErrSlotConflict) {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	// 3б. Успех: фиксируем бронирование и переводим сессию на шаг 5
	flow.Confirm(booking.ID)
	if err := uc.flowRepo.Update(ctx, flow); err != nil {
		// Бронирование уже создано, поэтому не откатываем, а только логируем
		uc.logger.Error("SubmitBooking: booking=%s created but failed to confirm flow=%s: %v",
			booking.ID, flowID, err)
		return nil, fmt.Errorf("%w: failed to confirm flow: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitBooking: flow=%s confirmed with booking=%s, total=%.2f", flowID, booking.ID, pricing.Total)

	return flowmodels.FromDomainFlow(flow), nil
}
