package flows

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	flowRepo "github.com/m04kA/HSM-BookingFlowService/internal/infra/storage/flow"
	"github.com/m04kA/HSM-BookingFlowService/internal/service/flows/models"
	"github.com/m04kA/HSM-BookingFlowService/pkg/types"
)

var contactNumberRe = regexp.MustCompile(`^[0-9]{10}$`)

// Service сервис для работы с сессиями бронирования
// Покрывает простые мутации выбора; оркестрация (старт, переход вперёд,
// проверка доступности, отправка) живёт в usecase'ах
type Service struct {
	flowRepo      FlowRepository
	profileClient ProfileServiceClient
	offerProvider OfferProvider
	slotProvider  TimeSlotProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	flowRepo FlowRepository,
	profileClient ProfileServiceClient,
	offerProvider OfferProvider,
	slotProvider TimeSlotProvider,
	logger Logger,
) *Service {
	return &Service{
		flowRepo:      flowRepo,
		profileClient: profileClient,
		offerProvider: offerProvider,
		slotProvider:  slotProvider,
		logger:        logger,
	}
}

// GetByID возвращает состояние сессии с досчитанной стоимостью
// Пользователь видит только свои сессии
func (s *Service) GetByID(ctx context.Context, flowID string, userID int64) (*models.FlowResponse, error) {
	flow, err := s.loadOwned(ctx, flowID, userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainFlow(flow), nil
}

// SelectService выбирает услугу профессионала
// Стоимость пересчитывается от цены новой услуги при каждом чтении
func (s *Service) SelectService(ctx context.Context, flowID string, userID, serviceID int64) (*models.FlowResponse, error) {
	s.logger.Info("SelectService: flow=%s, user=%d, service=%d", flowID, userID, serviceID)

	flow, err := s.loadOwnedEditable(ctx, flowID, userID)
	if err != nil {
		return nil, err
	}

	services, err := s.profileClient.GetServicesByProfessional(ctx, flow.ProfessionalID)
	if err != nil {
		s.logger.Error("SelectService: failed to get services for professional=%d: %v", flow.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	var selected *domain.Service
	for _, svc := range services {
		if svc.ID == serviceID {
			selected = svc
			break
		}
	}
	if selected == nil {
		s.logger.Warn("SelectService: service=%d not found for professional=%d", serviceID, flow.ProfessionalID)
		return nil, ErrServiceNotFound
	}

	flow.SelectService(selected)

	if err := s.save(ctx, flow); err != nil {
		return nil, err
	}

	s.logger.Info("SelectService: flow=%s now has service=%d (%s)", flowID, serviceID, selected.Name)
	return models.FromDomainFlow(flow), nil
}

// SetSchedule задаёт дату, временной слот и контактный номер
// Любое изменение даты или слота сбрасывает результат проверки доступности
func (s *Service) SetSchedule(ctx context.Context, flowID string, req *models.SetScheduleRequest) (*models.FlowResponse, error) {
	s.logger.Info("SetSchedule: flow=%s, user=%d, date=%s, slot=%s",
		flowID, req.UserID, req.Date.Format(domain.DateFormat), req.TimeSlot)

	if err := validateSchedule(req); err != nil {
		s.logger.Warn("SetSchedule: validation failed for flow=%s: %v", flowID, err)
		return nil, err
	}

	flow, err := s.loadOwnedEditable(ctx, flowID, req.UserID)
	if err != nil {
		return nil, err
	}

	// Слот должен входить в сетку слотов
	if err := s.validateSlotInGrid(ctx, req.TimeSlot); err != nil {
		s.logger.Warn("SetSchedule: slot %s not in grid for flow=%s", req.TimeSlot, flowID)
		return nil, err
	}

	flow.SetSchedule(req.Date, req.TimeSlot, req.ContactNumber)
	if req.Notes != nil {
		flow.Notes = req.Notes
	}

	if err := s.save(ctx, flow); err != nil {
		return nil, err
	}

	s.logger.Info("SetSchedule: flow=%s scheduled for %s %s, availability=%s",
		flowID, req.Date.Format(domain.DateFormat), req.TimeSlot, flow.Availability)
	return models.FromDomainFlow(flow), nil
}

// ApplyOffer применяет оффер к сессии (максимум один одновременно)
func (s *Service) ApplyOffer(ctx context.Context, flowID string, userID, offerID int64) (*models.FlowResponse, error) {
	s.logger.Info("ApplyOffer: flow=%s, user=%d, offer=%d", flowID, userID, offerID)

	flow, err := s.loadOwnedEditable(ctx, flowID, userID)
	if err != nil {
		return nil, err
	}

	offers, err := s.offerProvider.GetOffers(ctx)
	if err != nil {
		s.logger.Error("ApplyOffer: failed to get offers: %v", err)
		return nil, fmt.Errorf("%w: failed to get offers: %v", ErrInternal, err)
	}

	var offer *domain.Offer
	for _, o := range offers {
		if o.ID == offerID {
			offer = o
			break
		}
	}
	if offer == nil {
		s.logger.Warn("ApplyOffer: offer=%d not found", offerID)
		return nil, ErrOfferNotFound
	}

	flow.ApplyOffer(offer)

	if err := s.save(ctx, flow); err != nil {
		return nil, err
	}

	pricing := flow.Pricing()
	s.logger.Info("ApplyOffer: flow=%s applied offer=%s, discount=%.2f, total=%.2f",
		flowID, offer.Code, pricing.Discount, pricing.Total)
	return models.FromDomainFlow(flow), nil
}

// RemoveOffer снимает применённый оффер
func (s *Service) RemoveOffer(ctx context.Context, flowID string, userID int64) (*models.FlowResponse, error) {
	s.logger.Info("RemoveOffer: flow=%s, user=%d", flowID, userID)

	flow, err := s.loadOwnedEditable(ctx, flowID, userID)
	if err != nil {
		return nil, err
	}

	flow.RemoveOffer()

	if err := s.save(ctx, flow); err != nil {
		return nil, err
	}

	return models.FromDomainFlow(flow), nil
}

// SetPaymentMethod выбирает способ оплаты
func (s *Service) SetPaymentMethod(ctx context.Context, flowID string, userID int64, method string) (*models.FlowResponse, error) {
	s.logger.Info("SetPaymentMethod: flow=%s, user=%d, method=%s", flowID, userID, method)

	if !domain.IsValidPaymentMethod(method) {
		s.logger.Warn("SetPaymentMethod: unknown method=%s for flow=%s", method, flowID)
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, method)
	}

	flow, err := s.loadOwnedEditable(ctx, flowID, userID)
	if err != nil {
		return nil, err
	}

	flow.SetPaymentMethod(method)

	if err := s.save(ctx, flow); err != nil {
		return nil, err
	}

	return models.FromDomainFlow(flow), nil
}

// Back переводит сессию на предыдущий шаг
// Разрешено только с шагов 2-4
func (s *Service) Back(ctx context.Context, flowID string, userID int64) (*models.FlowResponse, error) {
	s.logger.Info("Back: flow=%s, user=%d", flowID, userID)

	flow, err := s.loadOwnedEditable(ctx, flowID, userID)
	if err != nil {
		return nil, err
	}

	if !flow.CanGoBack() {
		s.logger.Warn("Back: flow=%s cannot go back from step=%d", flowID, flow.CurrentStep)
		return nil, ErrCannotGoBack
	}

	flow.Back()

	if err := s.save(ctx, flow); err != nil {
		return nil, err
	}

	s.logger.Info("Back: flow=%s now on step=%d", flowID, flow.CurrentStep)
	return models.FromDomainFlow(flow), nil
}

// Вспомогательные методы

func (s *Service) loadOwned(ctx context.Context, flowID string, userID int64) (*domain.Flow, error) {
	flow, err := s.flowRepo.GetByID(ctx, flowID)
	if err != nil {
		if errors.Is(err, flowRepo.ErrFlowNotFound) {
			s.logger.Warn("flow=%s not found", flowID)
			return nil, ErrFlowNotFound
		}
		s.logger.Error("repository error for flow=%s: %v", flowID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if flow.UserID != userID {
		s.logger.Warn("access denied for user=%d to flow=%s", userID, flowID)
		return nil, ErrAccessDenied
	}

	return flow, nil
}

// loadOwnedEditable дополнительно проверяет, что flow ещё можно менять
// После начала отправки или подтверждения выбор заморожен
func (s *Service) loadOwnedEditable(ctx context.Context, flowID string, userID int64) (*domain.Flow, error) {
	flow, err := s.loadOwned(ctx, flowID, userID)
	if err != nil {
		return nil, err
	}

	if flow.Status != domain.FlowStatusDraft {
		s.logger.Warn("flow=%s is not editable, status=%s", flowID, flow.Status)
		return nil, ErrFlowNotEditable
	}

	return flow, nil
}

func (s *Service) save(ctx context.Context, flow *domain.Flow) error {
	if err := s.flowRepo.Update(ctx, flow); err != nil {
		if errors.Is(err, flowRepo.ErrFlowNotFound) {
			return ErrFlowNotFound
		}
		s.logger.Error("failed to update flow=%s: %v", flow.ID, err)
		return fmt.Errorf("%w: failed to update flow: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) validateSlotInGrid(ctx context.Context, slot types.TimeString) error {
	groups, err := s.slotProvider.GetTimeSlots(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to get time slots: %v", ErrInternal, err)
	}

	for _, group := range groups {
		for _, gridSlot := range group.Slots {
			if gridSlot == slot {
				return nil
			}
		}
	}

	return ErrInvalidTimeSlot
}

func validateSchedule(req *models.SetScheduleRequest) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.TimeSlot.IsZero() {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}
	if err := req.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot format: %v", ErrInvalidInput, err)
	}
	if !contactNumberRe.MatchString(req.ContactNumber) {
		return fmt.Errorf("%w: contactNumber must be %d digits", ErrInvalidInput, domain.ContactNumberLength)
	}
	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
