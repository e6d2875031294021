package addresses

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	flowRepo "github.com/m04kA/HSM-BookingFlowService/internal/infra/storage/flow"
	"github.com/m04kA/HSM-BookingFlowService/internal/integrations/userservice"
	"github.com/m04kA/HSM-BookingFlowService/internal/service/addresses/models"
	flowmodels "github.com/m04kA/HSM-BookingFlowService/internal/service/flows/models"
)

var pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)

// Service сервис адресной книги в рамках сессии бронирования
// Хранилище адресов живёт в UserService, здесь — привязка к flow
type Service struct {
	flowRepo   FlowRepository
	userClient UserServiceClient
	logger     Logger
}

// NewService создает новый экземпляр сервиса адресов
func NewService(flowRepo FlowRepository, userClient UserServiceClient, logger Logger) *Service {
	return &Service{
		flowRepo:   flowRepo,
		userClient: userClient,
		logger:     logger,
	}
}

// List возвращает сохранённые адреса пользователя
// Если в сессии адрес ещё не выбран, а среди сохранённых есть адрес
// по умолчанию, он выбирается автоматически
func (s *Service) List(ctx context.Context, flowID string, userID int64) (*models.ListAddressesResponse, error) {
	s.logger.Info("ListAddresses: flow=%s, user=%d", flowID, userID)

	flow, err := s.loadOwned(ctx, flowID, userID)
	if err != nil {
		return nil, err
	}

	addrs, err := s.userClient.ListAddresses(ctx, userID)
	if err != nil {
		s.logger.Error("ListAddresses: failed to list addresses for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to list addresses: %v", ErrInternal, err)
	}

	if flow.AddressID == nil && flow.Status == domain.FlowStatusDraft {
		for _, addr := range addrs {
			if addr.IsDefault {
				flow.SelectAddress(addr)
				if err := s.save(ctx, flow); err != nil {
					return nil, err
				}
				s.logger.Info("ListAddresses: flow=%s auto-selected default address=%d", flowID, addr.ID)
				break
			}
		}
	}

	views := make([]flowmodels.AddressView, 0, len(addrs))
	for _, addr := range addrs {
		views = append(views, *flowmodels.FromDomainAddress(addr))
	}

	return &models.ListAddressesResponse{
		Addresses:         views,
		Total:             len(views),
		SelectedAddressID: flow.AddressID,
	}, nil
}

// Create создает адрес в UserService и выбирает его в сессии
func (s *Service) Create(ctx context.Context, flowID string, req *models.CreateAddressRequest) (*flowmodels.FlowResponse, error) {
	s.logger.Info("CreateAddress: flow=%s, user=%d", flowID, req.UserID)

	if err := validateAddress(req); err != nil {
		s.logger.Warn("CreateAddress: validation failed for flow=%s: %v", flowID, err)
		return nil, err
	}

	flow, err := s.loadOwnedEditable(ctx, flowID, req.UserID)
	if err != nil {
		return nil, err
	}

	created, err := s.userClient.CreateAddress(ctx, req.UserID, &userservice.AddressCreate{
		Label:     req.Label,
		HouseNo:   req.HouseNo,
		Area:      req.Area,
		Landmark:  req.Landmark,
		City:      req.City,
		State:     req.State,
		Pincode:   req.Pincode,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		if errors.Is(err, userservice.ErrValidation) {
			s.logger.Warn("CreateAddress: rejected by UserService for flow=%s: %v", flowID, err)
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		s.logger.Error("CreateAddress: failed to create address for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to create address: %v", ErrInternal, err)
	}

	flow.SelectAddress(created)

	if err := s.save(ctx, flow); err != nil {
		return nil, err
	}

	s.logger.Info("CreateAddress: flow=%s selected new address=%d", flowID, created.ID)
	return flowmodels.FromDomainFlow(flow), nil
}

// Select выбирает один из сохранённых адресов для сессии
func (s *Service) Select(ctx context.Context, flowID string, userID, addressID int64) (*flowmodels.FlowResponse, error) {
	s.logger.Info("SelectAddress: flow=%s, user=%d, address=%d", flowID, userID, addressID)

	flow, err := s.loadOwnedEditable(ctx, flowID, userID)
	if err != nil {
		return nil, err
	}

	addrs, err := s.userClient.ListAddresses(ctx, userID)
	if err != nil {
		s.logger.Error("SelectAddress: failed to list addresses for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to list addresses: %v", ErrInternal, err)
	}

	var selected *domain.Address
	for _, addr := range addrs {
		if addr.ID == addressID {
			selected = addr
			break
		}
	}
	if selected == nil {
		s.logger.Warn("SelectAddress: address=%d not found for user=%d", addressID, userID)
		return nil, ErrAddressNotFound
	}

	flow.SelectAddress(selected)

	if err := s.save(ctx, flow); err != nil {
		return nil, err
	}

	return flowmodels.FromDomainFlow(flow), nil
}

// Delete удаляет адрес из UserService
// Если удалённый адрес был выбран в сессии, выбор сбрасывается
func (s *Service) Delete(ctx context.Context, flowID string, userID, addressID int64) (*flowmodels.FlowResponse, error) {
	s.logger.Info("DeleteAddress: flow=%s, user=%d, address=%d", flowID, userID, addressID)

	flow, err := s.loadOwnedEditable(ctx, flowID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.userClient.DeleteAddress(ctx, userID, addressID); err != nil {
		if errors.Is(err, userservice.ErrAddressNotFound) {
			s.logger.Warn("DeleteAddress: address=%d not found for user=%d", addressID, userID)
			return nil, ErrAddressNotFound
		}
		s.logger.Error("DeleteAddress: failed to delete address=%d: %v", addressID, err)
		return nil, fmt.Errorf("%w: failed to delete address: %v", ErrInternal, err)
	}

	if flow.AddressID != nil && *flow.AddressID == addressID {
		flow.ClearAddress()
		if err := s.save(ctx, flow); err != nil {
			return nil, err
		}
		s.logger.Info("DeleteAddress: flow=%s cleared selected address=%d", flowID, addressID)
	}

	return flowmodels.FromDomainFlow(flow), nil
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

func validateAddress(req *models.CreateAddressRequest) error {
	if req.HouseNo == "" {
		return fmt.Errorf("%w: house_no is required", ErrValidation)
	}
	if req.Area == "" {
		return fmt.Errorf("%w: area is required", ErrValidation)
	}
	if req.City == "" {
		return fmt.Errorf("%w: city is required", ErrValidation)
	}
	if req.Pincode == "" {
		return fmt.Errorf("%w: pincode is required", ErrValidation)
	}
	if !pincodeRe.MatchString(req.Pincode) {
		return fmt.Errorf("%w: pincode must be %d digits", ErrValidation, domain.PincodeLength)
	}
	return nil
}
