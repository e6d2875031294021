package flows

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	flowRepo "github.com/m04kA/HSM-BookingFlowService/internal/infra/storage/flow"
	"github.com/m04kA/HSM-BookingFlowService/internal/service/flows/models"
	"github.com/m04kA/HSM-BookingFlowService/pkg/ptr"
	"github.com/m04kA/HSM-BookingFlowService/pkg/types"
)

type fakeFlowRepo struct {
	flow *domain.Flow
}

func (r *fakeFlowRepo) GetByID(_ context.Context, id string) (*domain.Flow, error) {
	if r.flow == nil || r.flow.ID != id {
		return nil, flowRepo.ErrFlowNotFound
	}
	return r.flow, nil
}

func (r *fakeFlowRepo) Update(_ context.Context, f *domain.Flow) error {
	r.flow = f
	return nil
}

type fakeProfileClient struct {
	services []*domain.Service
}

func (c *fakeProfileClient) GetServicesByProfessional(_ context.Context, _ int64) ([]*domain.Service, error) {
	return c.services, nil
}

type fakeCatalog struct {
	offers []*domain.Offer
	groups []domain.TimeSlotGroup
}

func (c *fakeCatalog) GetOffers(_ context.Context) ([]*domain.Offer, error) {
	return c.offers, nil
}

func (c *fakeCatalog) GetTimeSlots(_ context.Context) ([]domain.TimeSlotGroup, error) {
	return c.groups, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(flow *domain.Flow) (*Service, *fakeFlowRepo) {
	repo := &fakeFlowRepo{flow: flow}
	catalog := &fakeCatalog{
		offers: []*domain.Offer{
			{ID: 1, Code: "FIRST50", DiscountAmount: ptr.Ptr(50.0)},
			{ID: 2, Code: "SAVE10", DiscountPercent: ptr.Ptr(10.0), MaxSavings: ptr.Ptr(100.0)},
		},
		groups: []domain.TimeSlotGroup{
			{Period: "morning", Slots: []types.TimeString{"09:00", "10:00", "11:00"}},
			{Period: "evening", Slots: []types.TimeString{"17:00", "18:00"}},
		},
	}
	profile := &fakeProfileClient{
		services: []*domain.Service{
			{ID: 1, Name: "Haircut", Price: 400},
			{ID: 2, Name: "Deep Clean", Price: 800},
		},
	}
	return NewService(repo, profile, catalog, catalog, noopLogger{}), repo
}

func draftFlow() *domain.Flow {
	return &domain.Flow{
		ID:               "9e2b7c31-55f0-4f2e-8707-3d0a8a3de201",
		UserID:           42,
		CurrentStep:      domain.StepProfessional,
		Status:           domain.FlowStatusDraft,
		ProfessionalID:   7,
		ProfessionalName: "Ravi Kumar",
		ServiceCount:     2,
		Availability:     domain.AvailabilityUnchecked,
	}
}

func TestSelectService(t *testing.T) {
	svc, repo := newTestService(draftFlow())

	resp, err := svc.SelectService(context.Background(), repo.flow.ID, 42, 2)
	require.NoError(t, err)

	require.NotNil(t, resp.ServiceID)
	assert.Equal(t, int64(2), *resp.ServiceID)
	assert.Equal(t, 800.0, resp.Pricing.ServiceCost)

	_, err = svc.SelectService(context.Background(), repo.flow.ID, 42, 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestSetSchedule(t *testing.T) {
	svc, repo := newTestService(draftFlow())

	req := &models.SetScheduleRequest{
		UserID:        42,
		Date:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:      types.TimeString("10:00"),
		ContactNumber: "9876543210",
		Notes:         ptr.Ptr("позвоните за час"),
	}

	resp, err := svc.SetSchedule(context.Background(), repo.flow.ID, req)
	require.NoError(t, err)

	require.NotNil(t, resp.Date)
	assert.Equal(t, "2026-03-15", *resp.Date)
	require.NotNil(t, resp.TimeSlot)
	assert.Equal(t, "10:00", *resp.TimeSlot)
	assert.Equal(t, string(domain.AvailabilityUnchecked), resp.Availability)
}

func TestSetSchedule_SlotOutsideGrid(t *testing.T) {
	svc, repo := newTestService(draftFlow())

	req := &models.SetScheduleRequest{
		UserID:        42,
		Date:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:      types.TimeString("03:30"),
		ContactNumber: "9876543210",
	}

	_, err := svc.SetSchedule(context.Background(), repo.flow.ID, req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestSetSchedule_Validation(t *testing.T) {
	svc, repo := newTestService(draftFlow())
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	// Контактный номер должен быть 10 цифр
	_, err := svc.SetSchedule(context.Background(), repo.flow.ID, &models.SetScheduleRequest{
		UserID: 42, Date: date, TimeSlot: types.TimeString("10:00"), ContactNumber: "12345",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Заметки ограничены по длине
	long := make([]byte, 0, domain.MaxNotesLength+1)
	for i := 0; i <= domain.MaxNotesLength; i++ {
		long = append(long, 'a')
	}
	_, err = svc.SetSchedule(context.Background(), repo.flow.ID, &models.SetScheduleRequest{
		UserID: 42, Date: date, TimeSlot: types.TimeString("10:00"),
		ContactNumber: "9876543210", Notes: ptr.Ptr(string(long)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetSchedule_ResetsStaleAvailability(t *testing.T) {
	flow := draftFlow()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	flow.Date = &date
	flow.TimeSlot = types.TimeString("10:00")
	flow.ContactNumber = ptr.Ptr("9876543210")
	flow.Availability = domain.AvailabilityAvailable
	svc, repo := newTestService(flow)

	// Смена слота обнуляет подтверждённую доступность
	resp, err := svc.SetSchedule(context.Background(), repo.flow.ID, &models.SetScheduleRequest{
		UserID: 42, Date: date, TimeSlot: types.TimeString("11:00"), ContactNumber: "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.AvailabilityUnchecked), resp.Availability)
}

func TestApplyAndRemoveOffer(t *testing.T) {
	flow := draftFlow()
	flow.ServiceID = ptr.Ptr(int64(2))
	flow.ServiceName = ptr.Ptr("Deep Clean")
	flow.ServicePrice = ptr.Ptr(800.0)
	svc, repo := newTestService(flow)

	resp, err := svc.ApplyOffer(context.Background(), repo.flow.ID, 42, 2)
	require.NoError(t, err)
	assert.Equal(t, 80.0, resp.Pricing.Discount)
	require.NotNil(t, resp.OfferCode)
	assert.Equal(t, "SAVE10", *resp.OfferCode)

	_, err = svc.ApplyOffer(context.Background(), repo.flow.ID, 42, 99)
	assert.ErrorIs(t, err, ErrOfferNotFound)

	resp, err = svc.RemoveOffer(context.Background(), repo.flow.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Pricing.Discount)
	assert.Nil(t, resp.OfferCode)
}

func TestSetPaymentMethod(t *testing.T) {
	svc, repo := newTestService(draftFlow())

	resp, err := svc.SetPaymentMethod(context.Background(), repo.flow.ID, 42, "upi")
	require.NoError(t, err)
	require.NotNil(t, resp.PaymentMethod)
	assert.Equal(t, "upi", *resp.PaymentMethod)

	_, err = svc.SetPaymentMethod(context.Background(), repo.flow.ID, 42, "crypto")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBack(t *testing.T) {
	flow := draftFlow()
	flow.CurrentStep = domain.StepOffers
	svc, repo := newTestService(flow)

	resp, err := svc.Back(context.Background(), repo.flow.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.CurrentStep)

	repo.flow.CurrentStep = domain.StepProfessional
	_, err = svc.Back(context.Background(), repo.flow.ID, 42)
	assert.ErrorIs(t, err, ErrCannotGoBack)
}

func TestOwnershipAndEditability(t *testing.T) {
	svc, repo := newTestService(draftFlow())

	_, err := svc.GetByID(context.Background(), repo.flow.ID, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000", 42)
	assert.ErrorIs(t, err, ErrFlowNotFound)

	repo.flow.Status = domain.FlowStatusConfirmed
	_, err = svc.SetPaymentMethod(context.Background(), repo.flow.ID, 42, "upi")
	assert.ErrorIs(t, err, ErrFlowNotEditable)

	// Чтение подтверждённого flow разрешено
	resp, err := svc.GetByID(context.Background(), repo.flow.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, string(domain.FlowStatusConfirmed), resp.Status)
}
