package submit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	flowRepo "github.com/m04kA/HSM-BookingFlowService/internal/infra/storage/flow"
	"github.com/m04kA/HSM-BookingFlowService/internal/integrations/bookingservice"
	"github.com/m04kA/HSM-BookingFlowService/pkg/ptr"
	"github.com/m04kA/HSM-BookingFlowService/pkg/types"
)

type fakeFlowRepo struct {
	flow    *domain.Flow
	getErr  error
	updates []domain.FlowStatus
}

func (r *fakeFlowRepo) GetByID(_ context.Context, id string) (*domain.Flow, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.flow == nil || r.flow.ID != id {
		return nil, flowRepo.ErrFlowNotFound
	}
	return r.flow, nil
}

func (r *fakeFlowRepo) Update(_ context.Context, f *domain.Flow) error {
	r.flow = f
	r.updates = append(r.updates, f.Status)
	return nil
}

type fakeTxManager struct{}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingClient struct {
	booking *bookingservice.Booking
	err     error
	lastReq *bookingservice.CreateBookingRequest
}

func (c *fakeBookingClient) CreateBooking(_ context.Context, data *bookingservice.CreateBookingRequest) (*bookingservice.Booking, error) {
	c.lastReq = data
	if c.err != nil {
		return nil, c.err
	}
	return c.booking, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func readyFlow() *domain.Flow {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	return &domain.Flow{
		ID:               "3f1a9a10-72c4-4f6b-a2ce-6f1f0f51d001",
		UserID:           42,
		CurrentStep:      domain.StepPayment,
		Status:           domain.FlowStatusDraft,
		ProfessionalID:   7,
		ProfessionalName: "Ravi Kumar",
		ServiceCount:     1,
		ServiceID:        ptr.Ptr(int64(3)),
		ServiceName:      ptr.Ptr("Deep Clean"),
		ServicePrice:     ptr.Ptr(800.0),
		Date:             &date,
		TimeSlot:         types.TimeString("10:00"),
		ContactNumber:    ptr.Ptr("9876543210"),
		AddressID:        ptr.Ptr(int64(5)),
		Address: &domain.Address{
			ID: 5, HouseNo: "12A", Area: "MG Road", City: "Bangalore", Pincode: "560001",
		},
		Availability:  domain.AvailabilityAvailable,
		PaymentMethod: ptr.Ptr("upi"),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeFlowRepo{flow: readyFlow()}
	client := &fakeBookingClient{booking: &bookingservice.Booking{ID: "bkg_123", Status: "confirmed"}}
	uc := NewUseCase(repo, client, &fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), repo.flow.ID, 42)
	require.NoError(t, err)

	assert.Equal(t, 5, resp.CurrentStep)
	assert.Equal(t, string(domain.FlowStatusConfirmed), resp.Status)
	require.NotNil(t, resp.BookingID)
	assert.Equal(t, "bkg_123", *resp.BookingID)

	// Сначала submitting, затем confirmed
	assert.Equal(t, []domain.FlowStatus{domain.FlowStatusSubmitting, domain.FlowStatusConfirmed}, repo.updates)

	// Итоговая цена уходит в BookingService: 800 - 0 + 50 + 144
	require.NotNil(t, client.lastReq)
	assert.Equal(t, 994.0, client.lastReq.Price)
	assert.Equal(t, "2026-03-15", client.lastReq.ScheduledDate)
	assert.Equal(t, "10:00", client.lastReq.ScheduledTime)
	assert.Equal(t, "560001", client.lastReq.Address.Pincode)
}

func TestExecute_SubmissionInFlight(t *testing.T) {
	flow := readyFlow()
	flow.Status = domain.FlowStatusSubmitting
	repo := &fakeFlowRepo{flow: flow}
	client := &fakeBookingClient{}
	uc := NewUseCase(repo, client, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), flow.ID, 42)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Nil(t, client.lastReq, "booking must not be created twice")
}

func TestExecute_AlreadyConfirmed(t *testing.T) {
	flow := readyFlow()
	flow.Status = domain.FlowStatusConfirmed
	repo := &fakeFlowRepo{flow: flow}
	uc := NewUseCase(repo, &fakeBookingClient{}, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), flow.ID, 42)
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
}

func TestExecute_NotReady(t *testing.T) {
	flow := readyFlow()
	flow.PaymentMethod = nil
	repo := &fakeFlowRepo{flow: flow}
	uc := NewUseCase(repo, &fakeBookingClient{}, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), flow.ID, 42)
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestExecute_AccessDenied(t *testing.T) {
	repo := &fakeFlowRepo{flow: readyFlow()}
	uc := NewUseCase(repo, &fakeBookingClient{}, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), repo.flow.ID, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_FailureRevertsToDraft(t *testing.T) {
	repo := &fakeFlowRepo{flow: readyFlow()}
	client := &fakeBookingClient{err: errors.New("connection refused")}
	uc := NewUseCase(repo, client, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), repo.flow.ID, 42)
	assert.ErrorIs(t, err, ErrSubmissionFailed)

	// Сессия вернулась в draft на шаге оплаты, можно повторить
	assert.Equal(t, domain.FlowStatusDraft, repo.flow.Status)
	assert.Equal(t, domain.StepPayment, repo.flow.CurrentStep)
	assert.Nil(t, repo.flow.BookingID)
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &fakeFlowRepo{flow: readyFlow()}
	client := &fakeBookingClient{err: bookingservice.ErrSlotConflict}
	uc := NewUseCase(repo, client, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), repo.flow.ID, 42)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, domain.FlowStatusDraft, repo.flow.Status)
}

func TestExecute_FlowNotFound(t *testing.T) {
	repo := &fakeFlowRepo{}
	uc := NewUseCase(repo, &fakeBookingClient{}, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), "b8a26a19-0000-0000-0000-000000000000", 42)
	assert.ErrorIs(t, err, ErrFlowNotFound)
}
