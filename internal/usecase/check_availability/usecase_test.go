package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	flowRepo "github.com/m04kA/HSM-BookingFlowService/internal/infra/storage/flow"
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

// ApplyAvailabilityResult повторяет семантику SQL compare-and-set:
// результат применяется только для актуального generation в статусе checking
func (r *fakeFlowRepo) ApplyAvailabilityResult(_ context.Context, flowID string, generation int64, status domain.AvailabilityStatus) (bool, error) {
	if r.flow == nil || r.flow.ID != flowID {
		return false, flowRepo.ErrFlowNotFound
	}
	if r.flow.AvailabilityGeneration != generation || r.flow.Availability != domain.AvailabilityChecking {
		return false, nil
	}
	r.flow.Availability = status
	return true, nil
}

type fakeChecker struct {
	available bool
	err       error
	// beforeReturn выполняется до возврата результата, имитируя
	// конкурентную правку расписания во время проверки
	beforeReturn func()
}

func (c *fakeChecker) CheckAvailability(_ context.Context, _ int64, _ time.Time, _ types.TimeString, _ string) (bool, error) {
	if c.beforeReturn != nil {
		c.beforeReturn()
	}
	return c.available, c.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func scheduledFlow() *domain.Flow {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	return &domain.Flow{
		ID:               "5a0b4c1d-38e2-47f0-9a11-92cf30aa7702",
		UserID:           42,
		CurrentStep:      domain.StepSchedule,
		Status:           domain.FlowStatusDraft,
		ProfessionalID:   7,
		ProfessionalName: "Ravi Kumar",
		ServiceCount:     1,
		Date:             &date,
		TimeSlot:         types.TimeString("10:00"),
		ContactNumber:    ptr.Ptr("9876543210"),
		AddressID:        ptr.Ptr(int64(5)),
		Address: &domain.Address{
			ID: 5, HouseNo: "12A", Area: "MG Road", City: "Bangalore", Pincode: "560001",
		},
		Availability: domain.AvailabilityUnchecked,
	}
}

func TestExecute_Available(t *testing.T) {
	repo := &fakeFlowRepo{flow: scheduledFlow()}
	uc := NewUseCase(repo, &fakeChecker{available: true}, noopLogger{})

	resp, err := uc.Execute(context.Background(), repo.flow.ID, 42)
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.True(t, resp.Applied)
	assert.Equal(t, string(domain.AvailabilityAvailable), resp.Flow.Availability)
}

func TestExecute_Unavailable(t *testing.T) {
	repo := &fakeFlowRepo{flow: scheduledFlow()}
	uc := NewUseCase(repo, &fakeChecker{available: false}, noopLogger{})

	resp, err := uc.Execute(context.Background(), repo.flow.ID, 42)
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.True(t, resp.Applied)
	assert.Equal(t, string(domain.AvailabilityUnavailable), resp.Flow.Availability)
}

func TestExecute_StaleResultDiscarded(t *testing.T) {
	repo := &fakeFlowRepo{flow: scheduledFlow()}
	checker := &fakeChecker{available: true}
	// Пока проверка идёт, пользователь меняет слот
	checker.beforeReturn = func() {
		repo.flow.SetSchedule(*repo.flow.Date, types.TimeString("11:00"), *repo.flow.ContactNumber)
	}
	uc := NewUseCase(repo, checker, noopLogger{})

	resp, err := uc.Execute(context.Background(), repo.flow.ID, 42)
	require.NoError(t, err)

	// Положительный результат для старого слота не применяется
	assert.True(t, resp.Available)
	assert.False(t, resp.Applied)
	assert.Equal(t, string(domain.AvailabilityUnchecked), resp.Flow.Availability)
}

func TestExecute_ScheduleIncomplete(t *testing.T) {
	flow := scheduledFlow()
	flow.AddressID = nil
	flow.Address = nil
	repo := &fakeFlowRepo{flow: flow}
	uc := NewUseCase(repo, &fakeChecker{}, noopLogger{})

	_, err := uc.Execute(context.Background(), flow.ID, 42)
	assert.ErrorIs(t, err, ErrScheduleIncomplete)
}

func TestExecute_CheckerErrorResetsStatus(t *testing.T) {
	repo := &fakeFlowRepo{flow: scheduledFlow()}
	uc := NewUseCase(repo, &fakeChecker{err: errors.New("timeout")}, noopLogger{})

	_, err := uc.Execute(context.Background(), repo.flow.ID, 42)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, domain.AvailabilityUnchecked, repo.flow.Availability)
}

func TestExecute_AccessDenied(t *testing.T) {
	repo := &fakeFlowRepo{flow: scheduledFlow()}
	uc := NewUseCase(repo, &fakeChecker{}, noopLogger{})

	_, err := uc.Execute(context.Background(), repo.flow.ID, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
