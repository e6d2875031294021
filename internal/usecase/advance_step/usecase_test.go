package advance_step

import (
	"context"
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

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func draftFlow() *domain.Flow {
	return &domain.Flow{
		ID:               "7c4c8e42-1b7f-4c55-bb3c-df1a6a50a103",
		UserID:           42,
		CurrentStep:      domain.StepProfessional,
		Status:           domain.FlowStatusDraft,
		ProfessionalID:   7,
		ProfessionalName: "Ravi Kumar",
		ServiceCount:     1,
		Availability:     domain.AvailabilityUnchecked,
	}
}

func TestExecute_AdvanceFromStepOne(t *testing.T) {
	repo := &fakeFlowRepo{flow: draftFlow()}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), repo.flow.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.CurrentStep)
}

func TestExecute_ServiceRequiredWhenSeveral(t *testing.T) {
	flow := draftFlow()
	flow.ServiceCount = 3
	repo := &fakeFlowRepo{flow: flow}
	uc := NewUseCase(repo, noopLogger{})

	_, err := uc.Execute(context.Background(), flow.ID, 42)
	assert.ErrorIs(t, err, ErrStepIncomplete)
	assert.Equal(t, domain.StepProfessional, repo.flow.CurrentStep)
}

func TestExecute_ScheduleRequiresConfirmedAvailability(t *testing.T) {
	flow := draftFlow()
	flow.CurrentStep = domain.StepSchedule
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	flow.Date = &date
	flow.TimeSlot = types.TimeString("10:00")
	flow.ContactNumber = ptr.Ptr("9876543210")
	flow.AddressID = ptr.Ptr(int64(5))
	flow.Availability = domain.AvailabilityUnchecked

	repo := &fakeFlowRepo{flow: flow}
	uc := NewUseCase(repo, noopLogger{})

	_, err := uc.Execute(context.Background(), flow.ID, 42)
	assert.ErrorIs(t, err, ErrAvailabilityNotConfirmed)

	flow.Availability = domain.AvailabilityAvailable
	resp, err := uc.Execute(context.Background(), flow.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.CurrentStep)
}

func TestExecute_NoAdvanceFromPaymentStep(t *testing.T) {
	flow := draftFlow()
	flow.CurrentStep = domain.StepPayment
	flow.PaymentMethod = ptr.Ptr("upi")
	repo := &fakeFlowRepo{flow: flow}
	uc := NewUseCase(repo, noopLogger{})

	// Шаг 5 достижим только через submit
	_, err := uc.Execute(context.Background(), flow.ID, 42)
	assert.ErrorIs(t, err, ErrCannotAdvance)
}

func TestExecute_NotEditableAfterConfirmation(t *testing.T) {
	flow := draftFlow()
	flow.Status = domain.FlowStatusConfirmed
	flow.CurrentStep = domain.StepConfirmed
	repo := &fakeFlowRepo{flow: flow}
	uc := NewUseCase(repo, noopLogger{})

	_, err := uc.Execute(context.Background(), flow.ID, 42)
	assert.ErrorIs(t, err, ErrFlowNotEditable)
}

func TestExecute_AccessDenied(t *testing.T) {
	repo := &fakeFlowRepo{flow: draftFlow()}
	uc := NewUseCase(repo, noopLogger{})

	_, err := uc.Execute(context.Background(), repo.flow.ID, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
