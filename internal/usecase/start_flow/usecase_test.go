package start_flow

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	profileClient "github.com/m04kA/HSM-BookingFlowService/internal/integrations/profileservice"
	"github.com/m04kA/HSM-BookingFlowService/pkg/ptr"
)

type fakeFlowRepo struct {
	created *domain.Flow
}

func (r *fakeFlowRepo) Create(_ context.Context, f *domain.Flow) (*domain.Flow, error) {
	f.CreatedAt = time.Now()
	f.UpdatedAt = f.CreatedAt
	r.created = f
	return f, nil
}

type fakeProfileClient struct {
	professional *domain.Professional
	services     []*domain.Service
	profErr      error
}

func (c *fakeProfileClient) GetProfessionalPublicProfile(_ context.Context, _ int64) (*domain.Professional, error) {
	if c.profErr != nil {
		return nil, c.profErr
	}
	return c.professional, nil
}

func (c *fakeProfileClient) GetServicesByProfessional(_ context.Context, _ int64) ([]*domain.Service, error) {
	return c.services, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_CreatesFlowAtStepOne(t *testing.T) {
	repo := &fakeFlowRepo{}
	profile := &fakeProfileClient{
		professional: &domain.Professional{ID: 7, Name: "Ravi Kumar", HourlyRate: ptr.Ptr(300.0)},
		services: []*domain.Service{
			{ID: 1, Name: "Haircut", Price: 400},
			{ID: 2, Name: "Shave", Price: 150},
		},
	}
	uc := NewUseCase(repo, profile, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, ProfessionalID: 7})
	require.NoError(t, err)

	_, parseErr := uuid.Parse(resp.ID)
	assert.NoError(t, parseErr, "flow id must be a valid uuid")
	assert.Equal(t, 1, resp.CurrentStep)
	assert.Equal(t, string(domain.FlowStatusDraft), resp.Status)
	assert.Equal(t, "Ravi Kumar", resp.ProfessionalName)
	// Две услуги: автоматический выбор не выполняется
	assert.Nil(t, resp.ServiceID)

	// Стоимость считается от ставки профессионала
	assert.Equal(t, 300.0, resp.Pricing.ServiceCost)
}

func TestExecute_AutoSelectsSingleService(t *testing.T) {
	repo := &fakeFlowRepo{}
	profile := &fakeProfileClient{
		professional: &domain.Professional{ID: 7, Name: "Ravi Kumar"},
		services:     []*domain.Service{{ID: 3, Name: "Deep Clean", Price: 800}},
	}
	uc := NewUseCase(repo, profile, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, ProfessionalID: 7})
	require.NoError(t, err)

	require.NotNil(t, resp.ServiceID)
	assert.Equal(t, int64(3), *resp.ServiceID)
	assert.Equal(t, 800.0, resp.Pricing.ServiceCost)
}

func TestExecute_PreselectedService(t *testing.T) {
	repo := &fakeFlowRepo{}
	profile := &fakeProfileClient{
		professional: &domain.Professional{ID: 7, Name: "Ravi Kumar"},
		services: []*domain.Service{
			{ID: 1, Name: "Haircut", Price: 400},
			{ID: 2, Name: "Shave", Price: 150},
		},
	}
	uc := NewUseCase(repo, profile, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, ProfessionalID: 7, ServiceID: ptr.Ptr(int64(2))})
	require.NoError(t, err)
	require.NotNil(t, resp.ServiceID)
	assert.Equal(t, int64(2), *resp.ServiceID)

	_, err = uc.Execute(context.Background(), &Request{UserID: 42, ProfessionalID: 7, ServiceID: ptr.Ptr(int64(99))})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	repo := &fakeFlowRepo{}
	profile := &fakeProfileClient{profErr: profileClient.ErrProfessionalNotFound}
	uc := NewUseCase(repo, profile, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42, ProfessionalID: 999})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
	assert.Nil(t, repo.created)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeFlowRepo{}, &fakeProfileClient{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 0, ProfessionalID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 42, ProfessionalID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
