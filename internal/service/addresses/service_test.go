package addresses

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	flowRepo "github.com/m04kA/HSM-BookingFlowService/internal/infra/storage/flow"
	"github.com/m04kA/HSM-BookingFlowService/internal/integrations/userservice"
	"github.com/m04kA/HSM-BookingFlowService/internal/service/addresses/models"
	"github.com/m04kA/HSM-BookingFlowService/pkg/ptr"
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

type fakeUserClient struct {
	addresses []*domain.Address
	createErr error
	deleteErr error
	nextID    int64
	deleted   []int64
}

func (c *fakeUserClient) ListAddresses(_ context.Context, _ int64) ([]*domain.Address, error) {
	return c.addresses, nil
}

func (c *fakeUserClient) CreateAddress(_ context.Context, _ int64, data *userservice.AddressCreate) (*domain.Address, error) {
	if c.createErr != nil {
		return nil, c.createErr
	}
	c.nextID++
	created := &domain.Address{
		ID:        c.nextID,
		Label:     data.Label,
		HouseNo:   data.HouseNo,
		Area:      data.Area,
		Landmark:  data.Landmark,
		City:      data.City,
		State:     data.State,
		Pincode:   data.Pincode,
		IsDefault: data.IsDefault,
	}
	c.addresses = append(c.addresses, created)
	return created, nil
}

func (c *fakeUserClient) DeleteAddress(_ context.Context, _ int64, addressID int64) error {
	if c.deleteErr != nil {
		return c.deleteErr
	}
	c.deleted = append(c.deleted, addressID)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func draftFlow() *domain.Flow {
	return &domain.Flow{
		ID:               "c5f0a7d2-6d11-4f29-a3de-20f1b26c1404",
		UserID:           42,
		CurrentStep:      domain.StepSchedule,
		Status:           domain.FlowStatusDraft,
		ProfessionalID:   7,
		ProfessionalName: "Ravi Kumar",
		ServiceCount:     1,
		Availability:     domain.AvailabilityUnchecked,
	}
}

func savedAddresses() []*domain.Address {
	return []*domain.Address{
		{ID: 1, Label: "Home", HouseNo: "12A", Area: "MG Road", City: "Bangalore", Pincode: "560001", IsDefault: true},
		{ID: 2, Label: "Office", HouseNo: "7", Area: "HSR Layout", City: "Bangalore", Pincode: "560102"},
	}
}

func TestList_AutoSelectsDefault(t *testing.T) {
	repo := &fakeFlowRepo{flow: draftFlow()}
	client := &fakeUserClient{addresses: savedAddresses(), nextID: 2}
	svc := NewService(repo, client, noopLogger{})

	resp, err := svc.List(context.Background(), repo.flow.ID, 42)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	require.NotNil(t, resp.SelectedAddressID)
	assert.Equal(t, int64(1), *resp.SelectedAddressID)

	// Адрес по умолчанию снапшотится в flow
	require.NotNil(t, repo.flow.Address)
	assert.Equal(t, "560001", repo.flow.Address.Pincode)
}

func TestList_KeepsExplicitSelection(t *testing.T) {
	flow := draftFlow()
	flow.AddressID = ptr.Ptr(int64(2))
	flow.Address = &domain.Address{ID: 2, HouseNo: "7", Area: "HSR Layout", City: "Bangalore", Pincode: "560102"}
	repo := &fakeFlowRepo{flow: flow}
	client := &fakeUserClient{addresses: savedAddresses(), nextID: 2}
	svc := NewService(repo, client, noopLogger{})

	resp, err := svc.List(context.Background(), flow.ID, 42)
	require.NoError(t, err)

	require.NotNil(t, resp.SelectedAddressID)
	assert.Equal(t, int64(2), *resp.SelectedAddressID)
}

func TestCreate_SelectsNewAddress(t *testing.T) {
	repo := &fakeFlowRepo{flow: draftFlow()}
	client := &fakeUserClient{nextID: 10}
	svc := NewService(repo, client, noopLogger{})

	resp, err := svc.Create(context.Background(), repo.flow.ID, &models.CreateAddressRequest{
		UserID:  42,
		HouseNo: "3B",
		Area:    "Indiranagar",
		City:    "Bangalore",
		Pincode: "560038",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Address)
	assert.Equal(t, int64(11), resp.Address.ID)
	assert.Equal(t, "560038", resp.Address.Pincode)
}

func TestCreate_Validation(t *testing.T) {
	repo := &fakeFlowRepo{flow: draftFlow()}
	svc := NewService(repo, &fakeUserClient{}, noopLogger{})

	tests := []struct {
		name string
		req  models.CreateAddressRequest
	}{
		{"missing house_no", models.CreateAddressRequest{UserID: 42, Area: "A", City: "B", Pincode: "560001"}},
		{"missing area", models.CreateAddressRequest{UserID: 42, HouseNo: "1", City: "B", Pincode: "560001"}},
		{"missing city", models.CreateAddressRequest{UserID: 42, HouseNo: "1", Area: "A", Pincode: "560001"}},
		{"missing pincode", models.CreateAddressRequest{UserID: 42, HouseNo: "1", Area: "A", City: "B"}},
		{"short pincode", models.CreateAddressRequest{UserID: 42, HouseNo: "1", Area: "A", City: "B", Pincode: "5600"}},
		{"non-digit pincode", models.CreateAddressRequest{UserID: 42, HouseNo: "1", Area: "A", City: "B", Pincode: "56000a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := svc.Create(context.Background(), repo.flow.ID, &req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestSelect(t *testing.T) {
	repo := &fakeFlowRepo{flow: draftFlow()}
	client := &fakeUserClient{addresses: savedAddresses(), nextID: 2}
	svc := NewService(repo, client, noopLogger{})

	resp, err := svc.Select(context.Background(), repo.flow.ID, 42, 2)
	require.NoError(t, err)
	require.NotNil(t, resp.Address)
	assert.Equal(t, int64(2), resp.Address.ID)

	_, err = svc.Select(context.Background(), repo.flow.ID, 42, 99)
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestDelete_ClearsSelection(t *testing.T) {
	flow := draftFlow()
	flow.AddressID = ptr.Ptr(int64(1))
	flow.Address = &domain.Address{ID: 1, HouseNo: "12A", Area: "MG Road", City: "Bangalore", Pincode: "560001"}
	repo := &fakeFlowRepo{flow: flow}
	client := &fakeUserClient{addresses: savedAddresses(), nextID: 2}
	svc := NewService(repo, client, noopLogger{})

	resp, err := svc.Delete(context.Background(), flow.ID, 42, 1)
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, client.deleted)
	assert.Nil(t, resp.Address)
	assert.Nil(t, repo.flow.AddressID)
}

func TestDelete_UnselectedAddressKeepsSelection(t *testing.T) {
	flow := draftFlow()
	flow.AddressID = ptr.Ptr(int64(1))
	flow.Address = &domain.Address{ID: 1, HouseNo: "12A", Area: "MG Road", City: "Bangalore", Pincode: "560001"}
	repo := &fakeFlowRepo{flow: flow}
	client := &fakeUserClient{addresses: savedAddresses(), nextID: 2}
	svc := NewService(repo, client, noopLogger{})

	resp, err := svc.Delete(context.Background(), flow.ID, 42, 2)
	require.NoError(t, err)

	require.NotNil(t, resp.Address)
	assert.Equal(t, int64(1), resp.Address.ID)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeFlowRepo{flow: draftFlow()}
	client := &fakeUserClient{deleteErr: userservice.ErrAddressNotFound}
	svc := NewService(repo, client, noopLogger{})

	_, err := svc.Delete(context.Background(), repo.flow.ID, 42, 99)
	assert.ErrorIs(t, err, ErrAddressNotFound)
}
