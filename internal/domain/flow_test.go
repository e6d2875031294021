package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSM-BookingFlowService/pkg/ptr"
	"github.com/m04kA/HSM-BookingFlowService/pkg/types"
)

func newDraftFlow() *Flow {
	return &Flow{
		ID:               "0c8a26a1-9a5c-4de0-9b53-5f7e6b9f8f11",
		UserID:           42,
		CurrentStep:      StepProfessional,
		Status:           FlowStatusDraft,
		ProfessionalID:   7,
		ProfessionalName: "Ravi Kumar",
		ServiceCount:     3,
		Availability:     AvailabilityUnchecked,
	}
}

func mustSlot(t *testing.T, s string) types.TimeString {
	t.Helper()
	slot, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return slot
}

func TestStepValid_Professional(t *testing.T) {
	flow := newDraftFlow()

	// Услуга обязательна при нескольких услугах
	assert.False(t, flow.StepValid(StepProfessional))

	flow.SelectService(&Service{ID: 1, Name: "Haircut", Price: 400})
	assert.True(t, flow.StepValid(StepProfessional))

	// Единственная услуга не требует выбора
	single := newDraftFlow()
	single.ServiceCount = 1
	assert.True(t, single.StepValid(StepProfessional))
}

func TestStepValid_Schedule(t *testing.T) {
	flow := newDraftFlow()
	assert.False(t, flow.StepValid(StepSchedule))

	flow.SetSchedule(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), mustSlot(t, "10:00"), "9876543210")
	flow.SelectAddress(&Address{ID: 5, HouseNo: "12A", Area: "MG Road", City: "Bangalore", Pincode: "560001"})
	assert.False(t, flow.StepValid(StepSchedule), "availability is not confirmed yet")

	flow.Availability = AvailabilityAvailable
	assert.True(t, flow.StepValid(StepSchedule))
}

func TestSetSchedule_ResetsAvailabilityOnChange(t *testing.T) {
	flow := newDraftFlow()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	flow.SetSchedule(date, mustSlot(t, "10:00"), "9876543210")
	gen := flow.AvailabilityGeneration
	flow.Availability = AvailabilityAvailable

	// Повтор с теми же датой и слотом не трогает доступность
	flow.SetSchedule(date, mustSlot(t, "10:00"), "9123456780")
	assert.Equal(t, AvailabilityAvailable, flow.Availability)
	assert.Equal(t, gen, flow.AvailabilityGeneration)

	// Смена слота сбрасывает результат и двигает generation
	flow.SetSchedule(date, mustSlot(t, "11:00"), "9123456780")
	assert.Equal(t, AvailabilityUnchecked, flow.Availability)
	assert.Greater(t, flow.AvailabilityGeneration, gen)

	// Смена даты тоже
	flow.Availability = AvailabilityAvailable
	gen = flow.AvailabilityGeneration
	flow.SetSchedule(date.AddDate(0, 0, 1), mustSlot(t, "11:00"), "9123456780")
	assert.Equal(t, AvailabilityUnchecked, flow.Availability)
	assert.Greater(t, flow.AvailabilityGeneration, gen)
}

func TestBeginAvailabilityCheck_BumpsGeneration(t *testing.T) {
	flow := newDraftFlow()

	gen := flow.BeginAvailabilityCheck()
	assert.Equal(t, AvailabilityChecking, flow.Availability)
	assert.Equal(t, flow.AvailabilityGeneration, gen)

	// Правка расписания во время проверки инвалидирует её generation
	flow.SetSchedule(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), mustSlot(t, "10:00"), "9876543210")
	assert.Greater(t, flow.AvailabilityGeneration, gen)
}

func TestNavigationRules(t *testing.T) {
	flow := newDraftFlow()

	// С шага 1 назад нельзя
	assert.False(t, flow.CanGoBack())
	assert.True(t, flow.CanAdvance())

	flow.CurrentStep = StepPayment
	assert.True(t, flow.CanGoBack())
	// С шага 4 вперёд только через submit
	assert.False(t, flow.CanAdvance())

	flow.CurrentStep = StepConfirmed
	assert.False(t, flow.CanGoBack())
	assert.False(t, flow.CanAdvance())
}

func TestReadyToSubmitAndConfirm(t *testing.T) {
	flow := newDraftFlow()
	flow.SelectService(&Service{ID: 1, Name: "Haircut", Price: 400})
	flow.SetSchedule(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), mustSlot(t, "10:00"), "9876543210")
	flow.SelectAddress(&Address{ID: 5, HouseNo: "12A", Area: "MG Road", City: "Bangalore", Pincode: "560001"})
	flow.Availability = AvailabilityAvailable
	flow.SetPaymentMethod("upi")

	// Не на шаге оплаты
	flow.CurrentStep = StepOffers
	assert.False(t, flow.ReadyToSubmit())

	flow.CurrentStep = StepPayment
	assert.True(t, flow.ReadyToSubmit())

	flow.Confirm("bkg_123")
	assert.True(t, flow.IsConfirmed())
	assert.Equal(t, StepConfirmed, flow.CurrentStep)
	require.NotNil(t, flow.BookingID)
	assert.Equal(t, "bkg_123", *flow.BookingID)

	// Подтверждённый flow отправить повторно нельзя
	assert.False(t, flow.ReadyToSubmit())
}

func TestSelectAddress_Snapshot(t *testing.T) {
	flow := newDraftFlow()
	addr := &Address{ID: 5, HouseNo: "12A", Area: "MG Road", City: "Bangalore", Pincode: "560001"}

	flow.SelectAddress(addr)
	require.NotNil(t, flow.Address)

	// Снапшот не зависит от исходного объекта
	addr.City = "Mumbai"
	assert.Equal(t, "Bangalore", flow.Address.City)

	flow.ClearAddress()
	assert.Nil(t, flow.AddressID)
	assert.Nil(t, flow.Address)
}

func TestApplyOffer_SnapshotsSavings(t *testing.T) {
	flow := newDraftFlow()
	flow.SelectService(&Service{ID: 1, Name: "Deep Clean", Price: 800})

	flow.ApplyOffer(&Offer{ID: 2, Code: "SAVE10", DiscountPercent: ptr.Ptr(10.0), MaxSavings: ptr.Ptr(100.0)})
	require.NotNil(t, flow.OfferSavings)
	assert.Equal(t, 80.0, *flow.OfferSavings)
	require.NotNil(t, flow.OfferCode)
	assert.Equal(t, "SAVE10", *flow.OfferCode)
}

func TestIsValidPaymentMethod(t *testing.T) {
	for _, method := range PaymentMethods {
		assert.True(t, IsValidPaymentMethod(method))
	}
	assert.False(t, IsValidPaymentMethod("crypto"))
	assert.False(t, IsValidPaymentMethod(""))
}
