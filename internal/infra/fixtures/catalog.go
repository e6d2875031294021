package fixtures

import (
	"context"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	"github.com/m04kA/HSM-BookingFlowService/pkg/ptr"
	"github.com/m04kA/HSM-BookingFlowService/pkg/types"
)

// Catalog поставщик офферов и сетки слотов из сид-данных
// Реализует те же контракты, что и profileservice клиент, и подключается
// через [catalog] use_fixtures, пока соответствующие ручки не готовы
type Catalog struct{}

// NewCatalog создает фикстурный каталог
func NewCatalog() *Catalog {
	return &Catalog{}
}

// GetOffers возвращает сид-набор офферов
func (c *Catalog) GetOffers(_ context.Context) ([]*domain.Offer, error) {
	return []*domain.Offer{
		{
			ID:             1,
			Code:           "FIRST50",
			Description:    "Flat ₹50 off on first booking",
			Conditions:     "Valid for new users only",
			DiscountAmount: ptr.Ptr(50.0),
		},
		{
			ID:              2,
			Code:            "SAVE10",
			Description:     "10% off on all services",
			Conditions:      "Maximum discount ₹100",
			DiscountPercent: ptr.Ptr(10.0),
			MaxSavings:      ptr.Ptr(100.0),
		},
	}, nil
}

// GetTimeSlots возвращает сетку слотов утро/день/вечер
func (c *Catalog) GetTimeSlots(_ context.Context) ([]domain.TimeSlotGroup, error) {
	return []domain.TimeSlotGroup{
		{
			Period: "morning",
			Slots:  slots("08:00", "09:00", "10:00", "11:00"),
		},
		{
			Period: "afternoon",
			Slots:  slots("12:00", "13:00", "14:00", "15:00", "16:00"),
		},
		{
			Period: "evening",
			Slots:  slots("17:00", "18:00", "19:00", "20:00"),
		},
	}, nil
}

func slots(values ...string) []types.TimeString {
	result := make([]types.TimeString, 0, len(values))
	for _, v := range values {
		result = append(result, types.TimeString(v))
	}
	return result
}
