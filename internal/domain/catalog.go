package domain

import "github.com/m04kA/HSM-BookingFlowService/pkg/types"

// PriceType тип ценообразования услуги
type PriceType string

const (
	PriceTypeFlat   PriceType = "flat"
	PriceTypeHourly PriceType = "hourly"
)

// Professional публичный профиль профессионала
// Read-only, загружается один раз при старте flow
type Professional struct {
	ID                 int64
	Name               string
	Category           string
	HourlyRate         *float64
	Rating             float64
	IsVerified         bool
	EmergencyAvailable bool
}

// Service услуга профессионала
// Неизменяема после загрузки; выбрана может быть максимум одна
type Service struct {
	ID              int64
	Name            string
	Category        string
	Price           float64
	PriceType       PriceType
	DurationMinutes int
	Rating          float64
	Features        []string
}

// Offer скидочное предложение
// Либо фиксированная скидка (DiscountAmount), либо процентная
// (DiscountPercent) с потолком MaxSavings
type Offer struct {
	ID              int64
	Code            string
	Description     string
	Conditions      string
	DiscountAmount  *float64
	DiscountPercent *float64
	MaxSavings      *float64
}

// Savings возвращает размер экономии для указанной стоимости услуги
// Процентные скидки ограничиваются MaxSavings, если он задан
func (o *Offer) Savings(serviceCost float64) float64 {
	if o.DiscountAmount != nil {
		return *o.DiscountAmount
	}

	if o.DiscountPercent != nil {
		savings := serviceCost * *o.DiscountPercent / 100
		if o.MaxSavings != nil && savings > *o.MaxSavings {
			savings = *o.MaxSavings
		}
		return savings
	}

	return 0
}

// Address сохранённый адрес пользователя
type Address struct {
	ID        int64
	Label     string
	HouseNo   string
	Area      string
	Landmark  string
	City      string
	State     string
	Pincode   string
	IsDefault bool
}

// TimeSlotGroup группа временных слотов (утро/день/вечер)
type TimeSlotGroup struct {
	Period string
	Slots  []types.TimeString
}
