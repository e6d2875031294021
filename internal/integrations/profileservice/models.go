package profileservice

import (
	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	"github.com/m04kA/HSM-BookingFlowService/pkg/types"
)

// Professional публичный профиль профессионала из ProfileService
type Professional struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Category           string   `json:"category"`
	HourlyRate         *float64 `json:"hourly_rate,omitempty"`
	Rating             float64  `json:"rating"`
	IsVerified         bool     `json:"is_verified"`
	EmergencyAvailable bool     `json:"emergency_available"`
}

// ToDomain конвертирует профиль в доменную модель
func (p *Professional) ToDomain() *domain.Professional {
	return &domain.Professional{
		ID:                 p.ID,
		Name:               p.Name,
		Category:           p.Category,
		HourlyRate:         p.HourlyRate,
		Rating:             p.Rating,
		IsVerified:         p.IsVerified,
		EmergencyAvailable: p.EmergencyAvailable,
	}
}

// Service услуга профессионала из ProfileService
type Service struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Price           float64  `json:"price"`
	PriceType       string   `json:"price_type"` // flat | hourly
	DurationMinutes int      `json:"duration_minutes"`
	Rating          float64  `json:"rating"`
	Features        []string `json:"features,omitempty"`
}

// ToDomain конвертирует услугу в доменную модель
func (s *Service) ToDomain() *domain.Service {
	return &domain.Service{
		ID:              s.ID,
		Name:            s.Name,
		Category:        s.Category,
		Price:           s.Price,
		PriceType:       domain.PriceType(s.PriceType),
		DurationMinutes: s.DurationMinutes,
		Rating:          s.Rating,
		Features:        s.Features,
	}
}

// Offer скидочное предложение из ProfileService
type Offer struct {
	ID              int64    `json:"id"`
	Code            string   `json:"code"`
	Description     string   `json:"description"`
	Conditions      string   `json:"conditions"`
	DiscountAmount  *float64 `json:"discount_amount,omitempty"`
	DiscountPercent *float64 `json:"discount_percent,omitempty"`
	MaxSavings      *float64 `json:"max_savings,omitempty"`
}

// ToDomain конвертирует оффер в доменную модель
func (o *Offer) ToDomain() *domain.Offer {
	return &domain.Offer{
		ID:              o.ID,
		Code:            o.Code,
		Description:     o.Description,
		Conditions:      o.Conditions,
		DiscountAmount:  o.DiscountAmount,
		DiscountPercent: o.DiscountPercent,
		MaxSavings:      o.MaxSavings,
	}
}

// availabilityRequest запрос проверки доступности слота
type availabilityRequest struct {
	Date     string `json:"date"`      // YYYY-MM-DD
	TimeSlot string `json:"time_slot"` // HH:MM
	Pincode  string `json:"pincode"`
}

// availabilityResponse ответ проверки доступности
type availabilityResponse struct {
	Available bool `json:"available"`
}

// timeSlotGroup группа слотов из ProfileService
type timeSlotGroup struct {
	Period string   `json:"period"`
	Slots  []string `json:"slots"`
}

func (g *timeSlotGroup) toDomain() (domain.TimeSlotGroup, error) {
	slots := make([]types.TimeString, 0, len(g.Slots))
	for _, s := range g.Slots {
		ts, err := types.NewTimeStringFromString(s)
		if err != nil {
			return domain.TimeSlotGroup{}, err
		}
		slots = append(slots, ts)
	}
	return domain.TimeSlotGroup{Period: g.Period, Slots: slots}, nil
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
