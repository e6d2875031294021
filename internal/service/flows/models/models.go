package models

import (
	"time"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	"github.com/m04kA/HSM-BookingFlowService/pkg/types"
)

// SetScheduleRequest данные шага 2: дата, слот, контакт, заметки
type SetScheduleRequest struct {
	UserID        int64
	Date          time.Time
	TimeSlot      types.TimeString
	ContactNumber string
	Notes         *string
}

// AddressView представление адреса в ответе
type AddressView struct {
	ID        int64  `json:"id"`
	Label     string `json:"label,omitempty"`
	HouseNo   string `json:"houseNo"`
	Area      string `json:"area"`
	Landmark  string `json:"landmark,omitempty"`
	City      string `json:"city"`
	State     string `json:"state,omitempty"`
	Pincode   string `json:"pincode"`
	IsDefault bool   `json:"isDefault"`
}

// PricingView производная стоимость в ответе
type PricingView struct {
	ServiceCost float64 `json:"serviceCost"`
	Discount    float64 `json:"discount"`
	PlatformFee float64 `json:"platformFee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// FlowResponse полное состояние сессии бронирования
type FlowResponse struct {
	ID          string `json:"id"`
	CurrentStep int    `json:"currentStep"`
	Status      string `json:"status"`

	ProfessionalID   int64    `json:"professionalId"`
	ProfessionalName string   `json:"professionalName"`
	ProfessionalRate *float64 `json:"professionalRate,omitempty"`

	ServiceID   *int64   `json:"serviceId,omitempty"`
	ServiceName *string  `json:"serviceName,omitempty"`
	ServicePrice *float64 `json:"servicePrice,omitempty"`

	Date          *string `json:"date,omitempty"`
	TimeSlot      *string `json:"timeSlot,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	Address *AddressView `json:"address,omitempty"`

	Availability string `json:"availability"`

	OfferID      *int64   `json:"offerId,omitempty"`
	OfferCode    *string  `json:"offerCode,omitempty"`
	OfferSavings *float64 `json:"offerSavings,omitempty"`

	PaymentMethod *string `json:"paymentMethod,omitempty"`
	BookingID     *string `json:"bookingId,omitempty"`

	Pricing PricingView `json:"pricing"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomainAddress конвертирует адрес в представление
func FromDomainAddress(addr *domain.Address) *AddressView {
	if addr == nil {
		return nil
	}
	return &AddressView{
		ID:        addr.ID,
		Label:     addr.Label,
		HouseNo:   addr.HouseNo,
		Area:      addr.Area,
		Landmark:  addr.Landmark,
		City:      addr.City,
		State:     addr.State,
		Pincode:   addr.Pincode,
		IsDefault: addr.IsDefault,
	}
}

// FromDomainPricing конвертирует стоимость в представление
func FromDomainPricing(p domain.Pricing) PricingView {
	return PricingView{
		ServiceCost: p.ServiceCost,
		Discount:    p.Discount,
		PlatformFee: p.PlatformFee,
		Tax:         p.Tax,
		Total:       p.Total,
	}
}

// FromDomainFlow конвертирует flow в ответ, досчитывая стоимость
func FromDomainFlow(f *domain.Flow) *FlowResponse {
	resp := &FlowResponse{
		ID:               f.ID,
		CurrentStep:      int(f.CurrentStep),
		Status:           string(f.Status),
		ProfessionalID:   f.ProfessionalID,
		ProfessionalName: f.ProfessionalName,
		ProfessionalRate: f.ProfessionalRate,
		ServiceID:        f.ServiceID,
		ServiceName:      f.ServiceName,
		ServicePrice:     f.ServicePrice,
		ContactNumber:    f.ContactNumber,
		Notes:            f.Notes,
		Address:          FromDomainAddress(f.Address),
		Availability:     string(f.Availability),
		OfferID:          f.OfferID,
		OfferCode:        f.OfferCode,
		OfferSavings:     f.OfferSavings,
		PaymentMethod:    f.PaymentMethod,
		BookingID:        f.BookingID,
		Pricing:          FromDomainPricing(f.Pricing()),
		CreatedAt:        f.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        f.UpdatedAt.Format(time.RFC3339),
	}

	if f.Date != nil {
		date := f.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	if !f.TimeSlot.IsZero() {
		slot := f.TimeSlot.String()
		resp.TimeSlot = &slot
	}

	return resp
}
