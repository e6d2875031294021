package userservice

import "github.com/m04kA/HSM-BookingFlowService/internal/domain"

// Session данные активной сессии пользователя
type Session struct {
	UserID int64 `json:"user_id"`
}

// Address сохранённый адрес пользователя из UserService
type Address struct {
	ID        int64  `json:"id"`
	Label     string `json:"label,omitempty"`
	HouseNo   string `json:"house_no"`
	Area      string `json:"area"`
	Landmark  string `json:"landmark,omitempty"`
	City      string `json:"city"`
	State     string `json:"state,omitempty"`
	Pincode   string `json:"pincode"`
	IsDefault bool   `json:"is_default"`
}

// ToDomain конвертирует адрес в доменную модель
func (a *Address) ToDomain() *domain.Address {
	return &domain.Address{
		ID:        a.ID,
		Label:     a.Label,
		HouseNo:   a.HouseNo,
		Area:      a.Area,
		Landmark:  a.Landmark,
		City:      a.City,
		State:     a.State,
		Pincode:   a.Pincode,
		IsDefault: a.IsDefault,
	}
}

// AddressCreate данные для создания адреса
type AddressCreate struct {
	Label     string `json:"label,omitempty"`
	HouseNo   string `json:"house_no"`
	Area      string `json:"area"`
	Landmark  string `json:"landmark,omitempty"`
	City      string `json:"city"`
	State     string `json:"state,omitempty"`
	Pincode   string `json:"pincode"`
	IsDefault bool   `json:"is_default"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
