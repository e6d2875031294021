package create_address

import (
	addrmodels "github.com/m04kA/HSM-BookingFlowService/internal/service/addresses/models"
)

// CreateAddressRequest HTTP request model
type CreateAddressRequest struct {
	Label     string `json:"label,omitempty"`
	HouseNo   string `json:"houseNo"`
	Area      string `json:"area"`
	Landmark  string `json:"landmark,omitempty"`
	City      string `json:"city"`
	State     string `json:"state,omitempty"`
	Pincode   string `json:"pincode"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateAddressRequest) ToServiceRequest(userID int64) *addrmodels.CreateAddressRequest {
	return &addrmodels.CreateAddressRequest{
		UserID:    userID,
		Label:     r.Label,
		HouseNo:   r.HouseNo,
		Area:      r.Area,
		Landmark:  r.Landmark,
		City:      r.City,
		State:     r.State,
		Pincode:   r.Pincode,
		IsDefault: r.IsDefault,
	}
}
