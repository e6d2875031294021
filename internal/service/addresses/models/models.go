package models

import (
	flowmodels "github.com/m04kA/HSM-BookingFlowService/internal/service/flows/models"
)

// CreateAddressRequest данные для создания нового адреса
type CreateAddressRequest struct {
	UserID    int64
	Label     string
	HouseNo   string
	Area      string
	Landmark  string
	City      string
	State     string
	Pincode   string
	IsDefault bool
}

// ListAddressesResponse список адресов с текущим выбранным адресом
type ListAddressesResponse struct {
	Addresses         []flowmodels.AddressView `json:"addresses"`
	Total             int                      `json:"total"`
	SelectedAddressID *int64                   `json:"selectedAddressId,omitempty"`
}
