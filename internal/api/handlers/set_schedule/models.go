package set_schedule

import (
	"time"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	flowmodels "github.com/m04kA/HSM-BookingFlowService/internal/service/flows/models"
	"github.com/m04kA/HSM-BookingFlowService/pkg/types"
)

// SetScheduleRequest HTTP request model
type SetScheduleRequest struct {
	Date          string  `json:"date"`     // "2026-03-15"
	TimeSlot      string  `json:"timeSlot"` // "10:00"
	ContactNumber string  `json:"contactNumber"`
	Notes         *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом даты и слота)
func (r *SetScheduleRequest) ToServiceRequest(userID int64) (*flowmodels.SetScheduleRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &flowmodels.SetScheduleRequest{
		UserID:        userID,
		Date:          date,
		TimeSlot:      slot,
		ContactNumber: r.ContactNumber,
		Notes:         r.Notes,
	}, nil
}
