package check_availability

import (
	flowmodels "github.com/m04kA/HSM-BookingFlowService/internal/service/flows/models"
)

// Response результат проверки доступности
// Applied=false означает, что расписание изменилось во время проверки
// и результат был отброшен как устаревший
type Response struct {
	Available bool                     `json:"available"`
	Applied   bool                     `json:"applied"`
	Flow      *flowmodels.FlowResponse `json:"flow"`
}
