package bookingservice

// AddressSnapshot снапшот адреса в платеже бронирования
type AddressSnapshot struct {
	Label    string `json:"label,omitempty"`
	HouseNo  string `json:"house_no"`
	Area     string `json:"area"`
	Landmark string `json:"landmark,omitempty"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	Pincode  string `json:"pincode"`
}

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	UserID         int64           `json:"user_id"`
	ProfessionalID int64           `json:"professional_id"`
	ServiceID      *int64          `json:"service_id,omitempty"`
	ServiceName    *string         `json:"service_name,omitempty"`
	ScheduledDate  string          `json:"scheduled_date"` // YYYY-MM-DD
	ScheduledTime  string          `json:"scheduled_time"` // HH:MM
	Address        AddressSnapshot `json:"address"`
	ContactNumber  string          `json:"contact_number"`
	Price          float64         `json:"price"`
	PaymentMethod  string          `json:"payment_method"`
	Notes          *string         `json:"notes,omitempty"`
}

// Booking созданное бронирование из BookingService
type Booking struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// CreateBookingResponse ответ на создание бронирования
type CreateBookingResponse struct {
	Message string  `json:"message"`
	Booking Booking `json:"booking"`
}

// ErrorResponse модель ошибки от BookingService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
