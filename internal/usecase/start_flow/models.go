package start_flow

// Request данные для старта сессии бронирования
type Request struct {
	UserID         int64
	ProfessionalID int64
	// Опциональный предварительный выбор услуги
	ServiceID *int64
}
