package bookingservice

import "errors"

var (
	// ErrInvalidPayload возвращается, когда сервис отклонил данные бронирования
	ErrInvalidPayload = errors.New("bookingservice client: invalid booking payload")

	// ErrSlotConflict возвращается, когда слот уже занят на стороне backend
	ErrSlotConflict = errors.New("bookingservice client: slot already taken")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")
)
