package userservice

import "errors"

var (
	// ErrTokenInvalid возвращается, когда session token отсутствует или просрочен
	ErrTokenInvalid = errors.New("userservice client: session token invalid")

	// ErrAddressNotFound возвращается, когда адрес не найден
	ErrAddressNotFound = errors.New("userservice client: address not found")

	// ErrValidation возвращается, когда сервис отклонил данные адреса
	ErrValidation = errors.New("userservice client: address validation failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userservice client: invalid response")
)
