package start_flow

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("start_flow: invalid input data")

	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("start_flow: professional not found")

	// ErrServiceNotFound возвращается, когда предвыбранная услуга не найдена
	ErrServiceNotFound = errors.New("start_flow: service not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("start_flow: internal error")
)
