package addresses

import "errors"

var (
	// ErrFlowNotFound возвращается, когда сессия бронирования не найдена
	ErrFlowNotFound = errors.New("addresses service: flow not found")

	// ErrAccessDenied возвращается, когда flow принадлежит другому пользователю
	ErrAccessDenied = errors.New("addresses service: access denied")

	// ErrFlowNotEditable возвращается при попытке изменить flow после отправки
	ErrFlowNotEditable = errors.New("addresses service: flow is not editable")

	// ErrAddressNotFound возвращается, когда адрес не найден
	ErrAddressNotFound = errors.New("addresses service: address not found")

	// ErrValidation возвращается при некорректных данных адреса
	ErrValidation = errors.New("addresses service: validation failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("addresses service: internal error")
)
