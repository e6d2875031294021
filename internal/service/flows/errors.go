package flows

import "errors"

var (
	// ErrFlowNotFound возвращается, когда сессия бронирования не найдена
	ErrFlowNotFound = errors.New("flows service: flow not found")

	// ErrAccessDenied возвращается, когда flow принадлежит другому пользователю
	ErrAccessDenied = errors.New("flows service: access denied")

	// ErrFlowNotEditable возвращается при попытке изменить flow после отправки
	ErrFlowNotEditable = errors.New("flows service: flow is not editable")

	// ErrServiceNotFound возвращается, когда услуга не найдена у профессионала
	ErrServiceNotFound = errors.New("flows service: service not found")

	// ErrOfferNotFound возвращается, когда оффер не найден
	ErrOfferNotFound = errors.New("flows service: offer not found")

	// ErrInvalidTimeSlot возвращается, когда слот отсутствует в сетке слотов
	ErrInvalidTimeSlot = errors.New("flows service: time slot is not in the slot grid")

	// ErrCannotGoBack возвращается, когда переход назад с текущего шага запрещён
	ErrCannotGoBack = errors.New("flows service: cannot go back from this step")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("flows service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("flows service: internal error")
)
