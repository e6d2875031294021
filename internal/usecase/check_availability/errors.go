package check_availability

import "errors"

var (
	// ErrFlowNotFound возвращается, когда сессия бронирования не найдена
	ErrFlowNotFound = errors.New("check_availability: flow not found")

	// ErrAccessDenied возвращается, когда flow принадлежит другому пользователю
	ErrAccessDenied = errors.New("check_availability: access denied")

	// ErrFlowNotEditable возвращается после начала отправки или подтверждения
	ErrFlowNotEditable = errors.New("check_availability: flow is not editable")

	// ErrScheduleIncomplete возвращается без заданных даты, слота и адреса
	ErrScheduleIncomplete = errors.New("check_availability: schedule is incomplete")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("check_availability: internal error")
)
