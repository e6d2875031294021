package submit_booking

import "errors"

var (
	// ErrFlowNotFound возвращается, когда сессия бронирования не найдена
	ErrFlowNotFound = errors.New("submit_booking: flow not found")

	// ErrAccessDenied возвращается, когда flow принадлежит другому пользователю
	ErrAccessDenied = errors.New("submit_booking: access denied")

	// ErrSubmissionInFlight возвращается при повторной отправке во время первой
	ErrSubmissionInFlight = errors.New("submit_booking: submission already in flight")

	// ErrAlreadyConfirmed возвращается, когда бронирование уже создано
	ErrAlreadyConfirmed = errors.New("submit_booking: booking already confirmed")

	// ErrNotReady возвращается, когда не выполнены предусловия отправки
	ErrNotReady = errors.New("submit_booking: flow is not ready for submission")

	// ErrSlotConflict возвращается, когда BookingService отклонил слот как занятый
	ErrSlotConflict = errors.New("submit_booking: slot conflict")

	// ErrSubmissionFailed возвращается при ошибке создания бронирования
	// Flow возвращается в draft на шаге оплаты, отправку можно повторить
	ErrSubmissionFailed = errors.New("submit_booking: submission failed")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("submit_booking: internal error")
)
