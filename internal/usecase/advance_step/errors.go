package advance_step

import "errors"

var (
	// ErrFlowNotFound возвращается, когда сессия бронирования не найдена
	ErrFlowNotFound = errors.New("advance_step: flow not found")

	// ErrAccessDenied возвращается, когда flow принадлежит другому пользователю
	ErrAccessDenied = errors.New("advance_step: access denied")

	// ErrFlowNotEditable возвращается после начала отправки или подтверждения
	ErrFlowNotEditable = errors.New("advance_step: flow is not editable")

	// ErrCannotAdvance возвращается, когда переход вперёд с шага невозможен
	ErrCannotAdvance = errors.New("advance_step: cannot advance from this step")

	// ErrStepIncomplete возвращается, когда предикат валидности шага не выполнен
	ErrStepIncomplete = errors.New("advance_step: current step is incomplete")

	// ErrAvailabilityNotConfirmed возвращается на шаге 2 без подтверждённой доступности
	ErrAvailabilityNotConfirmed = errors.New("advance_step: slot availability is not confirmed")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("advance_step: internal error")
)
