package flow

import "errors"

var (
	// ErrFlowNotFound возвращается, когда сессия бронирования не найдена
	ErrFlowNotFound = errors.New("flow.repository: flow not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("flow.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("flow.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("flow.repository: failed to scan row")
)
