package start_flow

import (
	"context"

	flowmodels "github.com/m04kA/HSM-BookingFlowService/internal/service/flows/models"
	startFlow "github.com/m04kA/HSM-BookingFlowService/internal/usecase/start_flow"
)

type StartFlowUseCase interface {
	Execute(ctx context.Context, req *startFlow.Request) (*flowmodels.FlowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
