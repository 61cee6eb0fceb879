package tools

import (
	"context"

	"go.uber.org/zap"
)

// StatusExecuted is the status reported for every accepted service call.
const StatusExecuted = "executed"

// ExecutionResult is the JSON body returned by vanta_execute_service.
// ServiceID is omitted, not null, when the caller did not send one.
type ExecutionResult struct {
	Status    string  `json:"status"`
	ServiceID *string `json:"service_id,omitempty"`
}

// Executor runs a VANTA service on behalf of vanta_execute_service.
type Executor interface {
	Execute(ctx context.Context, args ExecuteServiceArgs) (ExecutionResult, error)
}

// StubExecutor acknowledges every call without contacting the upstream API.
type StubExecutor struct {
	// Endpoint is the upstream project URL, recorded in logs only.
	Endpoint string
	Logger   *zap.Logger
}

// Execute implements Executor.
func (e *StubExecutor) Execute(ctx context.Context, args ExecuteServiceArgs) (ExecutionResult, error) {
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Debug("upstream call not performed",
		zap.Stringp("service_id", args.ServiceID),
		zap.String("endpoint", e.Endpoint),
		zap.Int("parameters", len(args.Parameters)),
	)

	return ExecutionResult{
		Status:    StatusExecuted,
		ServiceID: args.ServiceID,
	}, nil
}
