package gateway

import (
	nsqpkg "github.com/transportconnect/transportconnect/internal/pkg/nsq"
)

// EvaluationGW publishes rating events to NSQ
type EvaluationGW struct {
	producer *nsqpkg.Producer
}

// NewEvaluationGW creates a new rating gateway instance
func NewEvaluationGW(producer *nsqpkg.Producer) *EvaluationGW {
	return &EvaluationGW{producer: producer}
}
