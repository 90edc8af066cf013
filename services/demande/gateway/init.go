package gateway

import (
	nsqpkg "github.com/transportconnect/transportconnect/internal/pkg/nsq"
)

// DemandeGW publishes transport request events to NSQ
type DemandeGW struct {
	producer *nsqpkg.Producer
}

// NewDemandeGW creates a new transport request gateway instance
func NewDemandeGW(producer *nsqpkg.Producer) *DemandeGW {
	return &DemandeGW{producer: producer}
}
