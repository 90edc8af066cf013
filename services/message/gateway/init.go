package gateway

import (
	nsqpkg "github.com/transportconnect/transportconnect/internal/pkg/nsq"
)

// MessageGW publishes chat events to NSQ
type MessageGW struct {
	producer *nsqpkg.Producer
}

// NewMessageGW creates a new chat gateway instance
func NewMessageGW(producer *nsqpkg.Producer) *MessageGW {
	return &MessageGW{producer: producer}
}
