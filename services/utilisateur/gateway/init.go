package gateway

import (
	nsqpkg "github.com/transportconnect/transportconnect/internal/pkg/nsq"
)

// UtilisateurGW publishes account events to NSQ
type UtilisateurGW struct {
	producer *nsqpkg.Producer
}

// NewUtilisateurGW creates a new account gateway instance
func NewUtilisateurGW(producer *nsqpkg.Producer) *UtilisateurGW {
	return &UtilisateurGW{producer: producer}
}
