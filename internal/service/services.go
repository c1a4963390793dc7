package service

import (
	"github.com/MKhiriev/appybrain-client/internal/adapter"
	"github.com/MKhiriev/appybrain-client/internal/config"
	"github.com/MKhiriev/appybrain-client/internal/logger"
)

type Services struct {
	AuthService  AuthService
	SessionWatch SessionWatchJob
}

func NewServices(client adapter.SessionClient, cfg config.Workers, onInvalidated func(), log *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(client, log),
		SessionWatch: NewSessionWatchJob(client, cfg.SessionCheckInterval, onInvalidated, log),
	}
}
