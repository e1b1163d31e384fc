package main

import (
	"context"

	authsvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/service"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/global"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/logger"
)

// InitDefaultData garante os dados mínimos do primeiro boot.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}

	// Conta CEO reservada: criada só se não existir, nunca sobrescrita
	if err := userService.EnsureBootstrapCEO(context.TODO(), global.MongoDB_ServerConfig); err != nil {
		log.Fatalf("Failed to ensure bootstrap CEO account: %v", err)
	}
	log.Info("✅ [INIT] Bootstrap CEO account ensured")
}
