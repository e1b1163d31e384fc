package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"

	"github.com/gofiber/fiber/v3"

	"github.com/atendimentojatv-stack/firetvGESTOR/internal/global"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/logger"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/worker"
)

// initLogger inicializa o logger da aplicação
func initLogger() {
	// O logger lê as variáveis de ambiente para se configurar
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread inicializa e roda o servidor Fiber
func main_thread() {
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.Info("Starting Fiber server...")

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		if _, err := os.Stat(cfg.TLSCertFile); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s", cfg.TLSCertFile)
		}
		if _, err := os.Stat(cfg.TLSKeyFile); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s", cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    cfg.TLSCertFile,
		}).Info("Starting server with HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

func main() {
	initLogger()

	// Variáveis globais: config, validator, conexão e índices
	InitGlobal()

	// Registry das collections
	InitRegistry()

	// Dados do primeiro boot (conta CEO)
	InitDefaultData()

	// Worker de despacho da fila do bot (background)
	log := logger.GetAppLogger()
	dispatcher, err := worker.NewMessageDispatchWorker()
	if err != nil {
		log.WithError(err).Error("Failed to create message dispatch worker, continuing without dispatcher")
	} else {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(map[string]interface{}{
						"panic": r,
					}).Error("📨 [MESSAGE_DISPATCH] Worker goroutine panic")
				}
			}()

			dispatcher.Start(ctx)
		}()
	}

	// Servidor Fiber na thread principal
	main_thread()
}
