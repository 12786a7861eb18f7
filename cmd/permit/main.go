package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"permit/internal/config"
	"permit/internal/console"
	"permit/internal/logger"
	"permit/internal/service"
)

func main() {
	zl, err := logger.New()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	cfg := config.Default()
	receipts := service.NewReceiptService(cfg)
	session := console.NewSession(os.Stdin, os.Stdout, receipts, zl)

	if err := session.Run(); err != nil {
		zl.Fatal("Session terminated", zap.Error(err))
	}
}
