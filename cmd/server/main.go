package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"meta_helpdesk/internal/database"
	"meta_helpdesk/internal/global"
	"meta_helpdesk/internal/logger"
	"meta_helpdesk/internal/notifier"
	"meta_helpdesk/internal/worker"
)

// initLogger khởi tạo logger cho toàn bộ ứng dụng.
// Logger tự đọc environment variables để cấu hình (level, rotation, ...).
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server, block cho đến khi server dừng.
func main_thread(app *fiber.App) {
	cfg := global.MongoDB_ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.Info("Starting Fiber server...")

	// Resolve đường dẫn tương đối từ thư mục gốc dự án (nơi có config/env)
	resolvePath := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		currentDir, err := os.Getwd()
		if err != nil {
			return path
		}
		for {
			envDir := filepath.Join(currentDir, "config", "env")
			if _, err := os.Stat(envDir); err == nil {
				return filepath.Join(currentDir, path)
			}
			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				return path
			}
			currentDir = parentDir
		}
	}

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s (resolved from: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s (resolved from: %s)", keyPath, cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
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
			"cert":    certPath,
			"key":     keyPath,
		}).Info("Starting server with HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		if err := app.Listen(address, fiber.ListenConfig{DisableStartupMessage: false}); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

func main() {
	initLogger()
	InitGlobal()
	InitRegistry()
	InitDefaultData()

	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	// Email notifier cho workflow convert (tắt khi thiếu SMTP config)
	emailNotifier := notifier.NewEmailNotifier(cfg)

	// Worker dọn inbox chạy nền, dừng qua context khi shutdown
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	cleanupWorker, err := worker.NewInboxCleanupWorker(
		time.Duration(cfg.InboxCleanupMinutes)*time.Minute,
		cfg.InboxRetentionDays,
	)
	if err != nil {
		log.WithError(err).Error("Failed to create inbox cleanup worker, continuing without it")
	} else {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(map[string]interface{}{
						"panic": r,
					}).Error("🧹 [INBOX_CLEANUP] Worker goroutine panic")
				}
			}()
			cleanupWorker.Start(workerCtx)
		}()
	}

	app := InitFiberApp(emailNotifier)

	// Graceful shutdown: SIGINT/SIGTERM → dừng worker, shutdown Fiber, đóng Mongo
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh

		log.Infof("Received signal %s, shutting down...", sig)
		cancelWorkers()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.WithError(err).Error("Error during server shutdown")
		}

		if err := database.CloseInstance(global.MongoDB_Session); err != nil {
			log.WithError(err).Error("Error closing MongoDB connection")
		}
	}()

	// Chạy Fiber server trên main thread
	main_thread(app)

	log.Info("Server stopped")
}
