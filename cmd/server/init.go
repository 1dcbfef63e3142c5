package main

import (
	"context"

	"meta_helpdesk/config"
	"meta_helpdesk/internal/api/events"
	"meta_helpdesk/internal/database"
	"meta_helpdesk/internal/global"
	"meta_helpdesk/internal/logger"

	"github.com/sirupsen/logrus"
)

// InitGlobal khởi tạo các biến toàn cục theo thứ tự phụ thuộc:
// validator → config → MongoDB → indexes → audit subscriber.
func InitGlobal() {
	initValidator()
	initConfig()
	initDatabase_MongoDB()
	initAuditSubscriber()
}

// initValidator đăng ký các custom validator (no_xss, no_sql_injection, ticket_status).
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig đọc cấu hình server từ file env theo GO_ENV.
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB kết nối MongoDB và tạo index cho các collection helpdesk.
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	if err := database.CreateHelpdeskIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create indexes: %v", err)
	}
	logrus.Info("Ensured helpdesk indexes")
}

// initAuditSubscriber ghi một dòng audit log cho mỗi thay đổi dữ liệu qua base service.
func initAuditSubscriber() {
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		entry := logger.GetAuditLogger().WithFields(logrus.Fields{
			"collection": e.CollectionName,
			"operation":  e.Operation,
		})
		// Gắn định danh nghiệp vụ nếu document có
		for _, field := range []string{"TicketNumber", "ConcernNumber", "Name"} {
			if v := events.GetStringField(e.Document, field); v != "" {
				entry = entry.WithField("ref", v)
				break
			}
		}
		entry.Info("Data changed")
	})
	logrus.Info("Registered audit subscriber")
}
