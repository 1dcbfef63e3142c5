package main

import (
	"meta_helpdesk/config"
	"meta_helpdesk/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// InitRegistry đăng ký các collection MongoDB vào registry toàn cục.
// Các service lấy collection qua registry theo tên thay vì giữ tham chiếu trực tiếp.
func InitRegistry() {
	if err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig); err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections đăng ký các collection nghiệp vụ và 9 bảng danh mục.
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)

	colNames := []string{
		global.MongoDB_ColNames.Tickets,
		global.MongoDB_ColNames.Concerns,
		global.MongoDB_ColNames.Inbox,
		global.MongoDB_ColNames.Counters,
	}
	colNames = append(colNames, global.LookupCollectionNames()...)

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}
		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Warnf("Collection %s already registered", name)
		}
	}

	return nil
}
