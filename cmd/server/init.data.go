package main

import (
	"context"

	basesvc "meta_helpdesk/internal/api/base/service"
	lookupmodels "meta_helpdesk/internal/api/lookup/models"
	"meta_helpdesk/internal/global"
	"meta_helpdesk/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// InitDefaultData seed 3 trạng thái xử lý mặc định vào lookup_statuses.
// Các mục này mang IsSystem = true nên không thể bị sửa/xóa qua API.
// Idempotent: chạy lại không tạo trùng.
func InitDefaultData() {
	log := logger.GetAppLogger()

	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Statuses)
	if !exist {
		log.Fatalf("Collection %s chưa được đăng ký", global.MongoDB_ColNames.Statuses)
	}
	statusService := basesvc.NewBaseServiceMongo[lookupmodels.LookupItem](coll)

	ctx := basesvc.WithSystemDataInsertAllowed(context.Background())
	for _, name := range []string{global.StatusPending, global.StatusOngoing, global.StatusFinished} {
		exists, err := statusService.DocumentExists(ctx, bson.M{"name": name})
		if err != nil {
			log.Fatalf("Không kiểm tra được trạng thái mặc định %s: %v", name, err)
		}
		if exists {
			continue
		}
		if _, err := statusService.InsertOne(ctx, lookupmodels.LookupItem{
			Name:     name,
			IsSystem: true,
		}); err != nil {
			log.Fatalf("Không seed được trạng thái mặc định %s: %v", name, err)
		}
		log.Infof("Seeded default status: %s", name)
	}
}
