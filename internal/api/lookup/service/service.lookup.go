// Package lookupsvc - Service cho các bảng danh mục dùng chung một model.
// Một instance phục vụ một collection (lookup_departments, lookup_sites, ...).
package lookupsvc

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	basesvc "meta_helpdesk/internal/api/base/service"
	"meta_helpdesk/internal/api/events"
	lookupmodels "meta_helpdesk/internal/api/lookup/models"
	"meta_helpdesk/internal/common"
	"meta_helpdesk/internal/global"
	"meta_helpdesk/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// listCache cache kết quả List theo tên collection. Danh mục đọc nhiều ghi ít
// nên cache cả danh sách. Các mutation của service này xóa cache đồng bộ
// trước khi trả về (đảm bảo list() sau khi ghi thấy dữ liệu mới); event
// handler chạy async chỉ phủ các đường ghi khác (seed, CRUD admin).
var (
	listCache     *utility.Cache
	listCacheOnce sync.Once
)

func getListCache() *utility.Cache {
	listCacheOnce.Do(func() {
		listCache = utility.NewCache(10 * time.Minute)
		events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
			listCache.Delete(e.CollectionName)
		})
	})
	return listCache
}

// LookupService xử lý CRUD cho một bảng danh mục.
type LookupService struct {
	*basesvc.BaseServiceMongoImpl[lookupmodels.LookupItem]
	collectionName string
}

// NewLookupService tạo LookupService cho collection danh mục có tên cho trước.
func NewLookupService(collectionName string) (*LookupService, error) {
	coll, exist := global.RegistryCollections.Get(collectionName)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", collectionName, common.ErrNotFound)
	}
	return &LookupService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[lookupmodels.LookupItem](coll),
		collectionName:       collectionName,
	}, nil
}

// List trả về toàn bộ danh mục, sắp xếp theo tên tăng dần. Có cache.
// Ghi cache qua version: nếu collection bị invalidate trong lúc query
// thì kết quả cũ không được cache lại.
func (s *LookupService) List(ctx context.Context) ([]lookupmodels.LookupItem, error) {
	cache := getListCache()
	if cached, ok := cache.Get(s.collectionName); ok {
		if items, ok := cached.([]lookupmodels.LookupItem); ok {
			return items, nil
		}
	}

	version := cache.Version(s.collectionName)
	opts := mongoopts.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	items, err := s.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	cache.SetIfUnchanged(s.collectionName, items, version)
	return items, nil
}

// Create thêm một mục danh mục mới. Tên được trim trước khi lưu;
// tên rỗng hoặc trùng (sau trim) bị từ chối.
func (s *LookupService) Create(ctx context.Context, name string) (*lookupmodels.LookupItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.NewError(common.ErrCodeValidationInput, "Tên danh mục không được để trống", common.StatusBadRequest, nil)
	}

	if err := s.checkDuplicateName(ctx, name, primitive.NilObjectID); err != nil {
		return nil, err
	}

	item, err := s.InsertOne(ctx, lookupmodels.LookupItem{Name: name})
	if err != nil {
		return nil, err
	}
	getListCache().Delete(s.collectionName)
	return &item, nil
}

// Rename đổi tên một mục danh mục. Đổi sang chính tên hiện tại là no-op hợp lệ;
// đổi sang tên đang thuộc về mục khác bị từ chối.
func (s *LookupService) Rename(ctx context.Context, id primitive.ObjectID, name string) (*lookupmodels.LookupItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.NewError(common.ErrCodeValidationInput, "Tên danh mục không được để trống", common.StatusBadRequest, nil)
	}

	if err := s.checkDuplicateName(ctx, name, id); err != nil {
		return nil, err
	}

	item, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"name": name},
	})
	if err != nil {
		return nil, err
	}
	getListCache().Delete(s.collectionName)
	return &item, nil
}

// Delete xóa một mục danh mục theo ID.
// Không kiểm tra tham chiếu từ tickets/concerns: phiếu cũ giữ nguyên tên dạng chuỗi.
func (s *LookupService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.DeleteById(ctx, id); err != nil {
		return err
	}
	getListCache().Delete(s.collectionName)
	return nil
}

// checkDuplicateName kiểm tra tên đã thuộc về một mục khác excludeID chưa.
// So sánh chính xác trên tên đã trim (case-preserving).
func (s *LookupService) checkDuplicateName(ctx context.Context, name string, excludeID primitive.ObjectID) error {
	filter := bson.M{"name": name}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	exists, err := s.DocumentExists(ctx, filter)
	if err != nil {
		return err
	}
	if exists {
		return common.NewError(
			common.ErrCodeDatabaseQuery,
			fmt.Sprintf("Tên '%s' đã tồn tại trong danh mục", name),
			common.StatusConflict,
			nil,
		)
	}
	return nil
}
