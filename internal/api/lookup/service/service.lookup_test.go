// Package lookupsvc - Test chống trùng tên và đổi tên danh mục.
package lookupsvc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	basesvc "meta_helpdesk/internal/api/base/service"
	lookupmodels "meta_helpdesk/internal/api/lookup/models"
	"meta_helpdesk/internal/common"
	"meta_helpdesk/internal/global"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// setupLookupService kết nối MongoDB test và tạo service trên một collection
// riêng cho mỗi lần chạy. Skip khi không có MONGODB_TEST_URI.
func setupLookupService(t *testing.T) *LookupService {
	t.Helper()

	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("bỏ qua: cần MONGODB_TEST_URI trỏ tới MongoDB test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, mongoopts.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	collName := fmt.Sprintf("lookup_test_%d", time.Now().UnixNano())
	coll := client.Database("meta_helpdesk_test").Collection(collName)
	t.Cleanup(func() {
		_ = coll.Drop(context.Background())
	})
	global.RegistryCollections.Register(collName, coll)

	return &LookupService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[lookupmodels.LookupItem](coll),
		collectionName:       collName,
	}
}

func isConflict(err error) bool {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return customErr.StatusCode == common.StatusConflict
	}
	return false
}

func TestCreate_TrimsName(t *testing.T) {
	svc := setupLookupService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, "  HR  ")
	require.NoError(t, err)
	assert.Equal(t, "HR", item.Name, "tên phải được trim trước khi lưu")
}

func TestCreate_EmptyNameRejected(t *testing.T) {
	svc := setupLookupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "   ")
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.StatusBadRequest, customErr.StatusCode)
}

func TestCreate_DuplicateNameRejected(t *testing.T) {
	svc := setupLookupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "HR")
	require.NoError(t, err, "lần tạo đầu tiên phải thành công")

	// Trùng chính xác
	_, err = svc.Create(ctx, "HR")
	require.Error(t, err)
	assert.True(t, isConflict(err), "tạo trùng tên phải trả về 409, nhận: %v", err)

	// Trùng sau khi trim khoảng trắng
	_, err = svc.Create(ctx, "  HR ")
	require.Error(t, err)
	assert.True(t, isConflict(err), "trùng tên sau trim phải trả về 409, nhận: %v", err)
}

func TestRename_PreservesUniqueness(t *testing.T) {
	svc := setupLookupService(t)
	ctx := context.Background()

	itemA, err := svc.Create(ctx, "Hardware")
	require.NoError(t, err)
	itemB, err := svc.Create(ctx, "Software")
	require.NoError(t, err)

	// Đổi sang tên đang thuộc về mục khác → 409
	_, err = svc.Rename(ctx, itemA.ID, "Software")
	require.Error(t, err)
	assert.True(t, isConflict(err), "đổi sang tên của mục khác phải trả về 409, nhận: %v", err)

	// Đổi sang chính tên hiện tại → no-op hợp lệ
	renamed, err := svc.Rename(ctx, itemB.ID, "Software")
	require.NoError(t, err, "đổi sang chính tên hiện tại phải thành công")
	assert.Equal(t, "Software", renamed.Name)

	// Đổi sang tên mới chưa ai dùng
	renamed, err = svc.Rename(ctx, itemA.ID, "Network")
	require.NoError(t, err)
	assert.Equal(t, "Network", renamed.Name)
}

func TestRename_NotFound(t *testing.T) {
	svc := setupLookupService(t)
	ctx := context.Background()

	_, err := svc.Rename(ctx, [12]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, "Ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	svc := setupLookupService(t)
	ctx := context.Background()

	err := svc.Delete(ctx, [12]byte{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

// List sau mỗi mutation phải thấy ngay dữ liệu mới (không phục vụ cache cũ):
// cache được xóa đồng bộ trong đường ghi, không chờ event handler async.
func TestList_SeesOwnWrites(t *testing.T) {
	svc := setupLookupService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "Hardware")
	require.NoError(t, err)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Tạo mới ngay sau List: danh sách đã cache phải bị loại bỏ
	_, err = svc.Create(ctx, "Software")
	require.NoError(t, err)

	items, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2, "List sau Create phải thấy mục mới")

	// Xóa ngay sau List: danh sách đã cache phải bị loại bỏ
	require.NoError(t, svc.Delete(ctx, first.ID))

	items, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Software", items[0].Name)

	// Đổi tên ngay sau List cũng vậy
	_, err = svc.Rename(ctx, items[0].ID, "Phần mềm")
	require.NoError(t, err)

	items, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Phần mềm", items[0].Name)
}
