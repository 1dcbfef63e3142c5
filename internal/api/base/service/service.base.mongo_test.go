// Package basesvc - Test hành vi update của tầng CRUD generic.
package basesvc

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	lookupmodels "meta_helpdesk/internal/api/lookup/models"
	"meta_helpdesk/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// setupBaseService kết nối MongoDB test và tạo base service trên một collection
// riêng cho mỗi lần chạy. Skip khi không có MONGODB_TEST_URI.
func setupBaseService(t *testing.T) *BaseServiceMongoImpl[lookupmodels.LookupItem] {
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

	collName := fmt.Sprintf("base_test_%d", time.Now().UnixNano())
	coll := client.Database("meta_helpdesk_test").Collection(collName)
	t.Cleanup(func() {
		_ = coll.Drop(context.Background())
	})

	return NewBaseServiceMongo[lookupmodels.LookupItem](coll)
}

// Gửi lại update trùng dữ liệu hiện tại vẫn match document: không phải 404.
func TestUpdateOne_UnchangedDataIsNotNotFound(t *testing.T) {
	svc := setupBaseService(t)
	ctx := context.Background()

	created, err := svc.InsertOne(ctx, lookupmodels.LookupItem{Name: "Kế toán"})
	require.NoError(t, err)

	filter := bson.M{"_id": created.ID}
	update := &UpdateData{Set: map[string]interface{}{"name": "Kế toán"}}

	// Client resubmit cùng dữ liệu: ModifiedCount có thể = 0 (khi updatedAt
	// rơi cùng mili-giây) nhưng MatchedCount = 1. Lặp nhanh để chắc chắn
	// chạm trường hợp không có gì thay đổi.
	for i := 0; i < 20; i++ {
		updated, err := svc.UpdateOne(ctx, filter, update, nil)
		require.NoError(t, err, "update trùng dữ liệu hiện tại không được trả về lỗi (lần %d)", i)
		assert.Equal(t, "Kế toán", updated.Name)
	}

	// Filter không match gì mới là 404
	_, err = svc.UpdateOne(ctx, bson.M{"name": "Không tồn tại"}, update, nil)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
