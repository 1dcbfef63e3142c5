package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGetDelete(t *testing.T) {
	cache := NewCache(time.Minute)
	defer cache.Stop()

	cache.Set("k", "v")
	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)

	cache.Delete("k")
	_, ok = cache.Get("k")
	assert.False(t, ok)
}

// Một lần đọc bắt đầu trước khi dữ liệu nguồn thay đổi không được phép
// cache lại kết quả cũ sau khi key đã bị invalidate.
func TestCache_StaleWriteRejectedAfterInvalidation(t *testing.T) {
	cache := NewCache(time.Minute)
	defer cache.Stop()

	// Reader lấy version rồi đọc dữ liệu nguồn (danh sách cũ)
	version := cache.Version("lookup_departments")
	staleList := []string{"Kế toán"}

	// Trong lúc đó một mutation invalidate key
	cache.Delete("lookup_departments")

	// Ghi kết quả cũ phải bị từ chối
	assert.False(t, cache.SetIfUnchanged("lookup_departments", staleList, version))
	_, ok := cache.Get("lookup_departments")
	assert.False(t, ok, "danh sách cũ không được nằm trong cache")

	// Lần đọc mới sau invalidation ghi bình thường
	freshVersion := cache.Version("lookup_departments")
	freshList := []string{"Kế toán", "Nhân sự"}
	assert.True(t, cache.SetIfUnchanged("lookup_departments", freshList, freshVersion))
	got, ok := cache.Get("lookup_departments")
	require.True(t, ok)
	assert.Equal(t, freshList, got)
}

func TestCache_VersionUnchangedBySetAndGet(t *testing.T) {
	cache := NewCache(time.Minute)
	defer cache.Stop()

	v0 := cache.Version("k")
	cache.Set("k", 1)
	_, _ = cache.Get("k")
	assert.Equal(t, v0, cache.Version("k"))

	cache.Delete("k")
	assert.Equal(t, v0+1, cache.Version("k"))
}
