package utility

import (
	"sync"
	"time"
)

// Cache là struct để quản lý cache trong bộ nhớ với chu kỳ dọn dẹp định kỳ.
// Dùng cho các dữ liệu đọc nhiều ghi ít (ví dụ: danh sách các bảng danh mục).
// Mỗi key có version tăng dần theo mỗi lần Delete; SetIfUnchanged chỉ ghi
// khi version chưa đổi, để một lần đọc cũ không ghi đè dữ liệu đã invalidate.
type Cache struct {
	items    map[string]interface{}
	versions map[string]uint64
	mu       sync.RWMutex
	cleanup  time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewCache tạo một instance mới của Cache.
// cleanup: chu kỳ xóa toàn bộ cache.
func NewCache(cleanup time.Duration) *Cache {
	cache := &Cache{
		items:    make(map[string]interface{}),
		versions: make(map[string]uint64),
		cleanup:  cleanup,
		stopChan: make(chan struct{}),
	}
	go cache.cleanupLoop()
	return cache
}

// Set lưu giá trị vào cache
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
}

// Version trả về version hiện tại của key. Lấy version trước khi đọc
// dữ liệu nguồn, rồi ghi lại bằng SetIfUnchanged.
func (c *Cache) Version(key string) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.versions[key]
}

// SetIfUnchanged ghi giá trị vào cache nếu version của key chưa đổi
// kể từ lúc gọi Version. Trả về false nếu key đã bị invalidate trong lúc
// đọc dữ liệu nguồn (giá trị cũ bị loại, không ghi).
func (c *Cache) SetIfUnchanged(key string, value interface{}, version uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.versions[key] != version {
		return false
	}
	c.items[key] = value
	return true
}

// Get lấy giá trị từ cache
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, exists := c.items[key]
	return value, exists
}

// Delete xóa một key khỏi cache và tăng version của key
// (dùng khi dữ liệu nguồn thay đổi)
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	c.versions[key]++
}

// Stop dừng goroutine dọn dẹp
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
}

// cleanupLoop dọn dẹp cache định kỳ. Chỉ xóa giá trị, không tăng version:
// dữ liệu nguồn không đổi nên một lần ghi đang dở vẫn hợp lệ.
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			for k := range c.items {
				delete(c.items, k)
			}
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}
