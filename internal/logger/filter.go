package logger

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// FilterHook lọc log entries theo module (ví dụ: ticket, lookup, sequence)
// và theo log type (trace, debug, info, warn, error, fatal).
// Entry bị filter được đánh dấu bằng field "_filtered" để AsyncHook bỏ qua.
type FilterHook struct {
	// Nếu map chứa "*", cho phép tất cả
	allowedModules  map[string]bool
	allowedLogTypes map[string]bool

	hasModuleFilter  bool
	hasLogTypeFilter bool

	mu sync.RWMutex
}

// NewFilterHook tạo một filter hook mới từ cấu hình
func NewFilterHook(cfg *LogConfig) *FilterHook {
	hook := &FilterHook{}
	hook.UpdateFilters(cfg)
	return hook
}

// UpdateFilters cập nhật filters từ config mới (có thể gọi runtime)
func (h *FilterHook) UpdateFilters(cfg *LogConfig) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.allowedModules = parseFilter(cfg.FilterModules)
	h.hasModuleFilter = !h.allowedModules["*"]

	h.allowedLogTypes = parseFilter(cfg.FilterLogTypes)
	h.hasLogTypeFilter = !h.allowedLogTypes["*"]
}

// parseFilter parse filter string thành map.
// Format: "value1,value2,value3" hoặc "*" cho tất cả.
func parseFilter(filterStr string) map[string]bool {
	result := make(map[string]bool)

	if filterStr == "" || filterStr == "*" {
		result["*"] = true
		return result
	}

	for _, v := range strings.Split(filterStr, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			result[strings.ToLower(v)] = true
		}
	}

	return result
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đánh dấu entry bị filter bằng field "_filtered" = true
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.hasLogTypeFilter {
		levelStr := strings.ToLower(entry.Level.String())
		if !h.allowedLogTypes[levelStr] {
			entry.Data["_filtered"] = true
			return nil
		}
	}

	if h.hasModuleFilter {
		// Entry không có module field vẫn được cho phép
		if module, ok := entry.Data["module"].(string); ok && module != "" {
			if !h.allowedModules[strings.ToLower(module)] {
				entry.Data["_filtered"] = true
				return nil
			}
		}
	}

	return nil
}
