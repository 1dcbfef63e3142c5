package basehdl

import (
	"context"
	"meta_helpdesk/internal/common"
	"meta_helpdesk/internal/global"
	"meta_helpdesk/internal/utility"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v3"
)

// startTime thời điểm process khởi động, dùng để tính uptime.
var startTime = time.Now()

// SystemHandler xử lý các route liên quan đến system operations.
type SystemHandler struct {
	*BaseHandler[interface{}, interface{}, interface{}]
}

// NewSystemHandler tạo một instance mới của SystemHandler.
func NewSystemHandler() (*SystemHandler, error) {
	return &SystemHandler{
		BaseHandler: &BaseHandler[interface{}, interface{}, interface{}]{},
	}, nil
}

// HandleHealth kiểm tra tình trạng hệ thống.
// Trả về trạng thái của API và kết nối MongoDB. Status 503 khi database không khả dụng.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services": fiber.Map{
			"api": "ok",
		},
	}

	if global.MongoDB_Session != nil {
		if err := global.MongoDB_Session.Ping(ctx, nil); err != nil {
			healthData["status"] = "degraded"
			healthData["services"].(fiber.Map)["database"] = "error"
			healthData["database_error"] = err.Error()
			return JSONResponse(c, common.StatusServiceUnavailable, fiber.Map{
				"code":    common.StatusServiceUnavailable,
				"message": common.MsgServiceUnavailable,
				"data":    healthData,
				"status":  "error",
			})
		}
		healthData["services"].(fiber.Map)["database"] = "ok"
	} else {
		healthData["status"] = "degraded"
		healthData["services"].(fiber.Map)["database"] = "not_initialized"
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    healthData,
		"status":  "success",
	})
}

// HandleSystemInfo trả về thông tin runtime của process phục vụ giám sát:
// uptime, số goroutine, bộ nhớ đang dùng và số lần GC.
func (h *SystemHandler) HandleSystemInfo(c fiber.Ctx) error {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data": fiber.Map{
			"uptime":     time.Since(startTime).Round(time.Second).String(),
			"goroutines": runtime.NumGoroutine(),
			"go_version": runtime.Version(),
			"memory": fiber.Map{
				"alloc":       utility.FormatBytes(memStats.Alloc),
				"total_alloc": utility.FormatBytes(memStats.TotalAlloc),
				"sys":         utility.FormatBytes(memStats.Sys),
				"num_gc":      memStats.NumGC,
			},
		},
		"status": "success",
	})
}
