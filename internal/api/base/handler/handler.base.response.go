package basehdl

import (
	"errors"
	"fmt"
	"meta_helpdesk/internal/common"
	"meta_helpdesk/internal/logger"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8.
// Đảm bảo tất cả response đều hỗ trợ UTF-8 (nội dung tiếng Việt).
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Đảm bảo server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.GetErrorLogger().WithFields(logrus.Fields{
				"panic": fmt.Sprintf("%v", r),
				"path":  c.Path(),
				"stack": string(debug.Stack()),
			}).Error("Panic trong handler")

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Format thống nhất trong toàn bộ ứng dụng:
//
//	Thành công: {"code": 200, "message": "...", "data": ..., "status": "success"}
//	Lỗi:        {"code": "XXX_000", "message": "...", "details": ..., "status": "error"}
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"details": customErr.Details,
				"status":  "error",
			})
			return
		}
		// Không phải custom error: coi như lỗi hệ thống
		JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeDatabase.Code,
			"message": err.Error(),
			"status":  "error",
		})
		return
	}

	JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}
