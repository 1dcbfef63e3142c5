// Package router đăng ký các route danh mục: departments, sites, modes,
// priorities, statuses, technicians, groups, request-types, concern-types.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	lookuphdl "meta_helpdesk/internal/api/lookup/handler"
	"meta_helpdesk/internal/api/middleware"
	apirouter "meta_helpdesk/internal/api/router"
	"meta_helpdesk/internal/global"
)

// lookupEntities ánh xạ URL prefix sang collection danh mục tương ứng.
func lookupEntities() []struct {
	Prefix     string
	Collection string
} {
	return []struct {
		Prefix     string
		Collection string
	}{
		{"/departments", global.MongoDB_ColNames.Departments},
		{"/sites", global.MongoDB_ColNames.Sites},
		{"/modes", global.MongoDB_ColNames.Modes},
		{"/priorities", global.MongoDB_ColNames.Priorities},
		{"/statuses", global.MongoDB_ColNames.Statuses},
		{"/technicians", global.MongoDB_ColNames.Technicians},
		{"/groups", global.MongoDB_ColNames.Groups},
		{"/request-types", global.MongoDB_ColNames.RequestTypes},
		{"/concern-types", global.MongoDB_ColNames.ConcernTypes},
	}
}

// Register đăng ký route cho 9 bảng danh mục lên v1.
// Đọc công khai, ghi yêu cầu JWT (admin maintain danh mục).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	authMiddleware := middleware.AuthMiddleware()

	for _, entity := range lookupEntities() {
		handler, err := lookuphdl.NewLookupHandler(entity.Collection)
		if err != nil {
			return fmt.Errorf("tạo LookupHandler cho %s: %w", entity.Collection, err)
		}

		// GET / — danh sách sắp xếp theo tên
		apirouter.RegisterRouteWithMiddleware(v1, entity.Prefix, "GET", "/", nil, handler.HandleList)
		// POST / — thêm mới (trim + chống trùng tên)
		apirouter.RegisterRouteWithMiddleware(v1, entity.Prefix, "POST", "/", []fiber.Handler{authMiddleware}, handler.HandleCreate)
		// PUT /:id — đổi tên
		apirouter.RegisterRouteWithMiddleware(v1, entity.Prefix, "PUT", "/:id", []fiber.Handler{authMiddleware}, handler.HandleRename)
		// DELETE /:id — xóa
		apirouter.RegisterRouteWithMiddleware(v1, entity.Prefix, "DELETE", "/:id", []fiber.Handler{authMiddleware}, handler.HandleDelete)
	}

	return nil
}
