// Package router đăng ký route cho domain ticket: tickets, concerns, inbox
// và surface CRUD generic cho tool quản trị.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"meta_helpdesk/internal/api/middleware"
	apirouter "meta_helpdesk/internal/api/router"
	tickethdl "meta_helpdesk/internal/api/ticket/handler"
	"meta_helpdesk/internal/notifier"
)

// Register trả về RegisterFunc cho domain ticket.
// Notifier được inject từ bootstrap để workflow convert gửi email cho IT.
func Register(email *notifier.EmailNotifier) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		ticketHandler, err := tickethdl.NewTicketHandler()
		if err != nil {
			return fmt.Errorf("tạo TicketHandler: %w", err)
		}
		concernHandler, err := tickethdl.NewConcernHandler(email)
		if err != nil {
			return fmt.Errorf("tạo ConcernHandler: %w", err)
		}
		inboxHandler, err := tickethdl.NewInboxHandler()
		if err != nil {
			return fmt.Errorf("tạo InboxHandler: %w", err)
		}

		authMiddleware := middleware.AuthMiddleware()
		auth := []fiber.Handler{authMiddleware}

		// Tickets — tạo/đọc công khai (form nội bộ không đăng nhập),
		// sửa/xóa là thao tác của IT nên yêu cầu JWT
		apirouter.RegisterRouteWithMiddleware(v1, "/tickets", "POST", "/", nil, ticketHandler.HandleCreate)
		apirouter.RegisterRouteWithMiddleware(v1, "/tickets", "GET", "/", nil, ticketHandler.HandleList)
		apirouter.RegisterRouteWithMiddleware(v1, "/tickets", "GET", "/:id", nil, ticketHandler.HandleGet)
		apirouter.RegisterRouteWithMiddleware(v1, "/tickets", "PUT", "/:id", auth, ticketHandler.HandleUpdate)
		apirouter.RegisterRouteWithMiddleware(v1, "/tickets", "DELETE", "/:id", auth, ticketHandler.HandleDelete)

		// Concerns — người dùng gửi và theo dõi không cần đăng nhập;
		// cập nhật/xóa/convert là thao tác của IT
		apirouter.RegisterRouteWithMiddleware(v1, "/concerns", "POST", "/", nil, concernHandler.HandleCreate)
		apirouter.RegisterRouteWithMiddleware(v1, "/concerns", "GET", "/", nil, concernHandler.HandleList)
		apirouter.RegisterRouteWithMiddleware(v1, "/concerns", "GET", "/:id", nil, concernHandler.HandleGet)
		apirouter.RegisterRouteWithMiddleware(v1, "/concerns", "PUT", "/:id", auth, concernHandler.HandleUpdate)
		apirouter.RegisterRouteWithMiddleware(v1, "/concerns", "DELETE", "/:id", auth, concernHandler.HandleDelete)
		apirouter.RegisterRouteWithMiddleware(v1, "/concerns", "POST", "/:id/convert", auth, concernHandler.HandleConvert)

		// Inbox — thông báo nội bộ cho IT, yêu cầu JWT
		apirouter.RegisterRouteWithMiddleware(v1, "/inbox", "GET", "/", auth, inboxHandler.HandleList)
		apirouter.RegisterRouteWithMiddleware(v1, "/inbox", "PUT", "/:id/read", auth, inboxHandler.HandleMarkRead)

		// Surface CRUD generic dành cho tool quản trị (filter/options dạng JSON)
		r.RegisterCRUDRoutes(v1, "/admin/tickets", ticketHandler, apirouter.ReadWriteConfig)
		r.RegisterCRUDRoutes(v1, "/admin/concerns", concernHandler, apirouter.ReadWriteConfig)

		return nil
	}
}
