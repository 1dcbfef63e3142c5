package tickethdl

import (
	"fmt"

	basehdl "meta_helpdesk/internal/api/base/handler"
	ticketmodels "meta_helpdesk/internal/api/ticket/models"
	ticketsvc "meta_helpdesk/internal/api/ticket/service"
	"meta_helpdesk/internal/common"
	"meta_helpdesk/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// InboxHandler xử lý các endpoint /inbox — hộp thư thông báo nội bộ cho IT.
type InboxHandler struct {
	*basehdl.BaseHandler[ticketmodels.InboxMessage, struct{}, struct{}]
	InboxService *ticketsvc.InboxService
}

// NewInboxHandler tạo InboxHandler mới.
func NewInboxHandler() (*InboxHandler, error) {
	svc, err := ticketsvc.NewInboxService()
	if err != nil {
		return nil, fmt.Errorf("tạo InboxService: %w", err)
	}
	return &InboxHandler{
		BaseHandler:  basehdl.NewBaseHandler[ticketmodels.InboxMessage, struct{}, struct{}](svc),
		InboxService: svc,
	}, nil
}

// HandleList xử lý GET /inbox — danh sách thông báo phân trang, mới nhất trước.
func (h *InboxHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := parsePagination(c)
		result, err := h.InboxService.ListMessages(c.Context(), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleMarkRead xử lý PUT /inbox/:id/read — đánh dấu thông báo đã đọc.
func (h *InboxHandler) HandleMarkRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if utility.String2ObjectID(id).IsZero() {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		msg, err := h.InboxService.MarkRead(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, msg, err)
		return nil
	})
}
