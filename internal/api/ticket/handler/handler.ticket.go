// Package tickethdl - Handler REST cho domain ticket.
package tickethdl

import (
	"fmt"
	"strconv"

	basehdl "meta_helpdesk/internal/api/base/handler"
	ticketdto "meta_helpdesk/internal/api/ticket/dto"
	ticketmodels "meta_helpdesk/internal/api/ticket/models"
	ticketsvc "meta_helpdesk/internal/api/ticket/service"

	"github.com/gofiber/fiber/v3"
)

// TicketHandler xử lý các endpoint /tickets.
type TicketHandler struct {
	*basehdl.BaseHandler[ticketmodels.Ticket, ticketdto.TicketCreateInput, ticketdto.TicketUpdateInput]
	TicketService *ticketsvc.TicketService
}

// NewTicketHandler tạo TicketHandler mới.
func NewTicketHandler() (*TicketHandler, error) {
	svc, err := ticketsvc.NewTicketService()
	if err != nil {
		return nil, fmt.Errorf("tạo TicketService: %w", err)
	}
	return &TicketHandler{
		BaseHandler:   basehdl.NewBaseHandler[ticketmodels.Ticket, ticketdto.TicketCreateInput, ticketdto.TicketUpdateInput](svc),
		TicketService: svc,
	}, nil
}

// HandleCreate xử lý POST /tickets — tạo phiếu hỗ trợ mới với số phiếu từ bộ đếm.
func (h *TicketHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input ticketdto.TicketCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ticket, err := h.TicketService.CreateTicket(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		return basehdl.JSONResponse(c, fiber.StatusCreated, ticketdto.TicketCreatedResponse{
			Success:      true,
			TicketNumber: ticket.TicketNumber,
			InsertedID:   ticket.ID.Hex(),
			Message:      fmt.Sprintf("Ticket %s đã được tạo thành công", ticket.TicketNumber),
		})
	})
}

// HandleList xử lý GET /tickets — danh sách phiếu phân trang, mới nhất trước.
func (h *TicketHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := parsePagination(c)
		result, err := h.TicketService.ListTickets(c.Context(), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGet xử lý GET /tickets/:id — tìm theo ObjectID hoặc số phiếu DSI-...
func (h *TicketHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ticket, err := h.TicketService.FindByIDOrNumber(c.Context(), c.Params("id"))
		h.HandleResponse(c, ticket, err)
		return nil
	})
}

// HandleUpdate xử lý PUT /tickets/:id — partial update, chỉ ghi đè field được gửi.
func (h *TicketHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		updateData, err := h.ParseUpdateBody(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ticket, err := h.TicketService.UpdateByIDOrNumber(c.Context(), c.Params("id"), updateData)
		h.HandleResponse(c, ticket, err)
		return nil
	})
}

// HandleDelete xử lý DELETE /tickets/:id.
func (h *TicketHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		err := h.TicketService.DeleteByIDOrNumber(c.Context(), c.Params("id"))
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// parsePagination đọc page/limit từ query string, fallback về giá trị mặc định.
func parsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 10
	}
	return page, limit
}
