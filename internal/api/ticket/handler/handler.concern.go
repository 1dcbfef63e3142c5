package tickethdl

import (
	"fmt"

	basehdl "meta_helpdesk/internal/api/base/handler"
	ticketdto "meta_helpdesk/internal/api/ticket/dto"
	ticketmodels "meta_helpdesk/internal/api/ticket/models"
	ticketsvc "meta_helpdesk/internal/api/ticket/service"
	"meta_helpdesk/internal/notifier"

	"github.com/gofiber/fiber/v3"
)

// ConcernHandler xử lý các endpoint /concerns, bao gồm workflow chuyển thành ticket.
type ConcernHandler struct {
	*basehdl.BaseHandler[ticketmodels.Concern, ticketdto.ConcernCreateInput, ticketdto.ConcernUpdateInput]
	ConcernService *ticketsvc.ConcernService
	ConvertService *ticketsvc.ConvertService
}

// NewConcernHandler tạo ConcernHandler mới.
func NewConcernHandler(email *notifier.EmailNotifier) (*ConcernHandler, error) {
	svc, err := ticketsvc.NewConcernService()
	if err != nil {
		return nil, fmt.Errorf("tạo ConcernService: %w", err)
	}
	convertSvc, err := ticketsvc.NewConvertService(email)
	if err != nil {
		return nil, fmt.Errorf("tạo ConvertService: %w", err)
	}
	return &ConcernHandler{
		BaseHandler:    basehdl.NewBaseHandler[ticketmodels.Concern, ticketdto.ConcernCreateInput, ticketdto.ConcernUpdateInput](svc),
		ConcernService: svc,
		ConvertService: convertSvc,
	}, nil
}

// HandleCreate xử lý POST /concerns — người dùng gửi phản ánh mới.
func (h *ConcernHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input ticketdto.ConcernCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		concern, err := h.ConcernService.CreateConcern(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		return basehdl.JSONResponse(c, fiber.StatusCreated, ticketdto.TicketCreatedResponse{
			Success:      true,
			TicketNumber: concern.ConcernNumber,
			InsertedID:   concern.ID.Hex(),
			Message:      fmt.Sprintf("Concern %s đã được ghi nhận", concern.ConcernNumber),
		})
	})
}

// HandleList xử lý GET /concerns — danh sách phân trang, mới nhất trước.
func (h *ConcernHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := parsePagination(c)
		result, err := h.ConcernService.ListConcerns(c.Context(), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGet xử lý GET /concerns/:id — tìm theo ObjectID hoặc số TKC-...
func (h *ConcernHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		concern, err := h.ConcernService.FindByIDOrNumber(c.Context(), c.Params("id"))
		h.HandleResponse(c, concern, err)
		return nil
	})
}

// HandleUpdate xử lý PUT /concerns/:id — cập nhật nội dung hoặc readStatus.
func (h *ConcernHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		updateData, err := h.ParseUpdateBody(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		concern, err := h.ConcernService.UpdateByIDOrNumber(c.Context(), c.Params("id"), updateData)
		h.HandleResponse(c, concern, err)
		return nil
	})
}

// HandleDelete xử lý DELETE /concerns/:id.
func (h *ConcernHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		err := h.ConcernService.DeleteByIDOrNumber(c.Context(), c.Params("id"))
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleConvert xử lý POST /concerns/:id/convert — chuyển concern thành ticket.
func (h *ConcernHandler) HandleConvert(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ticket, err := h.ConvertService.Convert(c.Context(), c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		return basehdl.JSONResponse(c, fiber.StatusCreated, ticketdto.TicketCreatedResponse{
			Success:      true,
			TicketNumber: ticket.TicketNumber,
			InsertedID:   ticket.ID.Hex(),
			Message:      fmt.Sprintf("Ticket %s đã được tạo từ concern", ticket.TicketNumber),
		})
	})
}
