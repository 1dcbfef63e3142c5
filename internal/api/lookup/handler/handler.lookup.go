// Package lookuphdl - Handler REST cho các bảng danh mục.
package lookuphdl

import (
	"fmt"

	basehdl "meta_helpdesk/internal/api/base/handler"
	lookupdto "meta_helpdesk/internal/api/lookup/dto"
	lookupmodels "meta_helpdesk/internal/api/lookup/models"
	lookupsvc "meta_helpdesk/internal/api/lookup/service"
	"meta_helpdesk/internal/common"
	"meta_helpdesk/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// LookupHandler xử lý CRUD cho một bảng danh mục.
// Dùng chung cho cả 9 bảng, mỗi instance gắn với một collection.
type LookupHandler struct {
	*basehdl.BaseHandler[lookupmodels.LookupItem, lookupdto.LookupCreateInput, lookupdto.LookupUpdateInput]
	LookupService *lookupsvc.LookupService
}

// NewLookupHandler tạo LookupHandler cho collection danh mục có tên cho trước.
func NewLookupHandler(collectionName string) (*LookupHandler, error) {
	svc, err := lookupsvc.NewLookupService(collectionName)
	if err != nil {
		return nil, fmt.Errorf("tạo LookupService cho %s: %w", collectionName, err)
	}
	return &LookupHandler{
		BaseHandler:   basehdl.NewBaseHandler[lookupmodels.LookupItem, lookupdto.LookupCreateInput, lookupdto.LookupUpdateInput](svc),
		LookupService: svc,
	}, nil
}

// HandleList xử lý GET / — toàn bộ danh mục sắp xếp theo tên.
func (h *LookupHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		items, err := h.LookupService.List(c.Context())
		h.HandleResponse(c, items, err)
		return nil
	})
}

// HandleCreate xử lý POST / — thêm mục danh mục mới.
func (h *LookupHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input lookupdto.LookupCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		item, err := h.LookupService.Create(c.Context(), input.Name)
		h.HandleResponse(c, item, err)
		return nil
	})
}

// HandleRename xử lý PUT /:id — đổi tên mục danh mục.
func (h *LookupHandler) HandleRename(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if err := validateID(id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input lookupdto.LookupUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		item, err := h.LookupService.Rename(c.Context(), utility.String2ObjectID(id), input.Name)
		h.HandleResponse(c, item, err)
		return nil
	})
}

// HandleDelete xử lý DELETE /:id — xóa mục danh mục.
func (h *LookupHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if err := validateID(id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.LookupService.Delete(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, nil, err)
		return nil
	})
}

func validateID(id string) error {
	if id == "" {
		return common.NewError(common.ErrCodeValidationFormat, "ID không được để trống trong URL params", common.StatusBadRequest, nil)
	}
	if utility.String2ObjectID(id).IsZero() {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}
