// Package dto - DTO cho các bảng danh mục.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LookupCreateInput dữ liệu tạo mục danh mục mới.
type LookupCreateInput struct {
	Name string `json:"name" validate:"required,no_xss" maxLength:"200"`
}

// LookupUpdateInput dữ liệu đổi tên mục danh mục.
type LookupUpdateInput struct {
	Name string `json:"name" validate:"required,no_xss" maxLength:"200"`
}

// LookupItemResponse trả về một mục danh mục.
type LookupItemResponse struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	IsSystem  bool               `json:"isSystem,omitempty"`
	CreatedAt int64              `json:"createdAt"`
	UpdatedAt int64              `json:"updatedAt"`
}
