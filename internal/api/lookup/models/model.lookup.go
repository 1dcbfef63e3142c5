// Package models - LookupItem dùng chung cho 9 bảng danh mục
// (lookup_departments, lookup_sites, lookup_modes, ...).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LookupItem là một mục danh mục đặt tên đơn thuần: phòng ban, địa điểm,
// mức ưu tiên... Tên là duy nhất trong từng collection (unique index).
//
// IsSystem = true đánh dấu dữ liệu seed của hệ thống (ví dụ ba trạng thái
// chuẩn trong lookup_statuses) — không thể sửa/xóa qua API.
type LookupItem struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" index:"unique"`
	IsSystem bool               `json:"isSystem,omitempty" bson:"isSystem,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
