// Package models - Concern thuộc domain ticket (concerns).
// Yêu cầu hỗ trợ do người dùng cuối gửi, IT chuyển thành ticket khi tiếp nhận.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái đọc/xử lý của concern.
const (
	ConcernStatusNew       = "New"       // Mới gửi, IT chưa xem
	ConcernStatusRead      = "Read"      // IT đã xem
	ConcernStatusConverted = "Converted" // Đã chuyển thành ticket
)

// Concern lưu yêu cầu hỗ trợ của người dùng (concerns).
// ConcernNumber do server cấp qua bộ đếm atomic, dạng "TKC-YYYY-MM-DD-N".
type Concern struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ConcernNumber string             `json:"concernNumber" bson:"concernNumber" index:"unique"`

	Fullname    string `json:"fullname" bson:"fullname"`
	Department  string `json:"department" bson:"department"`
	Mode        string `json:"mode,omitempty" bson:"mode,omitempty"`
	ConcernType string `json:"concernType,omitempty" bson:"concernType,omitempty"`
	Remarks     string `json:"remarks" bson:"remarks"`

	ReadStatus        string             `json:"readStatus" bson:"readStatus" default:"New"`
	ConvertedTicketID primitive.ObjectID `json:"convertedTicketId,omitempty" bson:"convertedTicketId,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
