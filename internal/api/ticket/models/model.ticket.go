// Package models - Ticket thuộc domain ticket (tickets).
// Phiếu hỗ trợ do IT tạo, trực tiếp hoặc từ concern của người dùng.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ticket lưu phiếu hỗ trợ (tickets).
// TicketNumber do server cấp qua bộ đếm atomic, dạng "DSI-YYYY-MM-DD-N",
// duy nhất tuyệt đối (unique index). Các field danh mục lưu theo tên dạng
// chuỗi, không tham chiếu _id của bảng danh mục.
type Ticket struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	TicketNumber string             `json:"ticketNumber" bson:"ticketNumber" index:"unique"`

	Fullname    string `json:"fullname" bson:"fullname"`
	Department  string `json:"department" bson:"department"`
	Site        string `json:"site,omitempty" bson:"site,omitempty"`
	RequestType string `json:"requesttype" bson:"requesttype"`
	Priority    string `json:"priority,omitempty" bson:"priority,omitempty"`
	Technician  string `json:"technician,omitempty" bson:"technician,omitempty"`
	Group       string `json:"group,omitempty" bson:"group,omitempty"`
	Remarks     string `json:"remarks" bson:"remarks"`

	// Status chỉ nhận Pending/Ongoing/Finished, mặc định Pending khi tạo.
	Status string `json:"status" bson:"status" default:"Pending" index:"single:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
