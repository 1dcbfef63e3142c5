// Package models - InboxMessage thuộc domain ticket (inbox_messages).
// Thông báo in-app ghi lại khi một ticket được tạo từ concern.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InboxMessage lưu thông báo inbox (inbox_messages).
// Worker dọn dẹp định kỳ xóa các thông báo đã đọc quá hạn lưu giữ.
type InboxMessage struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	TicketID     primitive.ObjectID `json:"ticketId" bson:"ticketId"`
	TicketNumber string             `json:"ticketNumber" bson:"ticketNumber"`
	Title        string             `json:"title" bson:"title"`
	Body         string             `json:"body" bson:"body"`
	Read         bool               `json:"read" bson:"read"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
