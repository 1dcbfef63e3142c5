// Package database - Index cho các collection helpdesk (compound, unique) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"meta_helpdesk/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateHelpdeskIndexes tạo các index cho tickets, concerns, inbox và các bảng danh mục.
// Gọi một lần khi khởi động server, sau khi đã kết nối MongoDB.
func CreateHelpdeskIndexes(ctx context.Context, db *mongo.Database) error {
	// tickets: ticketNumber unique — tra cứu phiếu theo số và chặn trùng số
	tickets := db.Collection(global.MongoDB_ColNames.Tickets)
	if _, err := tickets.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ticketNumber", Value: 1}},
		Options: options.Index().SetName("ticket_number_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// tickets: (status, createdAt) — danh sách phiếu theo trạng thái, mới nhất trước
	if _, err := tickets.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("ticket_status_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// concerns: concernNumber unique
	concerns := db.Collection(global.MongoDB_ColNames.Concerns)
	if _, err := concerns.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "concernNumber", Value: 1}},
		Options: options.Index().SetName("concern_number_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// concerns: (readStatus, createdAt) — danh sách concern chờ xử lý
	if _, err := concerns.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "readStatus", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("concern_read_status_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// inbox_messages: (read, createdAt) — liệt kê thông báo và worker dọn dẹp
	inbox := db.Collection(global.MongoDB_ColNames.Inbox)
	if _, err := inbox.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "read", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("inbox_read_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// Các bảng danh mục: name unique — chặn trùng tên ở mức database,
	// bổ sung cho duplicate check ở service layer
	for _, colName := range global.LookupCollectionNames() {
		col := db.Collection(colName)
		if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("lookup_name_unique").SetUnique(true),
		}); err != nil && !isIndexExistsError(err) {
			return err
		}
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
