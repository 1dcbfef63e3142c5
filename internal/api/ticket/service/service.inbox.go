// Package ticketsvc - Service thông báo inbox (inbox_messages).
package ticketsvc

import (
	"context"
	"fmt"
	"time"

	basemodels "meta_helpdesk/internal/api/base/models"
	basesvc "meta_helpdesk/internal/api/base/service"
	ticketmodels "meta_helpdesk/internal/api/ticket/models"
	"meta_helpdesk/internal/common"
	"meta_helpdesk/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// InboxService xử lý thông báo in-app.
type InboxService struct {
	*basesvc.BaseServiceMongoImpl[ticketmodels.InboxMessage]
}

// NewInboxService tạo InboxService mới.
func NewInboxService() (*InboxService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Inbox)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Inbox, common.ErrNotFound)
	}
	return &InboxService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ticketmodels.InboxMessage](coll),
	}, nil
}

// PostTicketCreated ghi một thông báo inbox cho ticket vừa tạo từ concern.
func (s *InboxService) PostTicketCreated(ctx context.Context, ticket *ticketmodels.Ticket) (*ticketmodels.InboxMessage, error) {
	message := ticketmodels.InboxMessage{
		TicketID:     ticket.ID,
		TicketNumber: ticket.TicketNumber,
		Title:        fmt.Sprintf("Ticket %s đã được tạo", ticket.TicketNumber),
		Body:         fmt.Sprintf("Yêu cầu của %s (%s) đã được tiếp nhận với số phiếu %s.", ticket.Fullname, ticket.Department, ticket.TicketNumber),
	}
	created, err := s.InsertOne(ctx, message)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListMessages trả về thông báo phân trang, mới nhất trước.
func (s *InboxService) ListMessages(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[ticketmodels.InboxMessage], error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{}, page, limit, opts)
}

// MarkRead đánh dấu một thông báo đã đọc.
func (s *InboxService) MarkRead(ctx context.Context, id primitive.ObjectID) (*ticketmodels.InboxMessage, error) {
	update := &basesvc.UpdateData{Set: map[string]interface{}{
		"read":      true,
		"updatedAt": time.Now().UnixMilli(),
	}}
	opts := mongoopts.FindOneAndUpdate().SetReturnDocument(mongoopts.After)
	message, err := s.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// DeleteReadOlderThan xóa các thông báo đã đọc tạo trước mốc thời gian cho trước.
// Dùng bởi worker dọn dẹp định kỳ. Trả về số thông báo đã xóa.
func (s *InboxService) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.DeleteMany(ctx, bson.M{
		"read":      true,
		"createdAt": bson.M{"$lt": cutoff.UnixMilli()},
	})
}
