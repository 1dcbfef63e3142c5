// Package ticketsvc - Service phiếu hỗ trợ (tickets).
package ticketsvc

import (
	"context"
	"fmt"
	"time"

	basemodels "meta_helpdesk/internal/api/base/models"
	basesvc "meta_helpdesk/internal/api/base/service"
	seqsvc "meta_helpdesk/internal/api/sequence/service"
	ticketdto "meta_helpdesk/internal/api/ticket/dto"
	ticketmodels "meta_helpdesk/internal/api/ticket/models"
	"meta_helpdesk/internal/common"
	"meta_helpdesk/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// Prefix và scope bộ đếm cho số phiếu.
const (
	TicketNumberPrefix  = "DSI"
	ticketCounterScope  = "ticket"
	ConcernNumberPrefix = "TKC"
	concernCounterScope = "concern"
)

// TicketService xử lý CRUD phiếu hỗ trợ.
type TicketService struct {
	*basesvc.BaseServiceMongoImpl[ticketmodels.Ticket]
	sequence *seqsvc.SequenceService
}

// NewTicketService tạo TicketService mới.
func NewTicketService() (*TicketService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tickets)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Tickets, common.ErrNotFound)
	}
	sequence, err := seqsvc.NewSequenceService()
	if err != nil {
		return nil, fmt.Errorf("tạo SequenceService: %w", err)
	}
	return &TicketService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ticketmodels.Ticket](coll),
		sequence:             sequence,
	}, nil
}

// CreateTicket tạo phiếu hỗ trợ mới. Số phiếu lấy từ bộ đếm atomic —
// nếu không cấp được số thì trả lỗi ngay, không insert.
func (s *TicketService) CreateTicket(ctx context.Context, input *ticketdto.TicketCreateInput) (*ticketmodels.Ticket, error) {
	if input.Status != "" && !global.IsValidStatus(input.Status) {
		return nil, common.ErrInvalidState
	}

	number, err := s.sequence.NextDailyNumber(ctx, TicketNumberPrefix, ticketCounterScope)
	if err != nil {
		return nil, err
	}

	ticket := ticketmodels.Ticket{
		TicketNumber: number,
		Fullname:     input.Fullname,
		Department:   input.Department,
		Site:         input.Site,
		RequestType:  input.RequestType,
		Priority:     input.Priority,
		Technician:   input.Technician,
		Group:        input.Group,
		Remarks:      input.Remarks,
		Status:       input.Status, // rỗng → default Pending khi insert
	}

	created, err := s.InsertOne(ctx, ticket)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListTickets trả về danh sách phiếu phân trang, mới nhất trước.
func (s *TicketService) ListTickets(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[ticketmodels.Ticket], error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{}, page, limit, opts)
}

// FindByIDOrNumber tìm phiếu theo ObjectID hoặc theo số phiếu (dual lookup).
// Chuỗi hex 24 ký tự được hiểu là ObjectID, còn lại tra theo ticketNumber.
func (s *TicketService) FindByIDOrNumber(ctx context.Context, idOrNumber string) (*ticketmodels.Ticket, error) {
	ticket, err := s.FindOne(ctx, ticketFilter(idOrNumber), nil)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// UpdateByIDOrNumber cập nhật một phần phiếu theo ObjectID hoặc số phiếu.
// Status nếu có trong update phải thuộc bộ trạng thái hợp lệ.
func (s *TicketService) UpdateByIDOrNumber(ctx context.Context, idOrNumber string, update *basesvc.UpdateData) (*ticketmodels.Ticket, error) {
	if status, ok := update.Set["status"].(string); ok && !global.IsValidStatus(status) {
		return nil, common.ErrInvalidState
	}

	if update.Set == nil {
		update.Set = make(map[string]interface{})
	}
	update.Set["updatedAt"] = time.Now().UnixMilli()

	opts := mongoopts.FindOneAndUpdate().SetReturnDocument(mongoopts.After)
	ticket, err := s.FindOneAndUpdate(ctx, ticketFilter(idOrNumber), update, opts)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// DeleteByIDOrNumber xóa hẳn một phiếu theo ObjectID hoặc số phiếu.
func (s *TicketService) DeleteByIDOrNumber(ctx context.Context, idOrNumber string) error {
	return s.DeleteOne(ctx, ticketFilter(idOrNumber))
}

// ticketFilter dựng filter dual lookup: ObjectID hợp lệ tra theo _id,
// còn lại tra theo ticketNumber.
func ticketFilter(idOrNumber string) bson.M {
	if objID, err := primitive.ObjectIDFromHex(idOrNumber); err == nil {
		return bson.M{"_id": objID}
	}
	return bson.M{"ticketNumber": idOrNumber}
}
