// Package ticketsvc - Service concern của người dùng (concerns).
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

// ConcernService xử lý CRUD concern.
type ConcernService struct {
	*basesvc.BaseServiceMongoImpl[ticketmodels.Concern]
	sequence *seqsvc.SequenceService
}

// NewConcernService tạo ConcernService mới.
func NewConcernService() (*ConcernService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Concerns)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Concerns, common.ErrNotFound)
	}
	sequence, err := seqsvc.NewSequenceService()
	if err != nil {
		return nil, fmt.Errorf("tạo SequenceService: %w", err)
	}
	return &ConcernService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ticketmodels.Concern](coll),
		sequence:             sequence,
	}, nil
}

// CreateConcern tạo concern mới. Số concern lấy từ bộ đếm atomic.
func (s *ConcernService) CreateConcern(ctx context.Context, input *ticketdto.ConcernCreateInput) (*ticketmodels.Concern, error) {
	number, err := s.sequence.NextDailyNumber(ctx, ConcernNumberPrefix, concernCounterScope)
	if err != nil {
		return nil, err
	}

	concern := ticketmodels.Concern{
		ConcernNumber: number,
		Fullname:      input.Fullname,
		Department:    input.Department,
		Mode:          input.Mode,
		ConcernType:   input.ConcernType,
		Remarks:       input.Remarks,
		// ReadStatus rỗng → default New khi insert
	}

	created, err := s.InsertOne(ctx, concern)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListConcerns trả về danh sách concern phân trang, mới nhất trước.
func (s *ConcernService) ListConcerns(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[ticketmodels.Concern], error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{}, page, limit, opts)
}

// FindByIDOrNumber tìm concern theo ObjectID hoặc số concern (dual lookup).
func (s *ConcernService) FindByIDOrNumber(ctx context.Context, idOrNumber string) (*ticketmodels.Concern, error) {
	concern, err := s.FindOne(ctx, concernFilter(idOrNumber), nil)
	if err != nil {
		return nil, err
	}
	return &concern, nil
}

// UpdateByIDOrNumber cập nhật một phần concern theo ObjectID hoặc số concern.
func (s *ConcernService) UpdateByIDOrNumber(ctx context.Context, idOrNumber string, update *basesvc.UpdateData) (*ticketmodels.Concern, error) {
	if update.Set == nil {
		update.Set = make(map[string]interface{})
	}
	update.Set["updatedAt"] = time.Now().UnixMilli()

	opts := mongoopts.FindOneAndUpdate().SetReturnDocument(mongoopts.After)
	concern, err := s.FindOneAndUpdate(ctx, concernFilter(idOrNumber), update, opts)
	if err != nil {
		return nil, err
	}
	return &concern, nil
}

// DeleteByIDOrNumber xóa hẳn một concern theo ObjectID hoặc số concern.
func (s *ConcernService) DeleteByIDOrNumber(ctx context.Context, idOrNumber string) error {
	return s.DeleteOne(ctx, concernFilter(idOrNumber))
}

// markConverted đánh dấu concern đã được chuyển thành ticket.
func (s *ConcernService) markConverted(ctx context.Context, concernID, ticketID primitive.ObjectID) error {
	update := &basesvc.UpdateData{Set: map[string]interface{}{
		"readStatus":        ticketmodels.ConcernStatusConverted,
		"convertedTicketId": ticketID,
		"updatedAt":         time.Now().UnixMilli(),
	}}
	opts := mongoopts.FindOneAndUpdate().SetReturnDocument(mongoopts.After)
	_, err := s.FindOneAndUpdate(ctx, bson.M{"_id": concernID}, update, opts)
	return err
}

// concernFilter dựng filter dual lookup cho concern.
func concernFilter(idOrNumber string) bson.M {
	if objID, err := primitive.ObjectIDFromHex(idOrNumber); err == nil {
		return bson.M{"_id": objID}
	}
	return bson.M{"concernNumber": idOrNumber}
}
