// Package seqsvc - Service cấp số thứ tự (counters).
// Mọi đường tạo ticket/concern đều lấy số qua bộ đếm atomic của module này,
// không đếm document để suy ra số thứ tự.
package seqsvc

import (
	"context"
	"fmt"
	"time"

	seqmodels "meta_helpdesk/internal/api/sequence/models"
	basesvc "meta_helpdesk/internal/api/base/service"
	"meta_helpdesk/internal/common"
	"meta_helpdesk/internal/global"
	"meta_helpdesk/internal/logger"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// dayFormat định dạng ngày trong key bộ đếm và trong số thứ tự.
const dayFormat = "2006-01-02"

// SequenceService cấp số thứ tự duy nhất theo ngày cho các collection nghiệp vụ.
type SequenceService struct {
	counters *basesvc.BaseServiceMongoImpl[seqmodels.Counter]
}

// NewSequenceService tạo SequenceService mới.
func NewSequenceService() (*SequenceService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Counters)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Counters, common.ErrNotFound)
	}
	return &SequenceService{
		counters: basesvc.NewBaseServiceMongo[seqmodels.Counter](coll),
	}, nil
}

// NextValue tăng bộ đếm sequenceName thêm 1 và trả về giá trị mới.
// Lần dùng đầu tiên của một key trả về 1 (upsert). Toàn bộ đọc-tăng-ghi là một
// lệnh FindOneAndUpdate duy nhất trên server MongoDB nên hai caller đồng thời
// không bao giờ nhận cùng một giá trị.
//
// Khi store lỗi, trả về ErrSequenceUnavailable — không tự chế số thay thế.
func (s *SequenceService) NextValue(ctx context.Context, sequenceName string) (int64, error) {
	filter := bson.M{"_id": sequenceName}
	update := bson.M{"$inc": bson.M{"sequence_value": int64(1)}}
	opts := mongoopts.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(mongoopts.After)

	counter, err := s.counters.FindOneAndUpdate(ctx, filter, update, opts)
	if err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"sequence": sequenceName,
			"error":    err.Error(),
		}).Error("Không cấp phát được số thứ tự")
		return 0, common.ErrSequenceUnavailable
	}
	return counter.SequenceValue, nil
}

// NextDailyNumber cấp số thứ tự theo ngày và format thành chuỗi định danh.
// Key bộ đếm là "<scope>:<YYYY-MM-DD>" theo đồng hồ server, kết quả có dạng
// "<prefix>-<YYYY-MM-DD>-<n>" (ví dụ "DSI-2026-08-29-4").
func (s *SequenceService) NextDailyNumber(ctx context.Context, prefix, scope string) (string, error) {
	day := time.Now().Format(dayFormat)
	n, err := s.NextValue(ctx, scope+":"+day)
	if err != nil {
		return "", err
	}
	return FormatDailyNumber(prefix, day, n), nil
}

// LegacyDailyNumber suy ra số thứ tự từ số document được tạo trong ngày hôm nay.
// Giữ lại để đối chiếu dữ liệu cũ — KHÔNG dùng cho đường tạo mới: giữa lúc đếm
// và lúc ghi, một request khác có thể đã insert và hai request nhận cùng một số.
func (s *SequenceService) LegacyDailyNumber(ctx context.Context, prefix, collectionName, dateField string) (string, error) {
	coll, exist := global.RegistryCollections.Get(collectionName)
	if !exist {
		return "", fmt.Errorf("không tìm thấy collection %s: %w", collectionName, common.ErrNotFound)
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	count, err := coll.CountDocuments(ctx, bson.M{
		dateField: bson.M{
			"$gte": startOfDay.UnixMilli(),
			"$lt":  endOfDay.UnixMilli(),
		},
	})
	if err != nil {
		return "", common.ConvertMongoError(err)
	}

	return FormatDailyNumber(prefix, now.Format(dayFormat), count+1), nil
}

// FormatDailyNumber format số thứ tự theo ngày: "<prefix>-<YYYY-MM-DD>-<n>".
func FormatDailyNumber(prefix, day string, ordinal int64) string {
	return fmt.Sprintf("%s-%s-%d", prefix, day, ordinal)
}
