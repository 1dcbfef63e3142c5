// Package ticketsvc - Test tạo phiếu, cấp số và workflow chuyển concern.
package ticketsvc

import (
	"context"
	"os"
	"testing"
	"time"

	basesvc "meta_helpdesk/internal/api/base/service"
	seqsvc "meta_helpdesk/internal/api/sequence/service"
	ticketdto "meta_helpdesk/internal/api/ticket/dto"
	ticketmodels "meta_helpdesk/internal/api/ticket/models"
	"meta_helpdesk/internal/common"
	"meta_helpdesk/internal/global"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// setupTicketCollections kết nối MongoDB test và đăng ký các collection
// tickets/concerns/inbox/counters vào registry. Skip khi không có MONGODB_TEST_URI.
func setupTicketCollections(t *testing.T) {
	t.Helper()

	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("bỏ qua: cần MONGODB_TEST_URI trỏ tới MongoDB test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, mongoopts.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	db := client.Database("meta_helpdesk_test")
	for _, name := range []string{
		global.MongoDB_ColNames.Tickets,
		global.MongoDB_ColNames.Concerns,
		global.MongoDB_ColNames.Inbox,
		global.MongoDB_ColNames.Counters,
	} {
		coll := db.Collection(name)
		require.NoError(t, coll.Drop(ctx))
		_, err := global.RegistryCollections.Register(name, coll)
		require.NoError(t, err)
	}
}

func TestCreateTicket_AssignsDailyNumberAndDefaults(t *testing.T) {
	setupTicketCollections(t)
	svc, err := NewTicketService()
	require.NoError(t, err)

	ctx := context.Background()
	first, err := svc.CreateTicket(ctx, &ticketdto.TicketCreateInput{
		Fullname:    "Nguyễn Văn A",
		Department:  "Kế toán",
		RequestType: "Phần mềm",
		Remarks:     "Không mở được phần mềm kế toán",
	})
	require.NoError(t, err)

	day := time.Now().Format("2006-01-02")
	assert.Equal(t, seqsvc.FormatDailyNumber(TicketNumberPrefix, day, 1), first.TicketNumber)
	assert.Equal(t, global.StatusPending, first.Status, "status rỗng phải default Pending")
	assert.False(t, first.ID.IsZero())
	assert.NotZero(t, first.CreatedAt)

	second, err := svc.CreateTicket(ctx, &ticketdto.TicketCreateInput{
		Fullname:    "Trần Thị B",
		Department:  "Nhân sự",
		RequestType: "Phần cứng",
		Remarks:     "Máy in không hoạt động",
	})
	require.NoError(t, err)
	assert.Equal(t, seqsvc.FormatDailyNumber(TicketNumberPrefix, day, 2), second.TicketNumber)
}

func TestCreateTicket_InvalidStatusRejected(t *testing.T) {
	setupTicketCollections(t)
	svc, err := NewTicketService()
	require.NoError(t, err)

	_, err = svc.CreateTicket(context.Background(), &ticketdto.TicketCreateInput{
		Fullname:    "Nguyễn Văn A",
		Department:  "Kế toán",
		RequestType: "Phần mềm",
		Remarks:     "Test",
		Status:      "Closed",
	})
	assert.ErrorIs(t, err, common.ErrInvalidState)

	count, err := svc.CountDocuments(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, count, "status sai không được insert gì")
}

func TestFindByIDOrNumber_DualLookup(t *testing.T) {
	setupTicketCollections(t)
	svc, err := NewTicketService()
	require.NoError(t, err)

	ctx := context.Background()
	created, err := svc.CreateTicket(ctx, &ticketdto.TicketCreateInput{
		Fullname:    "Nguyễn Văn A",
		Department:  "IT",
		RequestType: "Mạng",
		Remarks:     "Mất kết nối",
	})
	require.NoError(t, err)

	byID, err := svc.FindByIDOrNumber(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.TicketNumber, byID.TicketNumber)

	byNumber, err := svc.FindByIDOrNumber(ctx, created.TicketNumber)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byNumber.ID)

	_, err = svc.FindByIDOrNumber(ctx, "DSI-2020-01-01-999")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateByIDOrNumber_ValidatesStatusAndKeepsOtherFields(t *testing.T) {
	setupTicketCollections(t)
	svc, err := NewTicketService()
	require.NoError(t, err)

	ctx := context.Background()
	created, err := svc.CreateTicket(ctx, &ticketdto.TicketCreateInput{
		Fullname:    "Nguyễn Văn A",
		Department:  "IT",
		RequestType: "Mạng",
		Remarks:     "Mất kết nối",
	})
	require.NoError(t, err)

	_, err = svc.UpdateByIDOrNumber(ctx, created.TicketNumber, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": "Done"},
	})
	assert.ErrorIs(t, err, common.ErrInvalidState)

	updated, err := svc.UpdateByIDOrNumber(ctx, created.TicketNumber, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": global.StatusOngoing, "technician": "Lê Văn C"},
	})
	require.NoError(t, err)
	assert.Equal(t, global.StatusOngoing, updated.Status)
	assert.Equal(t, "Lê Văn C", updated.Technician)
	assert.Equal(t, created.Remarks, updated.Remarks, "field không gửi lên phải giữ nguyên")
}

func TestConvert_CreatesTicketInboxAndMarksConcern(t *testing.T) {
	setupTicketCollections(t)

	concernSvc, err := NewConcernService()
	require.NoError(t, err)
	inboxSvc, err := NewInboxService()
	require.NoError(t, err)
	convertSvc, err := NewConvertService(nil) // không gửi email trong test
	require.NoError(t, err)

	ctx := context.Background()
	concern, err := concernSvc.CreateConcern(ctx, &ticketdto.ConcernCreateInput{
		Fullname:    "Phạm Văn D",
		Department:  "Kho",
		Mode:        "Email",
		ConcernType: "Phần cứng",
		Remarks:     "Máy quét mã vạch hỏng",
	})
	require.NoError(t, err)
	assert.Equal(t, ticketmodels.ConcernStatusNew, concern.ReadStatus)

	ticket, err := convertSvc.Convert(ctx, concern.ConcernNumber)
	require.NoError(t, err)
	assert.Equal(t, concern.Fullname, ticket.Fullname)
	assert.Equal(t, concern.Department, ticket.Department)
	assert.Equal(t, concern.ConcernType, ticket.RequestType)
	assert.Equal(t, concern.Remarks, ticket.Remarks)
	assert.Equal(t, global.StatusPending, ticket.Status)

	day := time.Now().Format("2006-01-02")
	assert.Equal(t, seqsvc.FormatDailyNumber(TicketNumberPrefix, day, 1), ticket.TicketNumber)

	// Concern phải được đánh dấu Converted và trỏ tới ticket mới
	// (markConverted là best-effort nhưng ở happy path phải thành công)
	afterConvert, err := concernSvc.FindByIDOrNumber(ctx, concern.ConcernNumber)
	require.NoError(t, err)
	assert.Equal(t, ticketmodels.ConcernStatusConverted, afterConvert.ReadStatus)
	assert.Equal(t, ticket.ID, afterConvert.ConvertedTicketID)

	// Inbox phải có đúng một thông báo cho ticket mới
	messages, err := inboxSvc.ListMessages(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, messages.Items, 1)
	assert.Equal(t, ticket.TicketNumber, messages.Items[0].TicketNumber)
	assert.False(t, messages.Items[0].Read)
}

func TestConvert_AlreadyConvertedRejected(t *testing.T) {
	setupTicketCollections(t)

	concernSvc, err := NewConcernService()
	require.NoError(t, err)
	convertSvc, err := NewConvertService(nil)
	require.NoError(t, err)

	ctx := context.Background()
	concern, err := concernSvc.CreateConcern(ctx, &ticketdto.ConcernCreateInput{
		Fullname:   "Phạm Văn D",
		Department: "Kho",
		Remarks:    "Máy quét mã vạch hỏng",
	})
	require.NoError(t, err)

	_, err = convertSvc.Convert(ctx, concern.ConcernNumber)
	require.NoError(t, err)

	_, err = convertSvc.Convert(ctx, concern.ConcernNumber)
	require.Error(t, err)
	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.StatusConflict, customErr.StatusCode)

	// Chỉ một ticket được tạo
	ticketSvc, err := NewTicketService()
	require.NoError(t, err)
	count, err := ticketSvc.CountDocuments(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMarkRead_SetsReadFlag(t *testing.T) {
	setupTicketCollections(t)

	inboxSvc, err := NewInboxService()
	require.NoError(t, err)

	ctx := context.Background()
	msg, err := inboxSvc.PostTicketCreated(ctx, &ticketmodels.Ticket{
		TicketNumber: "DSI-2026-08-29-1",
		Fullname:     "Nguyễn Văn A",
		Department:   "IT",
	})
	require.NoError(t, err)
	assert.False(t, msg.Read)

	marked, err := inboxSvc.MarkRead(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, marked.Read)
}

func TestDeleteReadOlderThan_OnlyRemovesOldReadMessages(t *testing.T) {
	setupTicketCollections(t)

	inboxSvc, err := NewInboxService()
	require.NoError(t, err)

	ctx := context.Background()
	oldRead, err := inboxSvc.PostTicketCreated(ctx, &ticketmodels.Ticket{TicketNumber: "DSI-2026-08-01-1"})
	require.NoError(t, err)
	_, err = inboxSvc.MarkRead(ctx, oldRead.ID)
	require.NoError(t, err)

	unread, err := inboxSvc.PostTicketCreated(ctx, &ticketmodels.Ticket{TicketNumber: "DSI-2026-08-01-2"})
	require.NoError(t, err)

	// Cutoff trong tương lai: mọi thông báo ĐÃ ĐỌC đều quá hạn
	deleted, err := inboxSvc.DeleteReadOlderThan(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Thông báo chưa đọc phải còn nguyên
	remaining, err := inboxSvc.ListMessages(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, remaining.Items, 1)
	assert.Equal(t, unread.ID, remaining.Items[0].ID)
}
