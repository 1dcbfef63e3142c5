// Package ticketsvc - Workflow chuyển concern thành ticket.
package ticketsvc

import (
	"context"
	"fmt"

	ticketdto "meta_helpdesk/internal/api/ticket/dto"
	ticketmodels "meta_helpdesk/internal/api/ticket/models"
	"meta_helpdesk/internal/common"
	"meta_helpdesk/internal/logger"
	"meta_helpdesk/internal/notifier"

	"github.com/sirupsen/logrus"
)

// ConvertService thực hiện workflow nhiều bước: tạo ticket từ concern,
// ghi thông báo inbox, gửi email, đánh dấu concern đã chuyển.
//
// Chỉ bước tạo ticket là bắt buộc (một insert atomic). Các bước sau là
// best-effort: lỗi được log warning và KHÔNG rollback ticket — hệ thống chấp
// nhận trạng thái ticket tồn tại mà thiếu thông báo, thay vì mất ticket.
type ConvertService struct {
	tickets  *TicketService
	concerns *ConcernService
	inbox    *InboxService
	notifier *notifier.EmailNotifier
}

// NewConvertService tạo ConvertService mới.
func NewConvertService(email *notifier.EmailNotifier) (*ConvertService, error) {
	tickets, err := NewTicketService()
	if err != nil {
		return nil, fmt.Errorf("tạo TicketService: %w", err)
	}
	concerns, err := NewConcernService()
	if err != nil {
		return nil, fmt.Errorf("tạo ConcernService: %w", err)
	}
	inbox, err := NewInboxService()
	if err != nil {
		return nil, fmt.Errorf("tạo InboxService: %w", err)
	}
	return &ConvertService{
		tickets:  tickets,
		concerns: concerns,
		inbox:    inbox,
		notifier: email,
	}, nil
}

// Convert chuyển một concern (theo ObjectID hoặc số concern) thành ticket.
func (s *ConvertService) Convert(ctx context.Context, idOrNumber string) (*ticketmodels.Ticket, error) {
	concern, err := s.concerns.FindByIDOrNumber(ctx, idOrNumber)
	if err != nil {
		return nil, err
	}
	if concern.ReadStatus == ticketmodels.ConcernStatusConverted {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Concern %s đã được chuyển thành ticket", concern.ConcernNumber),
			common.StatusConflict,
			nil,
		)
	}

	// Bước 1 (bắt buộc): tạo ticket — số phiếu mới từ bộ đếm atomic
	ticket, err := s.tickets.CreateTicket(ctx, &ticketdto.TicketCreateInput{
		Fullname:    concern.Fullname,
		Department:  concern.Department,
		RequestType: concern.ConcernType,
		Remarks:     concern.Remarks,
	})
	if err != nil {
		return nil, err
	}

	log := logger.GetAppLogger().WithFields(logrus.Fields{
		"module":        "ticket",
		"concernNumber": concern.ConcernNumber,
		"ticketNumber":  ticket.TicketNumber,
	})

	// Bước 2 (best-effort): thông báo inbox
	if _, err := s.inbox.PostTicketCreated(ctx, ticket); err != nil {
		log.WithField("error", err.Error()).Warn("Ghi thông báo inbox thất bại, ticket vẫn được giữ")
	}

	// Bước 3 (best-effort): email cho IT
	if s.notifier != nil {
		_ = s.notifier.TicketCreated(ctx, ticket) // notifier tự log warning khi lỗi
	}

	// Bước 4 (best-effort): đánh dấu concern đã chuyển
	if err := s.concerns.markConverted(ctx, concern.ID, ticket.ID); err != nil {
		log.WithField("error", err.Error()).Warn("Đánh dấu concern đã chuyển thất bại, ticket vẫn được giữ")
	}

	return ticket, nil
}
