package worker

import (
	"context"
	"time"

	ticketsvc "meta_helpdesk/internal/api/ticket/service"
	"meta_helpdesk/internal/logger"
)

// InboxCleanupWorker worker dọn định kỳ các thông báo inbox đã đọc quá hạn giữ.
// Thông báo chưa đọc không bao giờ bị xóa tự động.
type InboxCleanupWorker struct {
	inboxService  *ticketsvc.InboxService
	interval      time.Duration // Chu kỳ giữa các lần chạy
	retentionDays int           // Số ngày giữ thông báo đã đọc
}

// NewInboxCleanupWorker tạo mới InboxCleanupWorker.
// Tham số:
//   - interval: Chu kỳ giữa các lần chạy (tối thiểu 1 phút, mặc định 24 giờ)
//   - retentionDays: Số ngày giữ thông báo đã đọc (mặc định 30 ngày)
func NewInboxCleanupWorker(interval time.Duration, retentionDays int) (*InboxCleanupWorker, error) {
	inboxService, err := ticketsvc.NewInboxService()
	if err != nil {
		return nil, err
	}

	if interval < time.Minute {
		interval = 24 * time.Hour
	}
	if retentionDays <= 0 {
		retentionDays = 30
	}

	return &InboxCleanupWorker{
		inboxService:  inboxService,
		interval:      interval,
		retentionDays: retentionDays,
	}, nil
}

// Start chạy worker cho đến khi context bị hủy.
func (w *InboxCleanupWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":      w.interval.String(),
		"retentionDays": w.retentionDays,
	}).Info("🧹 [INBOX_CLEANUP] Starting Inbox Cleanup Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🧹 [INBOX_CLEANUP] Inbox Cleanup Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🧹 [INBOX_CLEANUP] Panic khi dọn inbox, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				cutoff := time.Now().AddDate(0, 0, -w.retentionDays)
				deleted, err := w.inboxService.DeleteReadOlderThan(ctx, cutoff)
				if err != nil {
					log.WithError(err).Error("🧹 [INBOX_CLEANUP] Dọn inbox thất bại")
					return
				}
				if deleted > 0 {
					log.WithFields(map[string]interface{}{
						"deleted": deleted,
						"cutoff":  cutoff.Format(time.RFC3339),
					}).Info("🧹 [INBOX_CLEANUP] Đã xóa thông báo đã đọc quá hạn")
				}
			}()
		}
	}
}
