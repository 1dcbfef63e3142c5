// Package notifier gửi thông báo email cho IT khi có ticket mới.
// Mọi lỗi gửi mail đều non-fatal: log warning rồi tiếp tục, không chặn nghiệp vụ.
package notifier

import (
	"context"
	"fmt"
	"html"
	"strings"

	"meta_helpdesk/config"
	ticketmodels "meta_helpdesk/internal/api/ticket/models"
	"meta_helpdesk/internal/logger"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// EmailNotifier gửi mail tóm tắt ticket qua SMTP.
type EmailNotifier struct {
	cfg     *config.Configuration
	enabled bool
}

// NewEmailNotifier tạo EmailNotifier từ cấu hình server.
// Thiếu SMTP host hoặc địa chỉ nhận → notifier bị tắt (send trở thành no-op).
func NewEmailNotifier(cfg *config.Configuration) *EmailNotifier {
	enabled := cfg.SMTPHost != "" && cfg.SMTPNotifyTo != ""
	if !enabled {
		logger.GetAppLogger().WithField("module", "notifier").Info("Chưa cấu hình SMTP, tắt thông báo email")
	}
	return &EmailNotifier{cfg: cfg, enabled: enabled}
}

// Enabled cho biết notifier có đang hoạt động không.
func (n *EmailNotifier) Enabled() bool {
	return n.enabled
}

// TicketCreated gửi mail tóm tắt tới hộp thư IT khi một ticket mới được tạo.
// Gửi bị hủy khi ctx bị cancel (SMTP có thể treo lâu hơn request).
func (n *EmailNotifier) TicketCreated(ctx context.Context, ticket *ticketmodels.Ticket) error {
	if !n.enabled {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf("[Helpdesk] Ticket mới %s", ticket.TicketNumber)

	msg := gomail.NewMessage()
	from := n.cfg.SMTPFrom
	if from == "" {
		from = n.cfg.SMTPUsername
	}
	msg.SetHeader("From", from)
	msg.SetHeader("To", splitRecipients(n.cfg.SMTPNotifyTo)...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", buildTicketBody(ticket))

	dialer := gomail.NewDialer(n.cfg.SMTPHost, n.cfg.SMTPPort, n.cfg.SMTPUsername, n.cfg.SMTPPassword)
	errCh := make(chan error, 1)
	go func() {
		errCh <- dialer.DialAndSend(msg)
	}()

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case err = <-errCh:
	}
	if err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"module":       "notifier",
			"ticketNumber": ticket.TicketNumber,
			"error":        err.Error(),
		}).Warn("Gửi email thông báo ticket thất bại")
		return err
	}
	return nil
}

// buildTicketBody dựng body HTML của mail. Dữ liệu ticket do người dùng nhập
// nên phải escape trước khi nhúng vào HTML.
func buildTicketBody(ticket *ticketmodels.Ticket) string {
	esc := html.EscapeString
	return fmt.Sprintf(
		`<p>Ticket mới vừa được tạo:</p>
<table cellpadding="4">
<tr><td><b>Số phiếu</b></td><td>%s</td></tr>
<tr><td><b>Người yêu cầu</b></td><td>%s</td></tr>
<tr><td><b>Phòng ban</b></td><td>%s</td></tr>
<tr><td><b>Loại yêu cầu</b></td><td>%s</td></tr>
<tr><td><b>Trạng thái</b></td><td>%s</td></tr>
<tr><td><b>Nội dung</b></td><td>%s</td></tr>
</table>`,
		esc(ticket.TicketNumber), esc(ticket.Fullname), esc(ticket.Department),
		esc(ticket.RequestType), esc(ticket.Status), esc(ticket.Remarks),
	)
}

// splitRecipients tách danh sách người nhận phân cách bằng dấu phẩy.
func splitRecipients(raw string) []string {
	parts := strings.Split(raw, ",")
	recipients := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			recipients = append(recipients, p)
		}
	}
	return recipients
}
