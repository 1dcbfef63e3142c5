package notifier

import (
	"context"
	"testing"

	"meta_helpdesk/config"
	ticketmodels "meta_helpdesk/internal/api/ticket/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailNotifier_DisabledWithoutSMTPConfig(t *testing.T) {
	n := NewEmailNotifier(&config.Configuration{})
	assert.False(t, n.Enabled())

	// Notifier tắt: gửi là no-op, không lỗi
	err := n.TicketCreated(context.Background(), &ticketmodels.Ticket{TicketNumber: "DSI-2026-08-29-1"})
	assert.NoError(t, err)
}

// Dữ liệu người dùng nhập phải được escape trước khi nhúng vào HTML của mail.
func TestBuildTicketBody_EscapesUserInput(t *testing.T) {
	body := buildTicketBody(&ticketmodels.Ticket{
		TicketNumber: "DSI-2026-08-29-1",
		Fullname:     `Nguyễn <b>Văn</b> A`,
		Department:   "Kế toán & Tài chính",
		RequestType:  "Phần mềm",
		Status:       "Pending",
		Remarks:      `"quotes" <img src=x>`,
	})

	assert.NotContains(t, body, "<b>Văn</b>")
	assert.NotContains(t, body, "<img")
	assert.Contains(t, body, "&lt;b&gt;Văn&lt;/b&gt;")
	assert.Contains(t, body, "Kế toán &amp; Tài chính")
	assert.Contains(t, body, "&lt;img src=x&gt;")
	assert.Contains(t, body, "DSI-2026-08-29-1")
}

// Context đã bị cancel phải dừng việc gửi ngay, không chờ SMTP.
func TestTicketCreated_CancelledContext(t *testing.T) {
	n := NewEmailNotifier(&config.Configuration{
		SMTPHost:     "127.0.0.1",
		SMTPPort:     1,
		SMTPNotifyTo: "it@example.com",
	})
	require.True(t, n.Enabled())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.TicketCreated(ctx, &ticketmodels.Ticket{TicketNumber: "DSI-2026-08-29-1"})
	assert.ErrorIs(t, err, context.Canceled)
}
