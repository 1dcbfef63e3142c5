package events

import (
	"context"
	"testing"
	"time"

	"meta_helpdesk/internal/logger"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Handler panic phải được log qua error logger và không chặn các handler khác.
func TestEmitDataChanged_PanicLoggedAndIsolated(t *testing.T) {
	hook := logrustest.NewLocal(logger.GetErrorLogger())
	defer hook.Reset()

	survived := make(chan struct{})
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		panic("hỏng")
	})
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		close(survived)
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "tickets",
		Operation:      OpInsert,
	})

	select {
	case <-survived:
	case <-time.After(2 * time.Second):
		t.Fatal("handler bình thường không chạy sau khi handler khác panic")
	}

	// Handler panic chạy trong goroutine riêng, chờ log xuất hiện
	deadline := time.Now().Add(2 * time.Second)
	entries := hook.AllEntries()
	for len(entries) == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
		entries = hook.AllEntries()
	}
	require.NotEmpty(t, entries, "panic của handler phải được ghi vào error log")
	entry := entries[0]
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "tickets", entry.Data["collection"])
	assert.Equal(t, OpInsert, entry.Data["operation"])
	assert.Equal(t, "hỏng", entry.Data["panic"])
}

func TestGetStringField(t *testing.T) {
	type doc struct {
		TicketNumber string
		Count        int
	}

	assert.Equal(t, "DSI-2026-08-29-1", GetStringField(doc{TicketNumber: "DSI-2026-08-29-1"}, "TicketNumber"))
	assert.Equal(t, "DSI-2026-08-29-1", GetStringField(&doc{TicketNumber: "DSI-2026-08-29-1"}, "TicketNumber"))
	assert.Equal(t, "", GetStringField(doc{}, "Missing"))
	assert.Equal(t, "", GetStringField(doc{Count: 1}, "Count"))
	assert.Equal(t, "", GetStringField(nil, "TicketNumber"))
	assert.Equal(t, "", GetStringField((*doc)(nil), "TicketNumber"))
}
