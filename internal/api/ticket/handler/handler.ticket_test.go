// Package tickethdl - Test tầng handler: validate input và parse query,
// không cần MongoDB thật (validate fail trước khi chạm database).
package tickethdl

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"meta_helpdesk/internal/global"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// newTicketTestApp dựng app Fiber với route POST /tickets. Collection được
// đăng ký từ client chưa dial — driver chỉ kết nối khi có thao tác thật,
// nên các test chỉ đi qua đường validate không cần MongoDB.
func newTicketTestApp(t *testing.T) *fiber.App {
	t.Helper()

	global.InitValidator()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, mongoopts.Client().ApplyURI("mongodb://127.0.0.1:1"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	db := client.Database("meta_helpdesk_test")
	for _, name := range []string{
		global.MongoDB_ColNames.Tickets,
		global.MongoDB_ColNames.Concerns,
		global.MongoDB_ColNames.Counters,
	} {
		_, err := global.RegistryCollections.Register(name, db.Collection(name))
		require.NoError(t, err)
	}

	handler, err := NewTicketHandler()
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/tickets", handler.HandleCreate)
	return app
}

func TestHandleCreate_MissingRemarksRejected(t *testing.T) {
	app := newTicketTestApp(t)

	body := `{"fullname":"Nguyễn Văn A","department":"Kế toán","requesttype":"Phần mềm"}`
	req := httptest.NewRequest("POST", "/tickets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleCreate_InvalidStatusRejected(t *testing.T) {
	app := newTicketTestApp(t)

	body := `{"fullname":"Nguyễn Văn A","department":"Kế toán","requesttype":"Phần mềm","remarks":"Test","status":"Closed"}`
	req := httptest.NewRequest("POST", "/tickets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleCreate_MalformedJSONRejected(t *testing.T) {
	app := newTicketTestApp(t)

	req := httptest.NewRequest("POST", "/tickets", strings.NewReader(`{"fullname":`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleCreate_XSSPayloadRejected(t *testing.T) {
	app := newTicketTestApp(t)

	body := `{"fullname":"<script>alert(1)</script>","department":"IT","requesttype":"Khác","remarks":"Test"}`
	req := httptest.NewRequest("POST", "/tickets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestParsePagination_DefaultsAndClamps(t *testing.T) {
	app := fiber.New()

	var gotPage, gotLimit int64
	app.Get("/items", func(c fiber.Ctx) error {
		gotPage, gotLimit = parsePagination(c)
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		query string
		page  int64
		limit int64
	}{
		{"", 1, 10},
		{"?page=3&limit=25", 3, 25},
		{"?page=0&limit=-5", 1, 10},
		{"?page=abc&limit=xyz", 1, 10},
		{"?limit=500", 1, 10},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", "/items"+tc.query, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, tc.page, gotPage, "query %q", tc.query)
		assert.Equal(t, tc.limit, gotLimit, "query %q", tc.query)
	}
}
