package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeForHTTPStatus(t *testing.T) {
	cases := []struct {
		status int
		code   string
	}{
		{StatusBadRequest, ErrCodeValidationInput.Code},
		{StatusUnauthorized, ErrCodeAuthToken.Code},
		{StatusForbidden, ErrCodeAuthRole.Code},
		{StatusNotFound, ErrCodeDatabaseQuery.Code},
		{StatusConflict, ErrCodeDatabaseQuery.Code},
		{StatusInternalServerError, ErrCodeInternalServer.Code},
		{418, ErrCodeInternalServer.Code},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, ErrorCodeForHTTPStatus(tc.status).Code, "status %d", tc.status)
	}
}

// Các mã AUTH phải được định nghĩa đầy đủ vì error handler và middleware
// tham chiếu trực tiếp tới chúng.
func TestAuthErrorCodesDefined(t *testing.T) {
	assert.Equal(t, "AUTH_001", ErrCodeAuthToken.Code)
	assert.Equal(t, "AUTH_002", ErrCodeAuthRole.Code)
	assert.Equal(t, "Authentication", ErrCodeAuthRole.Category)
}
