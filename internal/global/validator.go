package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Các trạng thái xử lý hợp lệ của phiếu hỗ trợ và concern.
// Mọi đường ghi dữ liệu đều validate qua tag "ticket_status".
const (
	StatusPending  = "Pending"
	StatusOngoing  = "Ongoing"
	StatusFinished = "Finished"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("no_sql_injection", validateNoSQLInjection)
	_ = Validate.RegisterValidation("ticket_status", validateTicketStatus)
}

// IsValidStatus kiểm tra một trạng thái có nằm trong bộ trạng thái hợp lệ không
func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusOngoing, StatusFinished:
		return true
	}
	return false
}

// validateTicketStatus kiểm tra trạng thái phiếu (Pending/Ongoing/Finished).
// Chuỗi rỗng được cho phép để dùng kèm omitempty; service sẽ gán mặc định.
func validateTicketStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return IsValidStatus(value)
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"fromCharCode",
		"window.location",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateNoSQLInjection kiểm tra SQL Injection
func validateNoSQLInjection(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	sqlPatterns := []string{
		"'",
		";",
		"--",
		"/*",
		"*/",
		"xp_",
		"SELECT",
		"DROP",
		"DELETE",
		"UPDATE",
		"INSERT",
		"UNION",
		"OR 1=1",
		"OR '1'='1",
		"OR 'a'='a",
		"OR 1 = 1",
		"WAITFOR",
		"DELAY",
		"BENCHMARK",
	}

	value = strings.ToUpper(value)
	for _, pattern := range sqlPatterns {
		if strings.Contains(value, strings.ToUpper(pattern)) {
			return false
		}
	}
	return true
}
