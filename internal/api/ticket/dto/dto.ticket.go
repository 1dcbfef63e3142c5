// Package dto - DTO cho domain ticket.
package dto

// TicketCreateInput dữ liệu tạo phiếu hỗ trợ mới.
// ticketNumber, createdAt do server tự cấp — client không gửi.
type TicketCreateInput struct {
	Fullname    string `json:"fullname" validate:"required,no_xss" maxLength:"200"`
	Department  string `json:"department" validate:"required,no_xss"`
	Site        string `json:"site,omitempty" validate:"omitempty,no_xss"`
	RequestType string `json:"requesttype" validate:"required,no_xss"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,no_xss"`
	Technician  string `json:"technician,omitempty" validate:"omitempty,no_xss"`
	Group       string `json:"group,omitempty" validate:"omitempty,no_xss"`
	Remarks     string `json:"remarks" validate:"required" maxLength:"4000"`
	Status      string `json:"status,omitempty" validate:"omitempty,ticket_status"`
}

// TicketUpdateInput dữ liệu cập nhật phiếu hỗ trợ (partial update).
// Chỉ field được gửi lên mới được ghi đè.
type TicketUpdateInput struct {
	Fullname    string `json:"fullname,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	Department  string `json:"department,omitempty" validate:"omitempty,no_xss"`
	Site        string `json:"site,omitempty" validate:"omitempty,no_xss"`
	RequestType string `json:"requesttype,omitempty" validate:"omitempty,no_xss"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,no_xss"`
	Technician  string `json:"technician,omitempty" validate:"omitempty,no_xss"`
	Group       string `json:"group,omitempty" validate:"omitempty,no_xss"`
	Remarks     string `json:"remarks,omitempty" maxLength:"4000"`
	Status      string `json:"status,omitempty" validate:"omitempty,ticket_status"`
}

// ConcernCreateInput dữ liệu người dùng gửi concern mới.
type ConcernCreateInput struct {
	Fullname    string `json:"fullname" validate:"required,no_xss" maxLength:"200"`
	Department  string `json:"department" validate:"required,no_xss"`
	Mode        string `json:"mode,omitempty" validate:"omitempty,no_xss"`
	ConcernType string `json:"concernType,omitempty" validate:"omitempty,no_xss"`
	Remarks     string `json:"remarks" validate:"required" maxLength:"4000"`
}

// ConcernUpdateInput dữ liệu cập nhật concern (partial update).
type ConcernUpdateInput struct {
	Fullname    string `json:"fullname,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	Department  string `json:"department,omitempty" validate:"omitempty,no_xss"`
	Mode        string `json:"mode,omitempty" validate:"omitempty,no_xss"`
	ConcernType string `json:"concernType,omitempty" validate:"omitempty,no_xss"`
	Remarks     string `json:"remarks,omitempty" maxLength:"4000"`
	ReadStatus  string `json:"readStatus,omitempty" validate:"omitempty,oneof=New Read Converted"`
}

// TicketCreatedResponse envelope trả về khi tạo ticket/concern thành công.
type TicketCreatedResponse struct {
	Success      bool   `json:"success"`
	TicketNumber string `json:"ticketNumber,omitempty"`
	InsertedID   string `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}
