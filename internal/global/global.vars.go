package global

import (
	"meta_helpdesk/config"
	"meta_helpdesk/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	// Nghiệp vụ phiếu hỗ trợ
	Tickets  string // Tên collection cho phiếu hỗ trợ do IT tạo
	Concerns string // Tên collection cho yêu cầu hỗ trợ do người dùng gửi
	Inbox    string // Tên collection cho thông báo inbox của người dùng
	Counters string // Tên collection cho bộ đếm cấp số thứ tự

	// Danh mục tra cứu (lookup tables)
	Departments  string // Tên collection cho phòng ban
	Sites        string // Tên collection cho địa điểm
	Modes        string // Tên collection cho hình thức tiếp nhận concern
	Priorities   string // Tên collection cho mức độ ưu tiên
	Statuses     string // Tên collection cho trạng thái xử lý
	Technicians  string // Tên collection cho kỹ thuật viên
	Groups       string // Tên collection cho nhóm xử lý
	RequestTypes string // Tên collection cho loại yêu cầu
	ConcernTypes string // Tên collection cho loại concern
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{
	Tickets:      "tickets",
	Concerns:     "concerns",
	Inbox:        "inbox_messages",
	Counters:     "counters",
	Departments:  "lookup_departments",
	Sites:        "lookup_sites",
	Modes:        "lookup_modes",
	Priorities:   "lookup_priorities",
	Statuses:     "lookup_statuses",
	Technicians:  "lookup_technicians",
	Groups:       "lookup_groups",
	RequestTypes: "lookup_request_types",
	ConcernTypes: "lookup_concern_types",
}

// LookupCollectionNames trả về danh sách tên collection của 9 bảng danh mục.
// Thứ tự ổn định để đăng ký route và khởi tạo index nhất quán.
func LookupCollectionNames() []string {
	return []string{
		MongoDB_ColNames.Departments,
		MongoDB_ColNames.Sites,
		MongoDB_ColNames.Modes,
		MongoDB_ColNames.Priorities,
		MongoDB_ColNames.Statuses,
		MongoDB_ColNames.Technicians,
		MongoDB_ColNames.Groups,
		MongoDB_ColNames.RequestTypes,
		MongoDB_ColNames.ConcernTypes,
	}
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
