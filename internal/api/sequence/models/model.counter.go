// Package models - Counter thuộc domain sequence (counters).
// Bộ đếm cấp số thứ tự cho ticket/concern number.
package models

// Counter lưu giá trị hiện tại của một bộ đếm (counters).
// _id là tên bộ đếm, ví dụ "ticket:2026-08-29". Mỗi ngày một document mới,
// giá trị tăng dần từ 1 qua $inc atomic.
type Counter struct {
	ID            string `json:"id" bson:"_id"`
	SequenceValue int64  `json:"sequenceValue" bson:"sequence_value"`
}
