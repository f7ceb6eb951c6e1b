package etprimitive

// 基础类型和通用值对象

// Pagination 分页参数
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}
