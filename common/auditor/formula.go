package auditor

import "math"

// DefaultTolerance 等式比较的默认容差
const DefaultTolerance = 0.01

// 比较运算符常量
const (
	OperatorEqual        = "="
	OperatorGreater      = ">"
	OperatorLess         = "<"
	OperatorGreaterEqual = ">="
	OperatorLessEqual    = "<="
)

// FormulaResult 公式校验结果
type FormulaResult struct {
	IsValid    bool    `json:"is_valid"`
	LeftSide   float64 `json:"left_side"`
	RightSide  float64 `json:"right_side"`
	Difference float64 `json:"difference"` // 始终为 |left - right|
}

// ValidateFormula 校验一条数值关系
// "=" 以 tolerance 作为绝对差上界（含边界），其余运算符为精确数值比较。
// 未知运算符返回 is_valid=false 而非报错，保证接口对任意输入全定义
func ValidateFormula(left, right float64, operator string, tolerance float64) FormulaResult {
	var isValid bool
	switch operator {
	case OperatorEqual:
		isValid = math.Abs(left-right) <= tolerance
	case OperatorGreater:
		isValid = left > right
	case OperatorLess:
		isValid = left < right
	case OperatorGreaterEqual:
		isValid = left >= right
	case OperatorLessEqual:
		isValid = left <= right
	default:
		isValid = false
	}

	return FormulaResult{
		IsValid:    isValid,
		LeftSide:   left,
		RightSide:  right,
		Difference: math.Abs(left - right),
	}
}
