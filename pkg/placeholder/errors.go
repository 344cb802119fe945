package placeholder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument 表示 API 边界上的参数缺失或非法。
	ErrInvalidArgument = errors.New("placeholder: invalid argument")

	// ErrCircularReference 表示占位符的展开依赖自身。
	ErrCircularReference = errors.New("placeholder: circular reference")

	// ErrUnresolvable 表示占位符无法解析且未开启忽略。
	ErrUnresolvable = errors.New("placeholder: unresolvable placeholder")

	// ErrDepthExceeded 表示递归深度超过上限。
	ErrDepthExceeded = errors.New("placeholder: maximum nesting depth exceeded")
)

// CircularReferenceError 描述一次循环引用。
//
// Chain 为检测到循环时正在展开的名称链，末尾是重复出现的名称。
type CircularReferenceError struct {
	Name  string
	Chain []string
}

func (e *CircularReferenceError) Error() string {
	if len(e.Chain) > 1 {
		return fmt.Sprintf("circular placeholder reference '%s' in property definitions (%s)",
			e.Name, strings.Join(e.Chain, " -> "))
	}

	return fmt.Sprintf("circular placeholder reference '%s' in property definitions", e.Name)
}

func (e *CircularReferenceError) Unwrap() error { return ErrCircularReference }

// UnresolvedError 描述一个无法解析的占位符。
type UnresolvedError struct {
	// Name 为名称内部占位符解析后的名称。
	Name string
	// Text 为出错所在层级的原始文本。
	Text string
	// Offset 为占位符在 Text 中的字节偏移。
	Offset int
	// Suggestions 为相近的已知名称，仅当查找器实现 [Namer] 时填充。
	Suggestions []string
}

func (e *UnresolvedError) Error() string {
	msg := fmt.Sprintf("could not resolve placeholder '%s' in value %q", e.Name, e.Text)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}

	return msg
}

func (e *UnresolvedError) Unwrap() error { return ErrUnresolvable }

// DepthError 在嵌套层数超过 [WithMaxDepth] 时返回。
type DepthError struct {
	Limit int
	Text  string
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("placeholder nesting deeper than %d while resolving %q", e.Limit, e.Text)
}

func (e *DepthError) Unwrap() error { return ErrDepthExceeded }
