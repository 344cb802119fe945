package placeholder

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultMaxDepth 为默认的递归深度上限。
const DefaultMaxDepth = 128

// Helper 保存一套不可变的占位符配置，并执行解析。
type Helper struct {
	prefix             string
	suffix             string
	simplePrefix       string // 仅用于统计嵌套深度的短前缀
	separator          string // 为空表示不支持默认值语法
	ignoreUnresolvable bool
	maxDepth           int
	logger             *slog.Logger
}

// options 解析器构造选项。
type options struct {
	separator          string
	ignoreUnresolvable bool
	maxDepth           int
	logger             *slog.Logger
}

// Option 解析器构造选项函数。
type Option func(*options)

// WithValueSeparator 启用默认值语法，sep 为名称与默认值之间的分隔符。
//
// 空字符串表示不启用。
func WithValueSeparator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// WithIgnoreUnresolvable 设置是否原样保留无法解析的占位符（默认 true）。
//
// 设为 false 时，遇到无法解析的占位符会返回 [UnresolvedError]。
func WithIgnoreUnresolvable(ignore bool) Option {
	return func(o *options) {
		o.ignoreUnresolvable = ignore
	}
}

// WithMaxDepth 设置递归深度上限，n <= 0 时使用 [DefaultMaxDepth]。
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// WithLogger 设置调试日志输出，默认使用 [slog.Default]。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New 使用前缀和后缀创建 [Helper]。
//
// 前缀或后缀为空时返回 [ErrInvalidArgument]。
func New(prefix, suffix string, opts ...Option) (*Helper, error) {
	if prefix == "" {
		return nil, fmt.Errorf("%w: prefix must not be empty", ErrInvalidArgument)
	}
	if suffix == "" {
		return nil, fmt.Errorf("%w: suffix must not be empty", ErrInvalidArgument)
	}

	o := &options{ignoreUnresolvable: true}
	for _, opt := range opts {
		opt(o)
	}
	if o.maxDepth <= 0 {
		o.maxDepth = DefaultMaxDepth
	}

	simplePrefix := prefix
	if opener, ok := simplePrefixFor(suffix); ok && strings.HasSuffix(prefix, opener) {
		simplePrefix = opener
	}

	return &Helper{
		prefix:             prefix,
		suffix:             suffix,
		simplePrefix:       simplePrefix,
		separator:          o.separator,
		ignoreUnresolvable: o.ignoreUnresolvable,
		maxDepth:           o.maxDepth,
		logger:             o.logger,
	}, nil
}

// MustNew 调用 [New] 并在失败时 panic，适合包级变量初始化。
func MustNew(prefix, suffix string, opts ...Option) *Helper {
	h, err := New(prefix, suffix, opts...)
	if err != nil {
		panic(fmt.Sprintf("placeholder: %v", err))
	}

	return h
}

// Prefix 返回占位符前缀。
func (h *Helper) Prefix() string { return h.prefix }

// Suffix 返回占位符后缀。
func (h *Helper) Suffix() string { return h.suffix }

// ValueSeparator 返回默认值分隔符，未启用时为空。
func (h *Helper) ValueSeparator() string { return h.separator }

// IgnoreUnresolvable 返回是否忽略无法解析的占位符。
func (h *Helper) IgnoreUnresolvable() bool { return h.ignoreUnresolvable }

func (h *Helper) log() *slog.Logger {
	if h.logger != nil {
		return h.logger
	}

	return slog.Default()
}

// simplePrefixFor 返回常见单字符后缀对应的开括号。
func simplePrefixFor(suffix string) (string, bool) {
	switch suffix {
	case "}":
		return "{", true
	case "]":
		return "[", true
	case ")":
		return "(", true
	default:
		return "", false
	}
}

// findEnd 返回 start 处前缀对应的后缀位置，找不到时返回 -1。
//
// 嵌套层数按短前缀统计，因此 ${a{b}c} 中的 {b} 不会提前闭合。
func (h *Helper) findEnd(buf string, start int) int {
	depth := 0
	for i := start + len(h.prefix); i < len(buf); {
		switch {
		case strings.HasPrefix(buf[i:], h.suffix):
			if depth == 0 {
				return i
			}
			depth--
			i += len(h.suffix)
		case strings.HasPrefix(buf[i:], h.simplePrefix):
			depth++
			i += len(h.simplePrefix)
		default:
			i++
		}
	}

	return -1
}
