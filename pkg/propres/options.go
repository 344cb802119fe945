package propres

import "log/slog"

// options 属性解析器选项。
type options struct {
	sources                  []Source
	prefix                   string
	suffix                   string
	separator                string
	maxDepth                 int
	ignoreUnresolvableNested bool
	required                 []string
	logger                   *slog.Logger
}

// Option 属性解析器选项函数。
type Option func(*options)

// WithSources 追加属性来源，查找时按追加顺序进行，先命中者生效。
func WithSources(sources ...Source) Option {
	return func(o *options) {
		o.sources = append(o.sources, sources...)
	}
}

// WithPlaceholderPrefix 设置占位符前缀，默认 "${"。
func WithPlaceholderPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithPlaceholderSuffix 设置占位符后缀，默认 "}"。
func WithPlaceholderSuffix(suffix string) Option {
	return func(o *options) {
		o.suffix = suffix
	}
}

// WithValueSeparator 设置默认值分隔符，默认 ":"；空字符串表示禁用默认值语法。
func WithValueSeparator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// WithMaxDepth 设置占位符递归深度上限。
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// WithIgnoreUnresolvableNested 设置属性值中无法解析的嵌套占位符是否原样保留。
//
// 默认 false：读取属性时遇到无法解析的嵌套占位符会返回错误。
// 该选项不影响 [Resolver.ResolvePlaceholders] 与 [Resolver.ResolveRequiredPlaceholders]。
func WithIgnoreUnresolvableNested(ignore bool) Option {
	return func(o *options) {
		o.ignoreUnresolvableNested = ignore
	}
}

// WithRequired 声明必须存在的 key，由 [Resolver.ValidateRequired] 校验。
func WithRequired(keys ...string) Option {
	return func(o *options) {
		o.required = append(o.required, keys...)
	}
}

// WithLogger 设置调试日志输出，默认使用 [slog.Default]。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
