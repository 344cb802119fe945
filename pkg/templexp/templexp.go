package templexp

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/lwmacct/251207-go-pkg-placeholder/pkg/placeholder"
)

// ═══════════════════════════════════════════════════════════════════════════
// 模板数据对象
// ═══════════════════════════════════════════════════════════════════════════

// newTemplateData 生成当前环境变量快照，并叠加 extra。
//
// 该快照仅用于本次展开；extra 中的同名变量覆盖环境变量。
func newTemplateData(useEnv bool, extra map[string]string) placeholder.MapResolver {
	vars := make(placeholder.MapResolver)
	if useEnv {
		for _, env := range os.Environ() {
			if name, value, ok := strings.Cut(env, "="); ok {
				vars[name] = value
			}
		}
	}
	maps.Copy(vars, extra)

	return vars
}

// ═══════════════════════════════════════════════════════════════════════════
// 展开器
// ═══════════════════════════════════════════════════════════════════════════

// Separator 为默认值语法 ${VAR:-default} 中的分隔符。
const Separator = ":-"

// Expander 对配置文本执行 ${VAR} / ${VAR:-default} 展开。
type Expander struct {
	helper *placeholder.Helper
	vars   map[string]string
	useEnv bool
}

type options struct {
	vars   map[string]string
	strict bool
	noEnv  bool
}

// Option 展开器选项函数。
type Option func(*options)

// WithVars 追加变量，优先于同名环境变量。
func WithVars(vars map[string]string) Option {
	return func(o *options) {
		if o.vars == nil {
			o.vars = make(map[string]string, len(vars))
		}
		maps.Copy(o.vars, vars)
	}
}

// WithStrict 让无法解析的变量返回错误，而不是原样保留。
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithoutEnv 不读取进程环境变量，仅使用 [WithVars] 提供的变量。
func WithoutEnv() Option {
	return func(o *options) {
		o.noEnv = true
	}
}

// New 创建展开器。
func New(opts ...Option) *Expander {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return &Expander{
		helper: placeholder.MustNew("${", "}",
			placeholder.WithValueSeparator(Separator),
			placeholder.WithIgnoreUnresolvable(!o.strict),
		),
		vars:   o.vars,
		useEnv: !o.noEnv,
	}
}

// Expand 展开 text 中的变量引用。
//
// 每次调用都会重新读取环境变量快照。
func (e *Expander) Expand(text string) (string, error) {
	if !e.helper.HasPlaceholder(text) {
		return text, nil
	}

	out, err := e.helper.Resolve(text, newTemplateData(e.useEnv, e.vars))
	if err != nil {
		return "", fmt.Errorf("templexp: %w", err)
	}

	return out, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 模板渲染
// ═══════════════════════════════════════════════════════════════════════════

// ExpandTemplate 使用环境变量展开输入字符串。
//
// 支持语法：
//   - ${VAR} - 变量替换，未设置时原样保留
//   - ${VAR:-default} - 未设置时回退到 default（空字符串视为已设置）
//   - 嵌套：${PROD_URL:-${DEV_URL:-http://localhost:8080}}
//
// 仅在循环引用或嵌套过深时返回 error。
func ExpandTemplate(text string) (string, error) {
	return New().Expand(text)
}
