package propres

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/lwmacct/251207-go-pkg-placeholder/pkg/placeholder"
)

// ErrPropertyNotFound 表示所有来源中都不存在该 key。
var ErrPropertyNotFound = errors.New("property not found")

// MissingPropertiesError 列出 [Resolver.ValidateRequired] 中缺失的全部 key。
type MissingPropertiesError struct {
	Keys []string
}

func (e *MissingPropertiesError) Error() string {
	return "the following properties were declared as required but could not be resolved: " +
		strings.Join(e.Keys, ", ")
}

// Is 让 errors.Is(err, ErrPropertyNotFound) 成立。
func (e *MissingPropertiesError) Is(target error) bool {
	return target == ErrPropertyNotFound
}

// Resolver 在有序的属性来源上查找属性，并解析值中的占位符。
//
// 来源按顺序查找，先命中者生效。构造后不可变，可并发使用。
type Resolver struct {
	sources []Source
	// lenient 忽略无法解析的占位符，strict 返回错误。
	lenient *placeholder.Helper
	strict  *placeholder.Helper
	// ignoreUnresolvableNested 决定属性值中的嵌套占位符使用哪个 helper。
	ignoreUnresolvableNested bool
	required                 []string
	logger                   *slog.Logger
}

// New 创建 [Resolver]。占位符语法默认为 ${name:default}。
func New(opts ...Option) (*Resolver, error) {
	o := &options{
		prefix:    "${",
		suffix:    "}",
		separator: ":",
	}
	for _, opt := range opts {
		opt(o)
	}

	common := []placeholder.Option{
		placeholder.WithValueSeparator(o.separator),
		placeholder.WithMaxDepth(o.maxDepth),
		placeholder.WithLogger(o.logger),
	}
	lenient, err := placeholder.New(o.prefix, o.suffix,
		append(common, placeholder.WithIgnoreUnresolvable(true))...)
	if err != nil {
		return nil, err
	}
	strict, err := placeholder.New(o.prefix, o.suffix,
		append(common, placeholder.WithIgnoreUnresolvable(false))...)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		sources:                  slices.Clone(o.sources),
		lenient:                  lenient,
		strict:                   strict,
		ignoreUnresolvableNested: o.ignoreUnresolvableNested,
		required:                 slices.Clone(o.required),
		logger:                   o.logger,
	}, nil
}

// MustNew 调用 [New] 并在失败时 panic。
func MustNew(opts ...Option) *Resolver {
	r, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("propres: %v", err))
	}

	return r
}

func (r *Resolver) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}

	return slog.Default()
}

// Sources 返回来源名称列表，按查找顺序排列。
func (r *Resolver) Sources() []string {
	names := make([]string, len(r.sources))
	for i, s := range r.sources {
		names[i] = s.Name()
	}

	return names
}

// raw 返回首个命中来源中的原始值。
func (r *Resolver) raw(key string) (any, bool) {
	for _, src := range r.sources {
		if v, ok := src.Lookup(key); ok {
			r.log().Debug("Found key in property source", "key", key, "source", src.Name())
			return v, true
		}
	}
	r.log().Debug("Could not find key in any property source", "key", key)

	return nil, false
}

// Contains 报告 key 是否存在于任一来源。
func (r *Resolver) Contains(key string) bool {
	for _, src := range r.sources {
		if _, ok := src.Lookup(key); ok {
			return true
		}
	}

	return false
}

// Lookup 返回 key 对应的字符串值，值中的占位符会被解析。
//
// 嵌套占位符无法解析时，是否报错取决于 [WithIgnoreUnresolvableNested]。
func (r *Resolver) Lookup(key string) (string, bool, error) {
	v, ok := r.raw(key)
	if !ok {
		return "", false, nil
	}

	s, err := r.resolveNested(stringify(v))
	if err != nil {
		return "", true, fmt.Errorf("property %q: %w", key, err)
	}

	return s, true, nil
}

// GetOr 返回 key 对应的值，不存在时返回 def。
func (r *Resolver) GetOr(key, def string) (string, error) {
	s, ok, err := r.Lookup(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return def, nil
	}

	return s, nil
}

// Required 返回 key 对应的值，不存在时返回 [ErrPropertyNotFound]。
func (r *Resolver) Required(key string) (string, error) {
	s, ok, err := r.Lookup(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("required key %q: %w", key, ErrPropertyNotFound)
	}

	return s, nil
}

// GetAs 返回 key 对应的值并转换为 T。
//
// 字符串值先解析占位符，再通过 mapstructure 弱类型解码，
// 支持 "30s" → time.Duration、"a,b" → []string 等常见转换。
func GetAs[T any](r *Resolver, key string) (T, bool, error) {
	var out T

	v, ok := r.raw(key)
	if !ok {
		return out, false, nil
	}
	if s, isString := v.(string); isString {
		resolved, err := r.resolveNested(s)
		if err != nil {
			return out, true, fmt.Errorf("property %q: %w", key, err)
		}
		v = resolved
	}

	if err := decode(v, &out); err != nil {
		return out, true, fmt.Errorf("convert property %q to %T: %w", key, out, err)
	}

	return out, true, nil
}

// ResolvePlaceholders 解析 text 中的占位符，无法解析的原样保留。
func (r *Resolver) ResolvePlaceholders(text string) (string, error) {
	return r.lenient.Resolve(text, placeholderView{r})
}

// ResolveRequiredPlaceholders 解析 text 中的占位符，无法解析时返回错误。
func (r *Resolver) ResolveRequiredPlaceholders(text string) (string, error) {
	return r.strict.Resolve(text, placeholderView{r})
}

// ValidateRequired 校验 [WithRequired] 声明的 key 均存在。
//
// 缺失的 key 会一次性通过 [MissingPropertiesError] 返回。
func (r *Resolver) ValidateRequired(extra ...string) error {
	var missing []string
	for _, key := range append(slices.Clone(r.required), extra...) {
		if !r.Contains(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &MissingPropertiesError{Keys: missing}
	}

	return nil
}

// Names 实现 [placeholder.Namer]，汇总所有可枚举来源的 key。
func (r *Resolver) Names() []string {
	seen := make(map[string]struct{})
	for _, src := range r.sources {
		if namer, ok := src.(placeholder.Namer); ok {
			for _, name := range namer.Names() {
				seen[name] = struct{}{}
			}
		}
	}

	return slices.Sorted(maps.Keys(seen))
}

// LookupPlaceholder 以原始字符串形式返回值，供占位符引擎使用。
//
// 值中的嵌套占位符由引擎递归处理，这里不解析。
func (r *Resolver) LookupPlaceholder(name string) (string, bool) {
	v, ok := r.raw(name)
	if !ok {
		return "", false
	}

	return stringify(v), true
}

// placeholderView 将 [Resolver] 适配为 [placeholder.Resolver]。
type placeholderView struct{ *Resolver }

func (v placeholderView) Lookup(name string) (string, bool) { return v.LookupPlaceholder(name) }

// AsPlaceholderResolver 返回供 [placeholder.Helper] 使用的查找器。
func (r *Resolver) AsPlaceholderResolver() placeholder.Resolver {
	return placeholderView{r}
}

func (r *Resolver) resolveNested(s string) (string, error) {
	h := r.strict
	if r.ignoreUnresolvableNested {
		h = r.lenient
	}

	return h.Resolve(s, placeholderView{r})
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func decode(in, out any) error {
	conf := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToWeakSliceHookFunc(","),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return err
	}

	return decoder.Decode(in)
}
