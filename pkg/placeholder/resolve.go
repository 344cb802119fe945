package placeholder

import (
	"fmt"
	"strings"
)

// state 为一次顶层解析的可变状态，只在该调用栈上传递。
type state struct {
	visited map[string]struct{}
	stack   []string
	depth   int
}

func (s *state) enter(name string) {
	s.visited[name] = struct{}{}
	s.stack = append(s.stack, name)
}

func (s *state) leave(name string) {
	delete(s.visited, name)
	s.stack = s.stack[:len(s.stack)-1]
}

// Resolve 使用 r 替换 text 中的全部占位符。
//
// r 为 nil 时返回 [ErrInvalidArgument]。要么返回完整替换后的文本，要么返回一个错误，
// 不存在部分成功。
func (h *Helper) Resolve(text string, r Resolver) (string, error) {
	if r == nil {
		return "", fmt.Errorf("%w: resolver must not be nil", ErrInvalidArgument)
	}
	if f, ok := r.(ResolverFunc); ok && f == nil {
		return "", fmt.Errorf("%w: resolver must not be nil", ErrInvalidArgument)
	}

	st := &state{visited: make(map[string]struct{})}

	return h.parse(text, r, st)
}

// ResolveMap 是 [Helper.Resolve] 的便捷版本，以 map 作为查找表。
func (h *Helper) ResolveMap(text string, values map[string]string) (string, error) {
	return h.Resolve(text, MapResolver(values))
}

// HasPlaceholder 报告 text 是否包含至少一个完整的占位符。
func (h *Helper) HasPlaceholder(text string) bool {
	start := strings.Index(text, h.prefix)

	return start != -1 && h.findEnd(text, start) != -1
}

// parse 是名称与值共用的递归解析入口。
func (h *Helper) parse(value string, r Resolver, st *state) (string, error) {
	start := strings.Index(value, h.prefix)
	if start == -1 {
		return value, nil
	}

	st.depth++
	defer func() { st.depth-- }()
	if st.depth > h.maxDepth {
		return "", &DepthError{Limit: h.maxDepth, Text: value}
	}

	buf := value
	shift := 0 // buf 与 value 在游标之前的长度差

	for start != -1 {
		end := h.findEnd(buf, start)
		if end == -1 {
			break
		}

		raw := buf[start+len(h.prefix) : end]
		if _, seen := st.visited[raw]; seen {
			chain := append(append([]string(nil), st.stack...), raw)
			return "", &CircularReferenceError{Name: raw, Chain: chain}
		}
		st.enter(raw)

		name, err := h.parse(raw, r, st)
		if err != nil {
			return "", err
		}

		val, ok := h.lookup(name, r)
		spanEnd := end + len(h.suffix)

		switch {
		case ok:
			val, err = h.parse(val, r, st)
			if err != nil {
				return "", err
			}
			buf = buf[:start] + val + buf[spanEnd:]
			shift += len(val) - (spanEnd - start)
			h.log().Debug("Resolved placeholder", "name", name)
			start = indexFrom(buf, h.prefix, start+len(val))
		case h.ignoreUnresolvable:
			start = indexFrom(buf, h.prefix, spanEnd)
		default:
			return "", &UnresolvedError{
				Name:        name,
				Text:        value,
				Offset:      start - shift,
				Suggestions: suggest(r, name),
			}
		}

		st.leave(raw)
	}

	return buf, nil
}

// lookup 查找名称，必要时按首个分隔符回退到默认值。
func (h *Helper) lookup(name string, r Resolver) (string, bool) {
	if val, ok := r.Lookup(name); ok {
		return val, true
	}
	if h.separator == "" {
		return "", false
	}

	actual, def, found := strings.Cut(name, h.separator)
	if !found {
		return "", false
	}
	if val, ok := r.Lookup(actual); ok {
		return val, true
	}

	return def, true
}

func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i == -1 {
		return -1
	}

	return from + i
}
