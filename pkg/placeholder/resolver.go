package placeholder

import (
	"slices"

	"github.com/sahilm/fuzzy"
)

// Resolver 把占位符名称解析为值。
//
// ok 为 false 表示无值；返回 ("", true) 表示值为空字符串，两者语义不同。
// 实现需对引擎无副作用，并发解析时需自行保证并发读安全。
type Resolver interface {
	Lookup(name string) (value string, ok bool)
}

// Namer 是 [Resolver] 的可选扩展，列出所有已知名称。
//
// 引擎借助它为 [UnresolvedError] 生成拼写建议。
type Namer interface {
	Names() []string
}

// ResolverFunc 让普通函数满足 [Resolver]。
type ResolverFunc func(name string) (string, bool)

// Lookup 调用 f(name)。
func (f ResolverFunc) Lookup(name string) (string, bool) {
	return f(name)
}

// MapResolver 以 map 作为查找表。nil map 视为空表。
type MapResolver map[string]string

// Lookup 实现 [Resolver]。
func (m MapResolver) Lookup(name string) (string, bool) {
	v, ok := m[name]

	return v, ok
}

// Names 实现 [Namer]，结果已排序。
func (m MapResolver) Names() []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	slices.Sort(names)

	return names
}

const maxSuggestions = 3

// suggest 返回与 name 模糊匹配的已知名称，按匹配得分排序。
func suggest(r Resolver, name string) []string {
	namer, ok := r.(Namer)
	if !ok || name == "" {
		return nil
	}

	matches := fuzzy.Find(name, namer.Names())
	if len(matches) == 0 {
		return nil
	}

	out := make([]string, 0, min(len(matches), maxSuggestions))
	for _, m := range matches {
		if m.Str == name {
			continue
		}
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}
