package propres

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// ErrPathIsDirectory 在属性文件路径指向目录时返回。
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Source 为一个具名的属性来源。
//
// Lookup 返回原始值；字符串值中的占位符由 [Resolver] 负责解析。
type Source interface {
	Name() string
	Lookup(key string) (any, bool)
}

// ═══════════════════════════════════════════════════════════════════════════
// MapSource
// ═══════════════════════════════════════════════════════════════════════════

// MapSource 基于内存 map 的属性来源。
//
// 嵌套 map 会被展开为点号分隔的 key，例如 {"server": {"port": 80}} → server.port。
type MapSource struct {
	name   string
	values map[string]any
}

// NewMapSource 创建 [MapSource]，values 会被复制并展开。
func NewMapSource(name string, values map[string]any) *MapSource {
	flat := make(map[string]any, len(values))
	flatten(values, "", flat)

	return &MapSource{name: name, values: flat}
}

// NewStringSource 以字符串 map 创建 [MapSource]。
func NewStringSource(name string, values map[string]string) *MapSource {
	flat := make(map[string]any, len(values))
	for k, v := range values {
		flat[k] = v
	}

	return &MapSource{name: name, values: flat}
}

// Name 实现 [Source]。
func (s *MapSource) Name() string { return s.name }

// Lookup 实现 [Source]。
func (s *MapSource) Lookup(key string) (any, bool) {
	v, ok := s.values[key]

	return v, ok
}

// Names 返回全部 key，已排序。
func (s *MapSource) Names() []string {
	return slices.Sorted(maps.Keys(s.values))
}

func flatten(src map[string]any, prefix string, dst map[string]any) {
	for key, value := range src {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		switch child := value.(type) {
		case map[string]any:
			if len(child) > 0 {
				flatten(child, fullKey, dst)
				continue
			}
		case map[any]any:
			if len(child) > 0 {
				converted := make(map[string]any, len(child))
				for k, v := range child {
					converted[fmt.Sprintf("%v", k)] = v
				}
				flatten(converted, fullKey, dst)
				continue
			}
		}
		dst[fullKey] = value
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// EnvSource
// ═══════════════════════════════════════════════════════════════════════════

// EnvSource 从进程环境变量读取属性。
//
// key 按 prefix + 大写 key 查找，其中 "." 和 "-" 转为 "_"，
// 例如前缀 "APP_" 下 server.idle-timeout → APP_SERVER_IDLE_TIMEOUT。
// prefix 为空时先按原样查找 key，因此 ${HOME} 可直接引用环境变量。
type EnvSource struct {
	prefix string
}

// NewEnvSource 创建 [EnvSource]。
func NewEnvSource(prefix string) *EnvSource {
	return &EnvSource{prefix: prefix}
}

// Name 实现 [Source]。
func (s *EnvSource) Name() string { return "env" }

// Lookup 实现 [Source]。
func (s *EnvSource) Lookup(key string) (any, bool) {
	if s.prefix == "" {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
	}
	if v, ok := os.LookupEnv(EnvName(s.prefix, key)); ok {
		return v, true
	}

	return nil, false
}

// Names 返回带前缀的环境变量对应的 key（小写，"_" 转为 "."）。
func (s *EnvSource) Names() []string {
	var names []string
	for _, env := range os.Environ() {
		name, _, _ := strings.Cut(env, "=")
		if s.prefix == "" {
			names = append(names, name)
			continue
		}
		if rest, ok := strings.CutPrefix(name, s.prefix); ok && rest != "" {
			names = append(names, strings.ToLower(strings.ReplaceAll(rest, "_", ".")))
		}
	}
	slices.Sort(names)

	return names
}

// EnvName 返回 key 对应的环境变量名。
func EnvName(prefix, key string) string {
	return prefix + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

// ═══════════════════════════════════════════════════════════════════════════
// YAMLSource
// ═══════════════════════════════════════════════════════════════════════════

// YAMLSource 基于 YAML 文档的属性来源。
//
// 叶子 key 与 [MapSource] 的展开规则一致（列表与空映射也是叶子），
// 因此同一份数据以 YAML 或 JSON 加载时可见的 key 相同。
// 未命中叶子时再按 YAMLPath 查找标量，如 "servers[0].host" 对应 "$.servers[0].host"。
// 映射与列表等非叶子节点不会通过 YAMLPath 返回。
type YAMLSource struct {
	name   string
	file   *ast.File
	values map[string]any
	keys   []string
}

// NewYAMLSource 创建 [YAMLSource]，data 必须是 YAML 映射。文档只解析一次。
func NewYAMLSource(name string, data []byte) (*YAMLSource, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	flat := make(map[string]any)
	flatten(root, "", flat)

	return &YAMLSource{
		name:   name,
		file:   file,
		values: flat,
		keys:   slices.Sorted(maps.Keys(flat)),
	}, nil
}

// Name 实现 [Source]。
func (s *YAMLSource) Name() string { return s.name }

// Lookup 实现 [Source]。
func (s *YAMLSource) Lookup(key string) (any, bool) {
	if key == "" {
		return nil, false
	}
	if v, ok := s.values[key]; ok {
		return v, true
	}

	path, err := yaml.PathString("$." + key)
	if err != nil {
		return nil, false
	}
	node, err := path.FilterFile(s.file)
	if err != nil || node == nil {
		return nil, false
	}

	var v any
	if err := yaml.NodeToValue(node, &v); err != nil {
		return nil, false
	}
	switch v.(type) {
	case nil, map[string]any, map[any]any, []any:
		return nil, false
	}

	return v, true
}

// Names 返回全部叶子 key，已排序。
func (s *YAMLSource) Names() []string {
	return slices.Clone(s.keys)
}

// ═══════════════════════════════════════════════════════════════════════════
// 文件加载
// ═══════════════════════════════════════════════════════════════════════════

// LoadFile 读取属性文件，按扩展名选择解析器。
//
//   - .json → 解码后展开为 [MapSource]
//   - 其他 → [YAMLSource]
//
// 来源名称为 "file:" + 清理后的路径。
func LoadFile(path string) (Source, error) {
	cleanPath := filepath.Clean(path)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) //nolint:gosec // path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	name := "file:" + cleanPath
	if strings.EqualFold(filepath.Ext(cleanPath), ".json") {
		var values map[string]any
		if err := json.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("parse %q: %w", cleanPath, err)
		}

		return NewMapSource(name, values), nil
	}

	src, err := NewYAMLSource(name, data)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", cleanPath, err)
	}

	return src, nil
}
