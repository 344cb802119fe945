package cfgm

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-placeholder/pkg/placeholder"
	"github.com/lwmacct/251207-go-pkg-placeholder/pkg/propres"
	"github.com/lwmacct/251207-go-pkg-placeholder/pkg/templexp"
)

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// appName 可选，提供后会追加应用专属路径。
// 返回顺序即查找顺序，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
//  5. config/config.yaml - 子目录通用配置
func DefaultPaths(appName ...string) []string {
	var paths []string

	if len(appName) > 0 && appName[0] != "" {
		name := appName[0]
		paths = append(paths, "."+name+".yaml")
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+name+".yaml"))
		}
		paths = append(paths, "/etc/"+name+"/config.yaml")
	}

	return append(paths, "config.yaml", "config/config.yaml")
}

// Load 读取配置并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - defaultConfig
//  2. 配置文件 - [WithConfigPaths] / [WithAppName]
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]
//
// 合并完成后，字符串值中的 ${key} 会引用其他配置项或环境变量（见 [WithoutSelfReferences]）。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.configPaths) == 0 {
		o.configPaths = DefaultPaths(o.appName)
	}

	configMap := structToMap(defaultConfig)

	// 配置文件 (按顺序搜索，找到第一个即停止)
	fileMap, path, err := readFirstConfig(o)
	if err != nil {
		return nil, err
	}
	if fileMap != nil {
		mergeMaps(configMap, fileMap)
		slog.Debug("Loaded config from file", "path", path, "templateExpansion", !o.noTemplateExpansion)
	} else {
		slog.Debug("No config file found, using defaults")
	}

	// 环境变量绑定 (基于配置结构体的 key)
	if o.envPrefix != "" {
		keys := collectConfigKeys(defaultConfig)
		for _, key := range keys {
			envKey := propres.EnvName(o.envPrefix, key)
			if val := os.Getenv(envKey); val != "" {
				setByPath(configMap, key, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", key)
			}
		}
	}

	// CLI flags (最高优先级，仅当用户明确指定时)
	if o.cmd != nil {
		applyCLIFlags(o.cmd, configMap, reflect.TypeOf(defaultConfig), "")
	}

	if !o.noSelfReferences {
		if err := expandSelfReferences(configMap); err != nil {
			return nil, err
		}
	}

	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的便捷版本，适用于 CLI 场景。
//
// 它会注入 [WithCommand]，appName 非空时额外注入 [WithAppName]。
//
//	cfg, err := cfgm.LoadCmd(cmd, DefaultConfig(), "myapp",
//	    cfgm.WithEnvPrefix("MYAPP_"),
//	)
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	baseOpts := []Option{WithCommand(cmd)}
	if appName != "" {
		baseOpts = append(baseOpts, WithAppName(appName))
	}

	return Load(defaultConfig, append(baseOpts, opts...)...)
}

// MustLoadCmd 调用 [LoadCmd] 并在失败时 panic，适合启动阶段。
func MustLoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) *T {
	cfg, err := LoadCmd(cmd, defaultConfig, appName, opts...)
	if err != nil {
		panic(fmt.Sprintf("cfgm: failed to load config: %v", err))
	}

	return cfg
}

// readFirstConfig 读取首个存在的配置文件，未找到时返回 nil map。
func readFirstConfig(o *options) (map[string]any, string, error) {
	var expander *templexp.Expander
	if !o.noTemplateExpansion {
		var topts []templexp.Option
		if o.strictTemplates {
			topts = append(topts, templexp.WithStrict())
		}
		expander = templexp.New(topts...)
	}

	for _, path := range o.configPaths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue // 文件不存在或无法读取，尝试下一个路径
		}

		if expander != nil {
			expanded, err := expander.Expand(string(content))
			if err != nil {
				return nil, "", fmt.Errorf("expand template in %s: %w", path, err)
			}
			content = []byte(expanded)
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return nil, "", fmt.Errorf("parse config file %s: %w", path, err)
		}

		return fileMap, path, nil
	}

	return nil, "", nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 配置项互相引用
// ═══════════════════════════════════════════════════════════════════════════

var selfRefHelper = placeholder.MustNew("${", "}", placeholder.WithValueSeparator(templexp.Separator))

// expandSelfReferences 展开字符串叶子中的 ${key}。
//
// key 先在配置项中查找，再在环境变量中查找；无法解析的引用保持原样。
func expandSelfReferences(configMap map[string]any) error {
	leaves := flattenLeaves(configMap)
	resolver := placeholder.ResolverFunc(func(name string) (string, bool) {
		if v, ok := leaves[name]; ok {
			return leafString(v), true
		}

		return os.LookupEnv(name)
	})

	for key, v := range leaves {
		s, ok := v.(string)
		if !ok || !selfRefHelper.HasPlaceholder(s) {
			continue
		}

		resolved, err := selfRefHelper.Resolve(s, resolver)
		if err != nil {
			return fmt.Errorf("expand config key %s: %w", key, err)
		}
		setByPath(configMap, key, resolved)
	}

	return nil
}

func leafString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Duration:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// CLI flags
// ═══════════════════════════════════════════════════════════════════════════

// applyCLIFlags 将用户显式设置的 CLI flags 写入配置 map。
//
// flag 名称由 json tag 路径生成，仅替换 "." 为 "-"：
//   - server.addr → --server-addr
//   - placeholder.max-depth → --placeholder-max-depth
func applyCLIFlags(cmd *cli.Command, config map[string]any, typ reflect.Type, prefix string) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)

		key := configTagName(field)
		if key == "" {
			continue
		}
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if isStructType(field.Type) {
			applyCLIFlags(cmd, config, field.Type, fullKey)

			continue
		}

		cliFlag := strings.ReplaceAll(fullKey, ".", "-")
		if !cmd.IsSet(cliFlag) {
			continue
		}
		setCLIFlagValue(cmd, config, fullKey, cliFlag, field.Type)
	}
}

// setCLIFlagValue 按字段类型读取 CLI 值并写入配置 map，不支持的类型忽略。
func setCLIFlagValue(cmd *cli.Command, config map[string]any, configPath, cliFlag string, fieldType reflect.Type) {
	if fieldType == durationType {
		setByPath(config, configPath, cmd.Duration(cliFlag))

		return
	}

	switch fieldType.Kind() {
	case reflect.String:
		setByPath(config, configPath, cmd.String(cliFlag))
	case reflect.Bool:
		setByPath(config, configPath, cmd.Bool(cliFlag))
	case reflect.Int:
		setByPath(config, configPath, cmd.Int(cliFlag))
	case reflect.Int64:
		setByPath(config, configPath, cmd.Int64(cliFlag))
	case reflect.Uint:
		setByPath(config, configPath, cmd.Uint(cliFlag))
	case reflect.Float64:
		setByPath(config, configPath, cmd.Float64(cliFlag))
	case reflect.Slice:
		if fieldType.Elem().Kind() == reflect.String {
			setByPath(config, configPath, cmd.StringSlice(cliFlag))
		}
	case reflect.Map:
		if fieldType.Key().Kind() == reflect.String && fieldType.Elem().Kind() == reflect.String {
			setByPath(config, configPath, cmd.StringMap(cliFlag))
		}
	default:
	}
}
