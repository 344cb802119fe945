package cfgm

import "github.com/urfave/cli/v3"

// options 配置加载选项。
type options struct {
	appName             string // 应用名称，用于生成默认配置路径
	cmd                 *cli.Command
	configPaths         []string
	envPrefix           string
	noTemplateExpansion bool // 是否禁用配置文件模板展开（默认启用）
	strictTemplates     bool
	noSelfReferences    bool
}

// Option 配置加载选项函数。
type Option func(*options)

// WithCommand 绑定 CLI 命令，读取显式设置的 flags 以覆盖配置（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithAppName 设置应用名称，用于生成默认搜索路径（见 [DefaultPaths]）。
//
//	cfgm.Load(defaultConfig,
//	    cfgm.WithAppName("placeholder"),  // 自动搜索 .placeholder.yaml 等
//	    cfgm.WithCommand(cmd),
//	)
func WithAppName(name string) Option {
	return func(o *options) {
		o.appName = name
	}
}

// WithConfigPaths 设置配置文件搜索路径，按顺序查找，命中首个文件即停止。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		o.configPaths = paths
	}
}

// WithEnvPrefix 启用环境变量前缀解析。
//
// 环境变量命名规则：
//   - 前缀 + 大写的配置 key
//   - 点号 (.) 和连字符 (-) 转为下划线 (_)
//
// 示例 (前缀为 "PLACEHOLDER_")：
//   - PLACEHOLDER_LOG_LEVEL → log.level
//   - PLACEHOLDER_PLACEHOLDER_MAX_DEPTH → placeholder.max-depth
//
// 注意：只匹配结构体中定义的 key。
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithoutTemplateExpansion 禁用配置文件的模板展开，保留原始 ${...} 字符串。
func WithoutTemplateExpansion() Option {
	return func(o *options) {
		o.noTemplateExpansion = true
	}
}

// WithStrictTemplates 让配置文件中无法解析的 ${VAR} 返回错误，而不是保持原样。
func WithStrictTemplates() Option {
	return func(o *options) {
		o.strictTemplates = true
	}
}

// WithoutSelfReferences 禁用合并后配置项之间的 ${key} 引用展开。
func WithoutSelfReferences() Option {
	return func(o *options) {
		o.noSelfReferences = true
	}
}
