// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - 通过 WithAppName / WithConfigPaths 选项设置
//  3. 环境变量 - 前缀 PLACEHOLDER_
//  4. CLI flags - 通过 WithCommand 选项设置
package config

import "github.com/lwmacct/251207-go-pkg-placeholder/pkg/placeholder"

// EnvPrefix 为配置项环境变量绑定的前缀。
const EnvPrefix = "PLACEHOLDER_"

// Config 应用配置。
type Config struct {
	Placeholder PlaceholderConfig `json:"placeholder" desc:"占位符语法"`
	Log         LogConfig         `json:"log" desc:"日志配置"`
	Sources     SourcesConfig     `json:"sources" desc:"属性来源"`
}

// PlaceholderConfig 占位符语法配置。
//
//nolint:tagliatelle
type PlaceholderConfig struct {
	Prefix    string `json:"prefix" desc:"占位符前缀"`
	Suffix    string `json:"suffix" desc:"占位符后缀"`
	Separator string `json:"separator" desc:"默认值分隔符，空字符串表示不支持默认值"`
	Strict    bool   `json:"strict" desc:"无法解析的占位符报错"`
	MaxDepth  int    `json:"max-depth" desc:"最大嵌套深度"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level  string `json:"level" desc:"日志级别 (debug/info/warn/error)"`
	Format string `json:"format" desc:"日志格式 (text/json)"`
}

// SourcesConfig 属性来源配置。
//
//nolint:tagliatelle
type SourcesConfig struct {
	Env       bool     `json:"env" desc:"从环境变量读取属性"`
	EnvPrefix string   `json:"env-prefix" desc:"环境变量属性前缀"`
	Files     []string `json:"files" desc:"属性文件 (YAML/JSON)，靠前的优先"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Placeholder: PlaceholderConfig{
			Prefix:    "${",
			Suffix:    "}",
			Separator: ":",
			MaxDepth:  placeholder.DefaultMaxDepth,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Sources: SourcesConfig{
			Env: true,
		},
	}
}
