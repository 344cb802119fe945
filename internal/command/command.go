// Package command 提供各子命令共享的 flags、配置加载与属性解析器构建。
package command

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-placeholder/internal/config"
	"github.com/lwmacct/251207-go-pkg-placeholder/internal/logging"
	"github.com/lwmacct/251207-go-pkg-placeholder/internal/version"
	"github.com/lwmacct/251207-go-pkg-placeholder/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-placeholder/pkg/propres"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// Flags 返回全局 flags。名称与配置 key 一一对应（"." 替换为 "-"），
// 由 cfgm 在用户显式设置时覆盖配置。
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "配置文件路径（默认搜索 ." + version.AppRawName + ".yaml 等）",
		},
		&cli.StringFlag{
			Name:  "placeholder-prefix",
			Value: Defaults.Placeholder.Prefix,
			Usage: "占位符前缀",
		},
		&cli.StringFlag{
			Name:  "placeholder-suffix",
			Value: Defaults.Placeholder.Suffix,
			Usage: "占位符后缀",
		},
		&cli.StringFlag{
			Name:  "placeholder-separator",
			Value: Defaults.Placeholder.Separator,
			Usage: "默认值分隔符，空字符串表示不支持默认值",
		},
		&cli.BoolFlag{
			Name:  "placeholder-strict",
			Value: Defaults.Placeholder.Strict,
			Usage: "无法解析的占位符报错",
		},
		&cli.IntFlag{
			Name:  "placeholder-max-depth",
			Value: Defaults.Placeholder.MaxDepth,
			Usage: "最大嵌套深度",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: Defaults.Log.Level,
			Usage: "日志级别 (debug/info/warn/error)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Value: Defaults.Log.Format,
			Usage: "日志格式 (text/json)",
		},
		&cli.BoolFlag{
			Name:  "sources-env",
			Value: Defaults.Sources.Env,
			Usage: "从环境变量读取属性",
		},
		&cli.StringFlag{
			Name:  "sources-env-prefix",
			Value: Defaults.Sources.EnvPrefix,
			Usage: "环境变量属性前缀",
		},
		&cli.StringSliceFlag{
			Name:    "sources-files",
			Aliases: []string{"f"},
			Usage:   "属性文件 (YAML/JSON)，可重复，靠前的优先",
		},
	}
}

// NewRoot 创建挂载全局 flags 的根命令。
func NewRoot(name, usage string, commands ...*cli.Command) *cli.Command {
	return &cli.Command{
		Name:                      name,
		Usage:                     usage,
		Version:                   version.GetVersion(),
		Flags:                     Flags(),
		Commands:                  commands,
		DisableSliceFlagSeparator: true,
	}
}

// Runtime 为子命令执行所需的配置、日志与属性解析器。
type Runtime struct {
	Config   *config.Config
	Logger   *slog.Logger
	Resolver *propres.Resolver
}

// Setup 加载配置（默认值 → 配置文件 → 环境变量 → CLI flags），
// 并构建 logger 与属性解析器。
//
// 属性来源按优先级：props（--prop）→ 环境变量 → 属性文件。
func Setup(cmd *cli.Command, props map[string]string, required ...string) (*Runtime, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(cfg.Log, cmd.Root().ErrWriter)

	var sources []propres.Source
	if len(props) > 0 {
		sources = append(sources, propres.NewStringSource("cli", props))
	}
	if cfg.Sources.Env {
		sources = append(sources, propres.NewEnvSource(cfg.Sources.EnvPrefix))
	}
	for _, path := range cfg.Sources.Files {
		src, err := propres.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load property file: %w", err)
		}
		sources = append(sources, src)
	}

	resolver, err := propres.New(
		propres.WithSources(sources...),
		propres.WithPlaceholderPrefix(cfg.Placeholder.Prefix),
		propres.WithPlaceholderSuffix(cfg.Placeholder.Suffix),
		propres.WithValueSeparator(cfg.Placeholder.Separator),
		propres.WithMaxDepth(cfg.Placeholder.MaxDepth),
		propres.WithIgnoreUnresolvableNested(!cfg.Placeholder.Strict),
		propres.WithRequired(required...),
		propres.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid placeholder syntax: %w", err)
	}

	logger.Debug("Property resolver ready", "sources", resolver.Sources(), "strict", cfg.Placeholder.Strict)

	return &Runtime{Config: cfg, Logger: logger, Resolver: resolver}, nil
}

// LoadConfig 按 cfgm 的优先级加载应用配置，--config 指定的文件必须存在。
func LoadConfig(cmd *cli.Command) (*config.Config, error) {
	opts := []cfgm.Option{cfgm.WithEnvPrefix(config.EnvPrefix)}
	if path := cmd.String("config"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		opts = append(opts, cfgm.WithConfigPaths(path))
	}

	return cfgm.LoadCmd(cmd, config.DefaultConfig(), version.AppRawName, opts...)
}

// ParseProps 解析 key=value 形式的属性列表，后出现的同名 key 覆盖先前的值。
func ParseProps(pairs []string) (map[string]string, error) {
	props := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid property %q, expected key=value", pair)
		}
		props[key] = value
	}

	return props, nil
}
