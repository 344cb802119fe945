// Package cfgm 提供通用的配置加载功能。
//
// 支持 YAML/JSON，按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 统一描述，YAML 与 JSON 共享同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - 通过 [WithConfigPaths] 或 [WithAppName] 设置
//  3. 环境变量(前缀) - 通过 [WithEnvPrefix] 自动生成绑定
//  4. CLI flags - 通过 [WithCommand] 选项设置，最高优先级
//
// # 快速开始
//
//	cfg, err := cfgm.LoadCmd(cmd, DefaultConfig(), "placeholder",
//	    cfgm.WithEnvPrefix("PLACEHOLDER_"),
//	)
//
// # 模板展开
//
// 配置文件内容在解析前会展开 ${VAR} 与 ${VAR:-default}，VAR 取自环境变量
// （见 templexp 包）。无法解析的引用保持原样，[WithStrictTemplates] 会改为报错。
// 使用 [WithoutTemplateExpansion] 可禁用该行为。
//
//	# config.yaml
//	api_key: "${OPENAI_API_KEY}"
//	base_url: "${PROD_URL:-${DEV_URL:-http://localhost:8080}}"
//
// # 配置项互相引用
//
// 各层合并完成后，字符串值中的 ${key} 会按配置 key 查找，找不到时再查环境变量：
//
//	server:
//	  host: example.com
//	  url: "https://${server.host}/api"
//
// 循环引用返回 placeholder.ErrCircularReference。
// 使用 [WithoutSelfReferences] 可禁用该行为。
//
// # CLI Flag 映射
//
// 仅替换 "." 为 "-"：
//   - log.level → --log-level
//   - placeholder.max-depth → --placeholder-max-depth
package cfgm
