// Package templexp 提供配置字符串的环境变量展开。
//
// 该包仅处理 ${...} 语法，适合在 YAML/JSON 等配置文件中做轻量替换。
// 展开由 placeholder 引擎完成，不执行命令、不引入模板引擎。
//
// # 语义说明
//
//  1. 仅做字符串层面的替换（不解析 $VAR）
//  2. 支持嵌套展开，变量值中的 ${...} 也会被展开
//  3. ${VAR:-default} 仅在 VAR 未设置时回退；空字符串是有效值
//  4. 未设置且无默认值的引用保持原样；[WithStrict] 下返回错误
//  5. 变量相互引用形成循环时返回错误
//
// # 快速开始
//
// 展开配置文件中的环境变量引用：
//
//	content := `api_key: "${OPENAI_API_KEY}"`
//	expanded, err := templexp.ExpandTemplate(content)
//
// 使用默认值处理缺失的环境变量：
//
//	content := `model: "${LLM_MODEL:-gpt-4}"`
//	expanded, err := templexp.ExpandTemplate(content)
//
// 附加变量并要求全部可解析：
//
//	e := templexp.New(templexp.WithVars(vars), templexp.WithStrict())
//	expanded, err := e.Expand(content)
package templexp
