// Package placeholder 提供带分隔符占位符（如 ${name}）的替换引擎。
//
// 给定一段文本与一个名称→值的查找能力，引擎会把文本中的占位符替换为对应的值，
// 支持嵌套占位符、默认值回退与循环引用检测。它只做字面替换，不是表达式语言。
//
// # 语义说明
//
//  1. 占位符名称本身可以包含占位符，先由内向外解析名称，再查找值
//  2. 查到的值会被递归解析后再写回文本；写回的内容不会被再次扫描
//  3. 配置了分隔符时，${name:default} 在 name 无值时回退到 default（按首个分隔符切分）
//  4. 空字符串是有效值，与"无值"不同
//  5. 同一调用链上再次遇到正在展开的名称即为循环引用，返回 [CircularReferenceError]
//  6. 无法解析的占位符默认原样保留；关闭 [WithIgnoreUnresolvable] 后返回 [UnresolvedError]
//
// 查找器返回的值视为"字面量或可继续解析的文本"：引擎会在写回前递归解析它，
// 因而写回后的文本无需再扫描。
//
// # 定界符匹配
//
// 后缀为 "}"、"]" 或 ")" 且前缀以对应的 "{"、"[" 或 "(" 结尾时，单个开括号也计入嵌套层级，
// 因此 ${a{b}c} 的名称是 a{b}c。扫描时先检查后缀，再检查开括号，
// 所以 %a% 这类前后缀相同的定界符也能闭合；括号类定界符不受顺序影响。
//
// # 快速开始
//
//	h := placeholder.MustNew("${", "}", placeholder.WithValueSeparator(":"))
//	out, err := h.ResolveMap("host=${HOST:localhost}", map[string]string{})
//	// out == "host=localhost"
//
// 自定义查找：
//
//	out, err := h.Resolve(text, placeholder.ResolverFunc(func(name string) (string, bool) {
//	    return os.LookupEnv(name)
//	}))
//
// [Helper] 构造后不可变，可在多个 goroutine 间共享；每次解析的状态都只存在于调用栈上。
package placeholder
