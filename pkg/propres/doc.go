// Package propres 在多个属性来源之上提供带占位符解析的属性读取。
//
// 来源按顺序查找，先命中者生效：
//
//	r, err := propres.New(
//	    propres.WithSources(
//	        propres.NewStringSource("cli", flags),
//	        propres.NewEnvSource("APP_"),
//	        fileSource,
//	    ),
//	    propres.WithRequired("db.url"),
//	)
//
// 读取到的字符串值会先解析其中的 ${...} 占位符，占位符同样在这些来源中查找：
//
//	url, err := r.Required("db.url")               // 缺失时返回 ErrPropertyNotFound
//	port, ok, err := propres.GetAs[int](r, "db.port")
//	timeout, _, err := propres.GetAs[time.Duration](r, "db.timeout")
//
// 解析任意文本：
//
//	out, err := r.ResolvePlaceholders("jdbc:${db.url}")          // 无法解析的保持原样
//	out, err := r.ResolveRequiredPlaceholders("jdbc:${db.url}")  // 无法解析时报错
//
// # 来源
//
//   - [MapSource]：内存 map，嵌套 map 展开为点号 key
//   - [EnvSource]：环境变量，server.idle-timeout → PREFIX_SERVER_IDLE_TIMEOUT
//   - [YAMLSource]：YAML 文档，key 按 YAMLPath 查找，支持 servers[0].host
//   - [LoadFile]：按扩展名加载 JSON 或 YAML 文件
package propres
