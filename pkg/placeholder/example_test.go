package placeholder_test

import (
	"errors"
	"fmt"

	"github.com/lwmacct/251207-go-pkg-placeholder/pkg/placeholder"
)

// Example_resolveMap 演示基于 map 的替换与默认值回退。
func Example_resolveMap() {
	h := placeholder.MustNew("${", "}", placeholder.WithValueSeparator(":"))

	out, _ := h.ResolveMap("${scheme}://${host:localhost}:${port}", map[string]string{
		"scheme": "https",
		"port":   "8443",
	})
	fmt.Println(out)

	// Output:
	// https://localhost:8443
}

// Example_nestedName 演示名称中的占位符先于查找被解析。
func Example_nestedName() {
	h := placeholder.MustNew("${", "}")

	out, _ := h.ResolveMap("${db.${env}.url}", map[string]string{
		"env":         "prod",
		"db.prod.url": "postgres://prod",
	})
	fmt.Println(out)

	// Output:
	// postgres://prod
}

// Example_strict 演示关闭忽略后的错误。
func Example_strict() {
	h := placeholder.MustNew("${", "}", placeholder.WithIgnoreUnresolvable(false))

	_, err := h.ResolveMap("${missing}", nil)
	fmt.Println(errors.Is(err, placeholder.ErrUnresolvable))
	fmt.Println(err)

	// Output:
	// true
	// could not resolve placeholder 'missing' in value "${missing}"
}

// Example_circular 演示循环引用检测。
func Example_circular() {
	h := placeholder.MustNew("${", "}")

	_, err := h.ResolveMap("${a}", map[string]string{"a": "${b}", "b": "${a}"})
	fmt.Println(err)

	// Output:
	// circular placeholder reference 'a' in property definitions (a -> b -> a)
}
