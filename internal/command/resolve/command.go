// Package resolve 提供解析文本中占位符的命令。
package resolve

import "github.com/urfave/cli/v3"

// NewCommand 创建 resolve 命令。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "解析文本中的占位符，未提供 TEXT 时读取标准输入",
		ArgsUsage: "[TEXT...]",
		Action:    action,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "prop",
				Aliases: []string{"p"},
				Usage:   "属性 key=value，可重复，优先于其他来源",
			},
		},
	}
}
