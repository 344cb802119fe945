// Package get 提供读取单个属性的命令。
package get

import "github.com/urfave/cli/v3"

// NewCommand 创建 get 命令。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "读取属性并解析其中的占位符",
		ArgsUsage: "KEY",
		Action:    action,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "prop",
				Aliases: []string{"p"},
				Usage:   "属性 key=value，可重复，优先于其他来源",
			},
			&cli.StringFlag{
				Name:    "default",
				Aliases: []string{"d"},
				Usage:   "属性不存在时输出的值",
			},
			&cli.StringSliceFlag{
				Name:    "require",
				Aliases: []string{"r"},
				Usage:   "必须存在的属性 key，可重复，缺失时一并报错",
			},
		},
	}
}
