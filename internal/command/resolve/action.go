package resolve

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-placeholder/internal/command"
)

func action(_ context.Context, cmd *cli.Command) error {
	props, err := command.ParseProps(cmd.StringSlice("prop"))
	if err != nil {
		return err
	}

	rt, err := command.Setup(cmd, props)
	if err != nil {
		return err
	}

	// 参数按空格拼接并追加换行；标准输入原样输出
	var text string
	if cmd.Args().Len() > 0 {
		text = strings.Join(cmd.Args().Slice(), " ") + "\n"
	} else {
		data, err := io.ReadAll(cmd.Root().Reader)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	var out string
	if rt.Config.Placeholder.Strict {
		out, err = rt.Resolver.ResolveRequiredPlaceholders(text)
	} else {
		out, err = rt.Resolver.ResolvePlaceholders(text)
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(cmd.Root().Writer, out)

	return err
}
