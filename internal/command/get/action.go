package get

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-placeholder/internal/command"
)

var errKeyArgument = errors.New("get requires exactly one KEY argument")

func action(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errKeyArgument
	}
	key := cmd.Args().First()

	props, err := command.ParseProps(cmd.StringSlice("prop"))
	if err != nil {
		return err
	}

	rt, err := command.Setup(cmd, props, cmd.StringSlice("require")...)
	if err != nil {
		return err
	}
	if err := rt.Resolver.ValidateRequired(); err != nil {
		return err
	}

	var value string
	if cmd.IsSet("default") {
		value, err = rt.Resolver.GetOr(key, cmd.String("default"))
	} else {
		value, err = rt.Resolver.Required(key)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, value)

	return err
}
