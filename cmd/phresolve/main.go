package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lwmacct/251207-go-pkg-placeholder/internal/command"
	"github.com/lwmacct/251207-go-pkg-placeholder/internal/command/resolve"
)

func main() {
	app := resolve.NewCommand()
	app.Name = "phresolve"
	app.Flags = append(command.Flags(), app.Flags...)
	app.DisableSliceFlagSeparator = true

	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("应用程序运行失败", "error", err)
		os.Exit(1)
	}
}
