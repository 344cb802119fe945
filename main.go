package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lwmacct/251207-go-pkg-placeholder/internal/command"
	"github.com/lwmacct/251207-go-pkg-placeholder/internal/command/get"
	"github.com/lwmacct/251207-go-pkg-placeholder/internal/command/resolve"
	"github.com/lwmacct/251207-go-pkg-placeholder/internal/version"
)

func main() {
	app := command.NewRoot(version.AppRawName, "占位符解析工具",
		version.Command,
		resolve.NewCommand(),
		get.NewCommand(),
	)

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
