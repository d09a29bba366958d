package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/treemarkgo/internal/app"
	"github.com/vk/treemarkgo/internal/cli"
	"github.com/vk/treemarkgo/internal/config"
	"github.com/vk/treemarkgo/internal/fsutil"
	"github.com/vk/treemarkgo/internal/hcl"
	"github.com/vk/treemarkgo/internal/yamlcfg"
)

// main is the entrypoint for the treemarkgo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Render trees go to outW; logs and diagnostics go to errW.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here to provide
	// a clean exit path for the caller.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	loader := pickLoader(appConfig.ComponentsPath)
	compilerApp := app.NewApp(outW, errW, appConfig, loader)

	return compilerApp.Run(context.Background(), appConfig)
}

// pickLoader selects the manifest loader for path: HCL unless the directory
// holds only YAML manifests.
func pickLoader(path string) config.Loader {
	hclFiles, _ := fsutil.CollectFiles([]string{path}, ".hcl")
	yamlFiles, _ := fsutil.CollectFiles([]string{path}, ".yaml", ".yml")
	if len(hclFiles) == 0 && len(yamlFiles) > 0 {
		return yamlcfg.NewLoader()
	}
	return hcl.NewLoader()
}
