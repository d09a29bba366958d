package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"

	"github.com/vk/treemarkgo/internal/ctxlog"
	"github.com/vk/treemarkgo/internal/fsutil"
	"github.com/vk/treemarkgo/internal/rendertree"
)

// markupExtensions are the file suffixes Run treats as compilable markup.
var markupExtensions = []string{".html", ".htm", ".xml"}

// Run executes the main application logic: discover markup files under the
// configured path, compile them on a bounded worker pool, and write one
// render tree per file to the output writer in discovery order. Each file
// gets its own compile session, so the pool never shares recursion state.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	files, err := fsutil.CollectFiles([]string{cfg.MarkupPath}, markupExtensions...)
	if err != nil {
		return fmt.Errorf("failed to discover markup files: %w", err)
	}
	if len(files) == 0 {
		a.logger.Warn("No markup files found, compilation not required.", "path", cfg.MarkupPath)
		return nil
	}

	a.logger.Info("🚀 Starting concurrent compilation...", "files", len(files), "workers", cfg.Workers)

	trees := make([]rendertree.Node, len(files))
	errs := make([]error, len(files))
	sem := make(chan struct{}, cfg.Workers)
	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			fileCtx := ctxlog.WithLogger(ctx, a.logger.With("file", file))
			data, err := os.ReadFile(file)
			if err != nil {
				errs[i] = fmt.Errorf("read %s: %w", file, err)
				return
			}
			tree, err := a.compiler.Compile(fileCtx, string(data))
			if err != nil {
				errs[i] = fmt.Errorf("compile %s: %w", file, err)
				return
			}
			trees[i] = tree
		}(i, file)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return err
	}

	for i, tree := range trees {
		if err := a.emit(files[i], tree, cfg); err != nil {
			return err
		}
	}

	a.logger.Info("🏁 Compilation finished.", "files", len(files))
	return nil
}

// emit writes one compiled tree to the output writer in the configured format.
func (a *App) emit(file string, tree rendertree.Node, cfg *Config) error {
	if cfg.Dump {
		spew.Fdump(a.outW, tree)
		return nil
	}

	var (
		data []byte
		err  error
	)
	if cfg.Indent {
		data, err = json.MarshalIndent(tree, "", "  ")
	} else {
		data, err = json.Marshal(tree)
	}
	if err != nil {
		return fmt.Errorf("failed to encode render tree for %s: %w", file, err)
	}
	data = append(data, '\n')
	if _, err := a.outW.Write(data); err != nil {
		return fmt.Errorf("failed to write render tree for %s: %w", file, err)
	}
	return nil
}
