package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/treemarkgo/internal/config"
	"github.com/vk/treemarkgo/internal/ctxlog"
	"github.com/vk/treemarkgo/internal/registry"
	"github.com/vk/treemarkgo/internal/transform"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: manifests loaded, renderer packs registered, registry validated,
// compiler constructed.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	compiler *transform.Compiler
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry.
// Compiled trees go to outW; logs go to errW so JSON output stays clean.
// Startup failures are configuration or wiring bugs and panic; entrypoints
// recover and present them.
func NewApp(outW, errW io.Writer, cfg *Config, loader config.Loader, packs ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var manifestPaths []string
	if cfg.ComponentsPath != "" {
		manifestPaths = append(manifestPaths, cfg.ComponentsPath)
	}

	// Load all manifests into the format-agnostic model first.
	model, converter, err := loader.Load(ctx, manifestPaths...)
	if err != nil {
		panic(fmt.Errorf("failed to load component manifests: %w", err))
	}
	logger.Debug("Manifests loaded and translated into unified model.")

	// Create and populate the registry with Go renderer handlers.
	reg := registry.New()
	if len(packs) == 0 {
		packs = corePacks
	}
	for _, pack := range packs {
		pack.Register(reg)
	}
	logger.Debug("All renderer packs registered.", "count", len(packs))

	// Populate the registry's definitions from the loaded config model.
	if err := reg.PopulateDefinitionsFromModel(model, converter); err != nil {
		panic(fmt.Errorf("failed to populate registry definitions: %w", err))
	}
	logger.Debug("Registry definitions populated from config model.")

	// A mismatch between manifests and Go handlers is a wiring bug.
	if err := reg.ValidateRegistry(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		compiler: transform.NewCompiler(reg, transform.Options{NonStrict: !cfg.Strict}),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Compiler returns the application's compiler. This is primarily for testing.
func (a *App) Compiler() *transform.Compiler {
	return a.compiler
}
