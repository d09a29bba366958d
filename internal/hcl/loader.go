package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/treemarkgo/internal/config"
	"github.com/vk/treemarkgo/internal/ctxlog"
	"github.com/vk/treemarkgo/internal/ctyconv"
	"github.com/vk/treemarkgo/internal/fsutil"
	"github.com/vk/treemarkgo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Components []*schema.ComponentDefinition `hcl:"component,block"`
	Elements   []*schema.ElementDefinition   `hcl:"element,block"`
	Remain     hcl.Body                      `hcl:",remain"`
}

// Load orchestrates the entire HCL manifest loading process. It is agnostic
// to the origin of the paths and parses any valid block from any file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := config.NewModel()

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Discovered HCL manifest files.", "count", len(files))

	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		// Translate and merge all discovered blocks into the model. Several
		// definitions may share one dispatch key; the model keeps them all.
		for _, comp := range root.Components {
			def, err := translateComponentDefinition(comp)
			if err != nil {
				return nil, nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Components[def.Key] = append(model.Components[def.Key], def)
		}
		for _, el := range root.Elements {
			def := translateElementDefinition(el)
			if _, exists := model.Elements[def.Key]; exists {
				return nil, nil, fmt.Errorf("in %s: element '%s' declared more than once", file, def.Key)
			}
			model.Elements[def.Key] = def
		}
	}

	logger.Debug("HCL loading complete.", "component_keys", len(model.Components), "elements", len(model.Elements))
	return model, ctyconv.NewConverter(), nil
}
