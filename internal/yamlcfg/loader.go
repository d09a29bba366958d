// Package yamlcfg provides the concrete YAML implementation of the manifest
// loading interface defined in the `config` package, for hosts that declare
// components in plain data files rather than HCL.
package yamlcfg

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/treemarkgo/internal/config"
	"github.com/vk/treemarkgo/internal/ctxlog"
	"github.com/vk/treemarkgo/internal/ctyconv"
	"github.com/vk/treemarkgo/internal/fsutil"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot mirrors the top-level structure of a YAML manifest document.
type fileRoot struct {
	Components []*componentDoc `yaml:"components"`
	Elements   []*elementDoc   `yaml:"elements"`
}

type componentDoc struct {
	Key         string        `yaml:"key"`
	Theme       string        `yaml:"theme"`
	Description string        `yaml:"description"`
	Lifecycle   *lifecycleDoc `yaml:"lifecycle"`
	Props       []*propDoc    `yaml:"props"`
}

type lifecycleDoc struct {
	OnRender string `yaml:"on_render"`
}

type propDoc struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Default     any    `yaml:"default"`
}

type elementDoc struct {
	Key         string `yaml:"key"`
	RenderType  string `yaml:"render_type"`
	Description string `yaml:"description"`
}

// Load reads every .yaml/.yml manifest under the given paths and translates
// the documents into the format-agnostic model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	model := config.NewModel()
	conv := ctyconv.NewConverter()

	files, err := fsutil.CollectFiles(paths, ".yaml", ".yml")
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Discovered YAML manifest files.", "count", len(files))

	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}

		var root fileRoot
		if err := yaml.Unmarshal(raw, &root); err != nil {
			return nil, nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}

		for _, comp := range root.Components {
			def, err := translateComponentDoc(comp, conv)
			if err != nil {
				return nil, nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Components[def.Key] = append(model.Components[def.Key], def)
		}
		for _, el := range root.Elements {
			if el.Key == "" {
				return nil, nil, fmt.Errorf("in %s: element declaration is missing a key", file)
			}
			if _, exists := model.Elements[el.Key]; exists {
				return nil, nil, fmt.Errorf("in %s: element '%s' declared more than once", file, el.Key)
			}
			model.Elements[el.Key] = &config.ElementDefinition{
				Key:         el.Key,
				RenderType:  el.RenderType,
				Description: el.Description,
			}
		}
	}

	logger.Debug("YAML loading complete.", "component_keys", len(model.Components), "elements", len(model.Elements))
	return model, conv, nil
}

func translateComponentDoc(doc *componentDoc, conv config.Converter) (*config.ComponentDefinition, error) {
	if doc.Key == "" {
		return nil, fmt.Errorf("component declaration is missing a key")
	}

	def := &config.ComponentDefinition{
		Key:         doc.Key,
		Theme:       doc.Theme,
		Description: doc.Description,
		Props:       make(map[string]*config.PropDefinition),
	}
	if doc.Lifecycle != nil {
		def.Lifecycle = &config.Lifecycle{OnRender: doc.Lifecycle.OnRender}
	}

	for _, p := range doc.Props {
		if p.Name == "" {
			return nil, fmt.Errorf("component '%s' declares a prop without a name", doc.Key)
		}
		if _, exists := def.Props[p.Name]; exists {
			return nil, fmt.Errorf("component '%s' declares prop '%s' more than once", doc.Key, p.Name)
		}

		parsedType, err := parseTypeString(p.Type)
		if err != nil {
			return nil, fmt.Errorf("in component '%s', prop '%s': %w", doc.Key, p.Name, err)
		}

		propDef := &config.PropDefinition{
			Name:        p.Name,
			Type:        parsedType,
			Description: p.Description,
		}
		if p.Default != nil {
			val, err := conv.ToCtyValue(p.Default)
			if err != nil {
				return nil, fmt.Errorf("in component '%s', prop '%s': invalid default: %w", doc.Key, p.Name, err)
			}
			propDef.Default = &val
			propDef.Optional = true
		}
		def.Props[p.Name] = propDef
	}
	return def, nil
}
