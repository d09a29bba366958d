package app

import (
	"github.com/vk/treemarkgo/internal/registry"
	"github.com/vk/treemarkgo/modules/layout"
	"github.com/vk/treemarkgo/modules/media"
	"github.com/vk/treemarkgo/modules/text"
)

// corePacks is the definitive list of all renderer packs that are compiled
// into the treemarkgo binary.
var corePacks = []registry.Module{
	&layout.Module{},
	&media.Module{},
	&text.Module{},
}
