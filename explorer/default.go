package explorer

import (
	"sync"

	"github.com/katalvlaran/starpath/astar"
)

var (
	defaultOnce     sync.Once
	defaultExplorer *Explorer
)

// Default returns the process-wide Explorer shared by the package-level
// SelectSystem and CurrentPath helpers. It is created on first use with
// DefaultOptions.
func Default() *Explorer {
	defaultOnce.Do(func() { defaultExplorer = New() })
	return defaultExplorer
}

// SelectSystem forwards a selection to the process-wide Explorer.
func SelectSystem(node astar.Node) error { return Default().SelectSystem(node) }

// CurrentPath returns the process-wide Explorer's current path.
func CurrentPath() astar.Path { return Default().CurrentPath() }
