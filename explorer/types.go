package explorer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/starpath/astar"
)

// Sentinel errors for explorer operations.
var (
	// ErrUnsupportedCapability indicates a node that must be highlighted does
	// not implement Highlightable. This is an integration error, not a
	// recoverable runtime condition.
	ErrUnsupportedCapability = errors.New("explorer: node does not implement Highlightable")

	// ErrNilNode indicates SelectSystem was called with a nil node.
	ErrNilNode = errors.New("explorer: selected node is nil")

	// ErrBadColor indicates a color string could not be parsed.
	ErrBadColor = errors.New("explorer: malformed color")
)

// Color is a linear RGBA color. Components are not clamped, so values above
// 1 may be used for emissive highlights.
type Color struct {
	R, G, B, A float32
}

// String renders c as "rgba(r, g, b, a)".
func (c Color) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
	}

	return Color{
		R: float32((v>>24)&0xff) / 255,
		G: float32((v>>16)&0xff) / 255,
		B: float32((v>>8)&0xff) / 255,
		A: float32(v&0xff) / 255,
	}, nil
}

// Default highlight colors.
var (
	// DefaultEndpointColor marks the two ends of a path (pale green).
	DefaultEndpointColor = Color{R: 0.5, G: 1.0, B: 0.5, A: 1}

	// DefaultIntermediateColor marks the nodes between the ends (bright amber).
	DefaultIntermediateColor = Color{R: 1.5, G: 1.0, B: 0.0, A: 1}
)

// Highlightable is implemented by nodes that can display a highlight.
type Highlightable interface {
	// Highlight enables highlighting with the given color.
	Highlight(c Color)

	// Unhighlight restores the node's normal appearance.
	Unhighlight()
}

// State is the explorer's position in its selection state machine.
type State int

const (
	// NoneSelected: nothing has been selected yet.
	NoneSelected State = iota
	// OneSelected: exactly one node has been selected.
	OneSelected
	// PathComputed: two selections exist and a search has run; the path may
	// still be absent if the nodes are disconnected.
	PathComputed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case NoneSelected:
		return "NoneSelected"
	case OneSelected:
		return "OneSelected"
	case PathComputed:
		return "PathComputed"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Snapshot is the explorer's selection and path at one instant.
type Snapshot struct {
	Previous, Current astar.Node
	Path              astar.Path
	State             State
}

// Options configures an Explorer.
type Options struct {
	// Pathfinder computes the route between the two latest selections.
	Pathfinder astar.Pathfinder

	// EndpointColor highlights the first and last node of a path.
	EndpointColor Color

	// IntermediateColor highlights every node between the endpoints.
	IntermediateColor Color

	// Logger receives selection and path events at debug level.
	Logger *slog.Logger

	// OnPathChange observes every new current path (nil when none).
	OnPathChange func(p astar.Path)
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options using an A* pathfinder, the default colors,
// a discard logger and a no-op path observer.
func DefaultOptions() Options {
	return Options{
		Pathfinder:        astar.New(),
		EndpointColor:     DefaultEndpointColor,
		IntermediateColor: DefaultIntermediateColor,
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnPathChange:      func(astar.Path) {},
	}
}

// WithPathfinder replaces the default A* pathfinder.
func WithPathfinder(pf astar.Pathfinder) Option {
	return func(o *Options) {
		if pf != nil {
			o.Pathfinder = pf
		}
	}
}

// WithEndpointColor sets the color for path endpoints.
func WithEndpointColor(c Color) Option {
	return func(o *Options) { o.EndpointColor = c }
}

// WithIntermediateColor sets the color for interior path nodes.
func WithIntermediateColor(c Color) Option {
	return func(o *Options) { o.IntermediateColor = c }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnPathChange registers an observer for path updates, e.g. a renderer.
// It runs while the explorer lock is held and must not call back into it.
func WithOnPathChange(fn func(p astar.Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPathChange = fn
		}
	}
}
