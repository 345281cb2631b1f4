package server

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/starpath/astar"
	"github.com/katalvlaran/starpath/explorer"
	"github.com/katalvlaran/starpath/galaxy"
)

type vectorJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type systemJSON struct {
	ID          string     `json:"id"`
	Position    vectorJSON `json:"position"`
	Color       [4]float32 `json:"color"`
	Highlighted bool       `json:"highlighted"`
	Neighbours  []string   `json:"neighbours"`
}

type edgeJSON struct {
	A        string  `json:"a"`
	B        string  `json:"b"`
	Distance float64 `json:"distance"`
}

// pathJSON describes both explorer state and ad-hoc routes.
type pathJSON struct {
	State    string   `json:"state,omitempty"`
	From     string   `json:"from,omitempty"`
	To       string   `json:"to,omitempty"`
	Found    bool     `json:"found"`
	Path     []string `json:"path"`
	Cost     float64  `json:"cost"`
	Expanded int      `json:"expanded,omitempty"`
}

func toSystemJSON(s *galaxy.StarSystem) systemJSON {
	p := s.Position()
	c := s.Color()
	out := systemJSON{
		ID:          s.ID(),
		Position:    vectorJSON{X: p.X, Y: p.Y, Z: p.Z},
		Color:       [4]float32{c.R, c.G, c.B, c.A},
		Highlighted: s.Highlighted(),
		Neighbours:  []string{},
	}
	for n := range s.Neighbours() {
		out.Neighbours = append(out.Neighbours, nodeID(n))
	}

	return out
}

func nodeID(n astar.Node) string {
	if n == nil {
		return ""
	}
	if s, ok := n.(interface{ ID() string }); ok {
		return s.ID()
	}
	if s, ok := n.(interface{ String() string }); ok {
		return s.String()
	}

	return ""
}

func pathIDs(p astar.Path) []string {
	ids := make([]string, 0, len(p))
	for _, n := range p {
		ids = append(ids, nodeID(n))
	}

	return ids
}

func snapshotJSON(snap explorer.Snapshot) pathJSON {
	out := pathJSON{
		State: snap.State.String(),
		From:  nodeID(snap.Previous),
		To:    nodeID(snap.Current),
		Found: len(snap.Path) > 0,
		Path:  pathIDs(snap.Path),
	}
	if out.Found {
		out.Cost = snap.Path.Cost()
	}

	return out
}

func (s *Server) lookup(c *gin.Context, id string) (*galaxy.StarSystem, bool) {
	sys, ok := s.galaxy.System(id)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "star system " + id + " not found"})
	}

	return sys, ok
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "systems": s.galaxy.Len()})
}

func (s *Server) listSystems(c *gin.Context) {
	systems := s.galaxy.Systems()
	out := make([]systemJSON, 0, len(systems))
	for _, sys := range systems {
		out = append(out, toSystemJSON(sys))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) listEdges(c *gin.Context) {
	edges := s.galaxy.Edges()
	out := make([]edgeJSON, 0, len(edges))
	for _, e := range edges {
		out = append(out, edgeJSON{A: e.A.ID(), B: e.B.ID(), Distance: e.Distance})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) selectSystem(c *gin.Context) {
	sys, ok := s.lookup(c, c.Param("id"))
	if !ok {
		return
	}
	snap, err := s.explorer.Select(sys)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, explorer.ErrUnsupportedCapability) || errors.Is(err, explorer.ErrNilNode) {
			status = http.StatusUnprocessableEntity
		}
		s.logger.Warn("select failed", "system", sys.ID(), "error", err)
		c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshotJSON(snap))
}

func (s *Server) currentPath(c *gin.Context) {
	c.JSON(http.StatusOK, snapshotJSON(s.explorer.Snapshot()))
}

func (s *Server) resetSelection(c *gin.Context) {
	if err := s.explorer.Reset(); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// Report the state Reset produced, not whatever a concurrent select left.
	c.JSON(http.StatusOK, snapshotJSON(explorer.Snapshot{State: explorer.NoneSelected}))
}

// route answers a one-off query without touching the explorer's highlights.
func (s *Server) route(c *gin.Context) {
	fromID, toID := c.Query("from"), c.Query("to")
	if fromID == "" || toID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing required parameters: from, to"})
		return
	}
	from, ok := s.lookup(c, fromID)
	if !ok {
		return
	}
	to, ok := s.lookup(c, toID)
	if !ok {
		return
	}

	out := pathJSON{From: fromID, To: toID, Path: []string{}}
	if searcher, ok := s.pathfinder.(interface {
		Search(start, goal astar.Node) (astar.Result, error)
	}); ok {
		res, err := searcher.Search(from, to)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out.Found, out.Path, out.Cost, out.Expanded = res.Found, pathIDs(res.Path), res.Cost, res.Expanded
	} else if p, found := s.pathfinder.GetPath(from, to); found {
		out.Found, out.Path, out.Cost = true, pathIDs(p), p.Cost()
	}

	c.JSON(http.StatusOK, out)
}

func (s *Server) distances(c *gin.Context) {
	id := c.Param("id")
	if _, ok := s.lookup(c, id); !ok {
		return
	}
	dist, err := s.galaxy.DistancesFrom(id)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// JSON has no infinity; unreachable systems are reported as null.
	out := make(map[string]*float64, len(dist))
	for k, d := range dist {
		if math.IsInf(d, 1) {
			out[k] = nil
			continue
		}
		v := d
		out[k] = &v
	}
	c.JSON(http.StatusOK, out)
}

// jumps reports lane counts, optionally limited by ?max=N.
func (s *Server) jumps(c *gin.Context) {
	id := c.Param("id")
	if _, ok := s.lookup(c, id); !ok {
		return
	}
	maxJumps := 0
	if raw := c.Query("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "max must be a non-negative integer"})
			return
		}
		maxJumps = n
	}

	hops, err := s.galaxy.JumpsFrom(id, maxJumps)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hops)
}
