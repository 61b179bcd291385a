package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/router"
)

type routeParams struct {
	From    uint64 `form:"from" binding:"required"`
	To      uint64 `form:"to" binding:"required"`
	MaxCost uint64 `form:"max_cost"`
	Trace   bool   `form:"trace"`
}

type routeResponse struct {
	Found    bool                 `json:"found"`
	Cost     uint64               `json:"cost"`
	Segments []string             `json:"segments,omitempty"`
	Nodes    []core.NodeID        `json:"nodes,omitempty"`
	Route    string               `json:"route,omitempty"`
	Stats    dijkstra.SearchStats `json:"stats"`
}

type reachParams struct {
	From    uint64 `form:"from" binding:"required"`
	MaxCost uint64 `form:"max_cost" binding:"required"`
}

type reachedNode struct {
	Node core.NodeID `json:"node"`
	Cost uint64      `json:"cost"`
}

type reachResponse struct {
	From    core.NodeID   `json:"from"`
	MaxCost uint64        `json:"max_cost"`
	Count   int           `json:"count"`
	Nodes   []reachedNode `json:"nodes"`
}

type hopsParams struct {
	From uint64 `form:"from" binding:"required"`
	To   uint64 `form:"to" binding:"required"`
}

type hopsResponse struct {
	Found bool          `json:"found"`
	Hops  int           `json:"hops"`
	Nodes []core.NodeID `json:"nodes,omitempty"`
}

type statsResponse struct {
	core.GraphStats
	router.Connectivity
}

type arcView struct {
	To       core.NodeID    `json:"to"`
	Distance uint64         `json:"distance"`
	Cost     uint64         `json:"cost"`
	Segment  core.SegmentID `json:"segment"`
	Name     string         `json:"name,omitempty"`
}

type nodeResponse struct {
	ID   core.NodeID `json:"id"`
	Lat  float64     `json:"lat"`
	Lon  float64     `json:"lon"`
	Arcs []arcView   `json:"arcs"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) route(c *gin.Context) {
	var p routeParams
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.rt.Route(router.Query{
		From:    core.NodeID(p.From),
		To:      core.NodeID(p.To),
		MaxCost: p.MaxCost,
		Trace:   p.Trace,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, routeResponse{
		Found:    res.Found(),
		Cost:     res.Cost,
		Segments: res.Segments,
		Nodes:    res.Nodes,
		Route:    res.Route(),
		Stats:    res.Stats,
	})
}

func (s *Server) reach(c *gin.Context) {
	var p reachParams
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.rt.Reach(core.NodeID(p.From), p.MaxCost)
	if err != nil {
		s.fail(c, err)
		return
	}

	out := reachResponse{
		From:    res.Source,
		MaxCost: p.MaxCost,
		Count:   res.Len(),
		Nodes:   make([]reachedNode, 0, res.Len()),
	}
	for _, id := range res.Nodes() {
		cost, _ := res.Cost(id)
		out.Nodes = append(out.Nodes, reachedNode{Node: id, Cost: cost})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) hops(c *gin.Context) {
	var p hopsParams
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	path, err := s.rt.Hops(c.Request.Context(), core.NodeID(p.From), core.NodeID(p.To))
	switch {
	case errors.Is(err, bfs.ErrNoPath):
		c.JSON(http.StatusOK, hopsResponse{})
	case err != nil:
		s.fail(c, err)
	default:
		c.JSON(http.StatusOK, hopsResponse{Found: true, Hops: len(path) - 1, Nodes: path})
	}
}

func (s *Server) node(c *gin.Context) {
	raw, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "node id must be an unsigned integer"})
		return
	}
	id := core.NodeID(raw)
	n, ok := s.rt.Node(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "node not in graph"})
		return
	}

	g := s.rt.Graph()
	arcs := g.ForwardArcsOf(id)
	out := nodeResponse{ID: n.ID, Lat: n.Lat, Lon: n.Lon, Arcs: make([]arcView, 0, len(arcs))}
	for _, a := range arcs {
		name, _ := g.SegmentName(a.Segment)
		out.Arcs = append(out.Arcs, arcView{
			To:       g.NodeAt(a.Head).ID,
			Distance: a.Distance,
			Cost:     a.Cost,
			Segment:  a.Segment,
			Name:     name,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, statsResponse{GraphStats: s.rt.Stats(), Connectivity: s.rt.Connectivity()})
}

// fail maps query errors to status codes.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dijkstra.ErrNodeNotInGraph):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, router.ErrNilGraph):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
