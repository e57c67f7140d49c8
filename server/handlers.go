package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/lvroute/planner"
)

// pointJSON is a query point in percent. Pointers make 0 distinguishable
// from a missing field.
type pointJSON struct {
	X *float64 `json:"x" binding:"required"`
	Y *float64 `json:"y" binding:"required"`
}

type routeRequest struct {
	Start pointJSON `json:"start"`
	End   pointJSON `json:"end"`
}

type nodeJSON struct {
	ID int64   `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type routeResponse struct {
	RequestID      string     `json:"request_id"`
	Found          bool       `json:"found"`
	DistanceMeters float64    `json:"distance_meters"`
	Start          nodeJSON   `json:"start"`
	Goal           nodeJSON   `json:"goal"`
	Path           []nodeJSON `json:"path"`
	Expanded       int        `json:"expanded"`
}

type statsResponse struct {
	Nodes           int     `json:"nodes"`
	Ways            int     `json:"ways"`
	MetricScale     float64 `json:"metric_scale"`
	CachedNeighbors int     `json:"cached_neighbors"`
}

func (s *Server) handleRoute(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "request_id": c.GetString(ctxRequestID)})
		return
	}

	route, err := s.planner.Plan(c.Request.Context(), planner.Query{
		StartX: *req.Start.X, StartY: *req.Start.Y,
		EndX: *req.End.X, EndY: *req.End.Y,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, planner.ErrQueryOutOfRange) {
			status = http.StatusBadRequest
		}
		s.options.Logger.ErrorContext(c.Request.Context(), "route failed",
			"request_id", c.GetString(ctxRequestID), "error", err)
		c.JSON(status, gin.H{"error": err.Error(), "request_id": c.GetString(ctxRequestID)})
		return
	}

	resp := routeResponse{
		RequestID:      c.GetString(ctxRequestID),
		Found:          route.Found,
		DistanceMeters: route.DistanceMeters,
		Start:          nodeJSON{ID: int64(route.Start.ID), X: route.Start.X, Y: route.Start.Y},
		Goal:           nodeJSON{ID: int64(route.Goal.ID), X: route.Goal.X, Y: route.Goal.Y},
		Path:           make([]nodeJSON, 0, route.Path.Len()),
		Expanded:       route.Expanded,
	}
	for _, n := range route.Path.Nodes {
		resp.Path = append(resp.Path, nodeJSON{ID: int64(n.ID), X: n.X, Y: n.Y})
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleStats(c *gin.Context) {
	m := s.planner.Model()
	c.JSON(http.StatusOK, statsResponse{
		Nodes:           m.Len(),
		Ways:            m.WayCount(),
		MetricScale:     m.MetricScale(),
		CachedNeighbors: m.CachedNeighbors(),
	})
}
