package http

import (
	"math/rand"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/puzzles"
	"sudoku-engine/internal/sudoku"
	"sudoku-engine/pkg/constants"
)

// Handler carries the dependencies of the HTTP surface. Generation is
// serialized: the engine is single-threaded by contract.
type Handler struct {
	store *puzzles.Store
	rng   *rand.Rand

	genMu sync.Mutex
}

// NewHandler builds the HTTP handler set. store may be nil, in which case
// generated puzzles are not persisted and lookups 404.
func NewHandler(store *puzzles.Store, rng *rand.Rand) *Handler {
	return &Handler{store: store, rng: rng}
}

// RegisterRoutes attaches all endpoints to the gin engine.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", h.healthHandler)

	api := r.Group("/api")
	{
		api.POST("/generate", h.generateHandler)
		api.GET("/puzzle/:id", h.puzzleHandler)
		api.GET("/puzzles", h.listHandler)
	}
}

func (h *Handler) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

type generateRequest struct {
	Dimension  int    `json:"dimension"` // subgrid size k, default 3
	Difficulty string `json:"difficulty"`
}

func (h *Handler) generateHandler(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Dimension == 0 {
		req.Dimension = constants.DefaultSubgridSize
	}
	diff := core.ParseDifficulty(req.Difficulty)
	if diff == core.DifficultyUnknown {
		diff = core.DifficultyMedium
	}

	h.genMu.Lock()
	b, res, err := sudoku.Generate(req.Dimension, diff, h.rng)
	h.genMu.Unlock()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	p := core.Puzzle{
		Dimension:  b.Size(),
		Difficulty: diff,
		Givens:     sudoku.Encode(b),
		Solution:   sudoku.Encode(res.Solution),
		Clues:      b.Clues(),
	}
	if h.store != nil {
		if p, err = h.store.Save(p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	forced := 0
	if fc := b.ForcedCells(); fc != nil {
		forced = fc.Count()
	}
	c.JSON(http.StatusOK, core.GenerationResult{
		Puzzle:        p,
		Stats:         res.Stats.Map(),
		CellsRemoved:  res.CellsRemoved,
		ForcedCells:   forced,
		ElapsedMillis: res.Stats.TimeMS,
	})
}

func (h *Handler) puzzleHandler(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no puzzle store configured"})
		return
	}
	p, err := h.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "puzzle not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) listHandler(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{"puzzles": []core.Puzzle{}})
		return
	}
	diff := core.Difficulty(c.Query("difficulty"))
	list, err := h.store.Recent(diff, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if list == nil {
		list = []core.Puzzle{}
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": list})
}
