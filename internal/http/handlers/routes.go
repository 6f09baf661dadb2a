package handlers

import (
	"net/http"
	"strings"

	"travelapp/internal/domain/models"
	"travelapp/internal/routegen"

	"github.com/gin-gonic/gin"
)

type RoutesHandler struct {
	Generator *routegen.Generator
}

func NewRoutesHandler(gen *routegen.Generator) *RoutesHandler {
	return &RoutesHandler{Generator: gen}
}

// GET /api/routes?from=&to=&mode=
//
// Unknown location ids degrade to an empty result rather than an error,
// matching the generator contract.
func (h *RoutesHandler) Search(c *gin.Context) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "from and to are required")
		return
	}

	mode := strings.TrimSpace(c.DefaultQuery("mode", "all"))
	if mode != "all" && !models.TravelMode(mode).Valid() {
		respondError(c, http.StatusBadRequest, "validation_error", "mode must be all, train, bus or flight")
		return
	}

	routes := h.Generator.Generate(from, to)
	if mode != "all" {
		filtered := routes[:0]
		for _, r := range routes {
			if r.Mode == models.TravelMode(mode) {
				filtered = append(filtered, r)
			}
		}
		routes = filtered
	}

	c.JSON(http.StatusOK, gin.H{"routes": routes})
}
