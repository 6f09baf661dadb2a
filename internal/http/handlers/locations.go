package handlers

import (
	"net/http"

	"travelapp/internal/locations"

	"github.com/gin-gonic/gin"
)

// GET /api/locations?q=
func ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": locations.Search(c.Query("q"))})
}

// GET /api/locations/:id
func GetLocation(c *gin.Context) {
	loc, ok := locations.ByID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "not_found", "location not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": loc})
}
