package handlers

import (
	"fmt"
	"net/http"

	"foodbridge/graph"
	"foodbridge/models"
	"foodbridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CityHandler serves city graph management endpoints.
type CityHandler struct {
	Graph graph.Store
}

// NewCityHandler creates a CityHandler.
func NewCityHandler(store graph.Store) *CityHandler {
	return &CityHandler{Graph: store}
}

// CreateCityHandler handles POST /api/cities.
func (h *CityHandler) CreateCityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var city models.City
	if err := c.ShouldBindJSON(&city); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Graph.MergeCity(c.Request.Context(), city.Name); err != nil {
		logger.Error("Failed to merge city", zap.String("city", city.Name), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": fmt.Sprintf("City %s created successfully", city.Name)})
}

// CreateNeighborHandler handles POST /api/cities/neighbors. The edge is
// symmetric; re-creating it never overwrites the existing distance.
func (h *CityHandler) CreateNeighborHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var rel models.NeighborRelationship
	if err := c.ShouldBindJSON(&rel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Graph.MergeNeighbor(c.Request.Context(), rel.CityA, rel.CityB, rel.Distance); err != nil {
		logger.Error("Failed to merge neighbor edge",
			zap.String("cityA", rel.CityA), zap.String("cityB", rel.CityB), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": fmt.Sprintf("Neighbor relationship between %s and %s created successfully with distance %g.",
			rel.CityA, rel.CityB, rel.Distance),
	})
}

// GetCitiesHandler handles GET /api/cities.
func (h *CityHandler) GetCitiesHandler(c *gin.Context) {
	cities, err := h.Graph.CitiesWithNeighbors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cities)
}
