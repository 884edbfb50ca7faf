package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/model"
)

// IngredientHandler serves CRUD over the ingredients table.
type IngredientHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewIngredientHandler(db *gorm.DB, logger *zap.Logger) *IngredientHandler {
	return &IngredientHandler{db: db, logger: logger}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.Engine) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.POST("/", h.CreateIngredient)
		ingredients.GET("/", h.ListIngredients)
		ingredients.PUT("/:id", h.UpdateIngredient)
		ingredients.DELETE("/:id", h.DeleteIngredient)
	}
}

func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient := model.Ingredient{
		Name:        req.Name,
		Quantity:    *req.Quantity,
		Unit:        req.Unit,
		Category:    req.Category,
		ExpiryDate:  req.ExpiryDate,
		LastUpdated: time.Now().UTC(),
	}

	if err := h.db.Create(&ingredient).Error; err != nil {
		h.logger.Error("failed to create ingredient", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ingredient"})
		return
	}

	c.JSON(http.StatusCreated, ingredient)
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	var ingredients []model.Ingredient

	query := h.db.Order("id")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	skip, limit := pagination(c)
	if err := query.Offset(skip).Limit(limit).Find(&ingredients).Error; err != nil {
		h.logger.Error("failed to list ingredients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients"})
		return
	}

	c.JSON(http.StatusOK, ingredients)
}

func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	var req UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var ingredient model.Ingredient
	if err := h.db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
			return
		}
		h.logger.Error("failed to load ingredient", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredient"})
		return
	}

	if req.Name != nil {
		ingredient.Name = *req.Name
	}
	if req.Quantity != nil {
		ingredient.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		ingredient.Unit = *req.Unit
	}
	if req.Category != nil {
		ingredient.Category = *req.Category
	}
	if req.ExpiryDate != nil {
		ingredient.ExpiryDate = req.ExpiryDate
	}
	ingredient.LastUpdated = time.Now().UTC()

	if err := h.db.Save(&ingredient).Error; err != nil {
		h.logger.Error("failed to update ingredient", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ingredient"})
		return
	}

	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	result := h.db.Delete(&model.Ingredient{}, id)
	if result.Error != nil {
		h.logger.Error("failed to delete ingredient", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ingredient"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted successfully"})
}

// pagination reads skip/limit query params with the store defaults.
func pagination(c *gin.Context) (int, int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}
	return skip, limit
}
