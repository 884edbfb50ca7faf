package api

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/model"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/service"
)

// allowed upload extensions, as served by common phone cameras and scans.
var allowedImageExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
}

// RecipeHandler serves recipe creation, listing and the OCR upload
// pipeline.
type RecipeHandler struct {
	db         *gorm.DB
	recipeLog  *service.RecipeLogService
	extraction *service.ExtractionService
	images     service.ImageStore
	logger     *zap.Logger
}

func NewRecipeHandler(db *gorm.DB, recipeLog *service.RecipeLogService, extraction *service.ExtractionService, images service.ImageStore, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		db:         db,
		recipeLog:  recipeLog,
		extraction: extraction,
		images:     images,
		logger:     logger,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.Engine) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("/", h.CreateRecipe)
		recipes.GET("/", h.ListRecipes)
		recipes.POST("/upload-image/", h.UploadRecipeImage)
	}
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	difficulty := req.DifficultyLevel
	if difficulty == "" {
		difficulty = "Medium"
	}

	recipe := model.Recipe{
		Name:            req.Name,
		CuisineType:     req.CuisineType,
		PreparationTime: *req.PreparationTime,
		DifficultyLevel: difficulty,
		TasteProfile:    req.TasteProfile,
		Instructions:    req.Instructions,
		IngredientsList: req.IngredientsList,
	}

	if err := h.persistRecipe(c, &recipe); err != nil {
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var recipes []model.Recipe

	query := h.db.Order("id")
	if cuisine := c.Query("cuisine_type"); cuisine != "" {
		query = query.Where("cuisine_type = ?", cuisine)
	}

	skip, limit := pagination(c)
	if err := query.Offset(skip).Limit(limit).Find(&recipes).Error; err != nil {
		h.logger.Error("failed to list recipes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// UploadRecipeImage runs the OCR pipeline: extract text from the uploaded
// photo, segment it into a draft, and persist the draft exactly as a
// manually created recipe.
func (h *RecipeHandler) UploadRecipeImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Only JPEG, JPG, and PNG images are allowed."})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer src.Close()

	imageData, err := io.ReadAll(src)
	if err != nil || len(imageData) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}

	draft, rawText, err := h.extraction.ExtractRecipe(c.Request.Context(), imageData)
	if err != nil {
		h.logger.Error("recipe extraction failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	imagePath, err := h.images.Save(c.Request.Context(), imageData, ext)
	if err != nil {
		h.logger.Error("failed to store uploaded image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded image"})
		return
	}

	recipe := model.Recipe{
		Name:            draft.Name,
		CuisineType:     "Unknown",
		DifficultyLevel: "Medium",
		Instructions:    draft.Instructions,
		IngredientsList: draft.IngredientsList,
		SourceImage:     imagePath,
	}

	if err := h.persistRecipe(c, &recipe); err != nil {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Recipe image processed and saved successfully",
		"recipe":         recipe,
		"extracted_text": rawText,
	})
}

// persistRecipe writes the database row and mirrors it into the flat log.
// On failure it writes the error response and reports it to the caller.
func (h *RecipeHandler) persistRecipe(c *gin.Context, recipe *model.Recipe) error {
	if err := h.db.Create(recipe).Error; err != nil {
		h.logger.Error("failed to create recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return err
	}

	if err := h.recipeLog.Append(*recipe); err != nil {
		h.logger.Error("failed to append recipe log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write recipe log"})
		return err
	}

	return nil
}
