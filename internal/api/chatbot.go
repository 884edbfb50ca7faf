package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/model"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/service"
)

// ChatbotHandler answers free-text messages by keyword-matching stored
// recipes against taste and ingredient hints.
type ChatbotHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewChatbotHandler(db *gorm.DB, logger *zap.Logger) *ChatbotHandler {
	return &ChatbotHandler{db: db, logger: logger}
}

func (h *ChatbotHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/chatbot/chat/", h.Chat)
}

func (h *ChatbotHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var recipes []model.Recipe
	if err := h.db.Order("id").Find(&recipes).Error; err != nil {
		h.logger.Error("failed to load recipes for chat", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	matched := service.MatchRecipes(req.Message, recipes)
	if len(matched) > 0 {
		c.JSON(http.StatusOK, gin.H{
			"response": fmt.Sprintf("I found %d recipes matching your request.", len(matched)),
			"recipes":  matched,
		})
		return
	}

	// No recipe matched; a question about the pantry gets the inventory.
	lower := strings.ToLower(req.Message)
	if strings.Contains(lower, "available") || strings.Contains(lower, "ingredient") {
		var ingredients []model.Ingredient
		if err := h.db.Order("id").Find(&ingredients).Error; err != nil {
			h.logger.Error("failed to load ingredients for chat", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients"})
			return
		}
		names := make([]string, 0, len(ingredients))
		for _, ing := range ingredients {
			names = append(names, ing.Name)
		}
		c.JSON(http.StatusOK, gin.H{
			"response": "You currently have: " + strings.Join(names, ", "),
			"recipes":  []model.Recipe{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": "I couldn't find any matching recipes. Try telling me a taste (sweet, spicy, savory) or an ingredient you have.",
		"recipes":  []model.Recipe{},
	})
}
