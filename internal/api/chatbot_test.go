package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/model"
)

type chatResponse struct {
	Response string         `json:"response"`
	Recipes  []model.Recipe `json:"recipes"`
}

func seedChatData(t *testing.T, env *testEnv) {
	t.Helper()
	recipes := []model.Recipe{
		{Name: "Gulab Jamun", CuisineType: "Bengali", TasteProfile: "Sweet", IngredientsList: "milk powder, sugar"},
		{Name: "Chicken Curry", CuisineType: "Indian", TasteProfile: "Spicy", IngredientsList: "chicken, onion, chili"},
	}
	for i := range recipes {
		require.NoError(t, env.DB.Create(&recipes[i]).Error)
	}
	require.NoError(t, env.DB.Create(&model.Ingredient{Name: "Rice", Quantity: 1, Unit: "kg"}).Error)
	require.NoError(t, env.DB.Create(&model.Ingredient{Name: "Eggs", Quantity: 12, Unit: "pcs"}).Error)
}

func TestChatMatchesTaste(t *testing.T) {
	env := setupTestEnv(t, nil)
	seedChatData(t, env)

	w := postJSON(t, env, "/chatbot/chat/", map[string]string{"message": "Show me sweet recipes"})
	assert.Equal(t, 200, w.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, "Gulab Jamun", resp.Recipes[0].Name)
}

func TestChatMatchesIngredient(t *testing.T) {
	env := setupTestEnv(t, nil)
	seedChatData(t, env)

	w := postJSON(t, env, "/chatbot/chat/", map[string]string{"message": "I have chicken at home"})
	assert.Equal(t, 200, w.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, "Chicken Curry", resp.Recipes[0].Name)
}

func TestChatEmptyMessage(t *testing.T) {
	env := setupTestEnv(t, nil)
	seedChatData(t, env)

	w := postJSON(t, env, "/chatbot/chat/", map[string]string{"message": ""})
	assert.Equal(t, 200, w.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Recipes)
}

func TestChatListsAvailableIngredients(t *testing.T) {
	env := setupTestEnv(t, nil)
	seedChatData(t, env)

	w := postJSON(t, env, "/chatbot/chat/", map[string]string{"message": "what ingredients are available?"})
	assert.Equal(t, 200, w.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Recipes)
	assert.Contains(t, resp.Response, "Rice")
	assert.Contains(t, resp.Response, "Eggs")
}

func TestChatNoMatchGuidance(t *testing.T) {
	env := setupTestEnv(t, nil)
	seedChatData(t, env)

	w := postJSON(t, env, "/chatbot/chat/", map[string]string{"message": "hello there"})
	assert.Equal(t, 200, w.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Recipes)
	assert.NotEmpty(t, resp.Response)
}
