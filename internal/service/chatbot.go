package service

import (
	"strings"
	"unicode"

	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/model"
)

// tasteWords is the fixed vocabulary of taste descriptors recognized in
// chat messages; these match against a recipe's taste profile only.
var tasteWords = map[string]struct{}{
	"sweet":  {},
	"spicy":  {},
	"sour":   {},
	"savory": {},
	"salty":  {},
	"bitter": {},
	"tangy":  {},
}

// stopwords are query scaffolding that must never be treated as an
// ingredient hint ("show me sweet recipes" should not match anything on
// "show").
var stopwords = map[string]struct{}{
	"show": {}, "give": {}, "find": {}, "want": {}, "need": {},
	"have": {}, "got": {}, "make": {}, "cook": {}, "eat": {},
	"using": {}, "with": {}, "and": {}, "the": {}, "for": {},
	"some": {}, "any": {}, "what": {}, "can": {}, "you": {},
	"please": {}, "suggest": {}, "something": {}, "like": {},
	"recipe": {}, "recipes": {}, "dish": {}, "meal": {}, "food": {},
	"today": {}, "tonight": {}, "available": {}, "ingredients": {},
	"ingredient": {},
}

// MatchRecipes filters recipes by the taste and ingredient hints found in
// a free-text message. A recipe is included when any taste word from the
// message appears in its taste profile, or any other message token appears
// as a substring of its ingredient list. The input order is preserved and
// no ranking is applied. An empty or unrecognized message yields an empty
// result rather than the whole store.
func MatchRecipes(message string, recipes []model.Recipe) []model.Recipe {
	tastes, hints := extractKeywords(message)
	if len(tastes) == 0 && len(hints) == 0 {
		return nil
	}

	var matched []model.Recipe
	for _, r := range recipes {
		if recipeMatches(r, tastes, hints) {
			matched = append(matched, r)
		}
	}
	return matched
}

// extractKeywords lower-cases and tokenizes the message, splitting tokens
// into taste-vocabulary words and arbitrary ingredient hints. Stopwords
// and tokens shorter than three runes are dropped.
func extractKeywords(message string) (tastes, hints []string) {
	tokens := strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	for _, tok := range tokens {
		if _, ok := tasteWords[tok]; ok {
			tastes = append(tastes, tok)
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}
		if len([]rune(tok)) < 3 {
			continue
		}
		hints = append(hints, tok)
	}
	return tastes, hints
}

func recipeMatches(r model.Recipe, tastes, hints []string) bool {
	profile := strings.ToLower(r.TasteProfile)
	for _, t := range tastes {
		if strings.Contains(profile, t) {
			return true
		}
	}

	ingredients := strings.ToLower(r.IngredientsList)
	for _, h := range hints {
		if strings.Contains(ingredients, h) {
			return true
		}
	}
	return false
}
