package service

import "strings"

// UntitledRecipe is the fallback name when OCR text carries no usable title.
const UntitledRecipe = "Untitled Recipe"

// RecipeDraft is a structured recipe segmented out of raw OCR text,
// pending a storage decision by the caller.
type RecipeDraft struct {
	Name            string
	IngredientsList string
	Instructions    string
}

// section markers recognized at the start of a line, case-insensitive;
// list numbering and bullets ahead of a marker are ignored.
var (
	ingredientAnchors  = []string{"ingredient"}
	instructionAnchors = []string{"instruction", "direction", "method"}
)

// ParseRecipeText segments raw OCR output into a recipe draft. Lines are
// scanned for anchor keywords: everything between an "Ingredients" anchor
// and the next anchor becomes the ingredient list, everything after an
// "Instructions"/"Directions"/"Method" anchor becomes the instructions,
// and the first non-empty line before any anchor becomes the name. Text on
// an anchor line after the colon belongs to that anchor's section.
//
// Parsing never fails: text without anchors lands wholesale in
// Instructions with a placeholder name.
func ParseRecipeText(raw string) RecipeDraft {
	const (
		inPreamble = iota
		inIngredients
		inInstructions
	)

	var (
		name         string
		ingredients  []string
		instructions []string
		section      = inPreamble
		sawAnchor    = false
	)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		if anchored, rest := matchAnchor(line, ingredientAnchors); anchored {
			section = inIngredients
			sawAnchor = true
			if rest != "" {
				ingredients = append(ingredients, rest)
			}
			continue
		}
		if anchored, rest := matchAnchor(line, instructionAnchors); anchored {
			section = inInstructions
			sawAnchor = true
			if rest != "" {
				instructions = append(instructions, rest)
			}
			continue
		}

		if line == "" {
			continue
		}

		switch section {
		case inPreamble:
			if name == "" {
				name = line
			}
		case inIngredients:
			ingredients = append(ingredients, line)
		case inInstructions:
			instructions = append(instructions, line)
		}
	}

	// Without anchors the whole text is treated as instructions; a bare
	// first line does not make a trustworthy title.
	if !sawAnchor {
		return RecipeDraft{
			Name:         UntitledRecipe,
			Instructions: strings.TrimSpace(raw),
		}
	}

	if name == "" {
		name = UntitledRecipe
	}

	return RecipeDraft{
		Name:            name,
		IngredientsList: strings.Join(ingredients, ", "),
		Instructions:    strings.Join(instructions, "\n"),
	}
}

// listPrefixChars are numbering and bullet characters that OCR sources put
// in front of section markers, as in "1. Ingredients:" or "- Method:".
const listPrefixChars = "0123456789.)(-*# \t"

// matchAnchor reports whether the line contains one of the anchor keywords
// and returns any content that follows the keyword's colon.
func matchAnchor(line string, anchors []string) (bool, string) {
	lower := strings.TrimLeft(strings.ToLower(line), listPrefixChars)
	for _, a := range anchors {
		idx := strings.Index(lower, a)
		if idx < 0 {
			continue
		}
		// Only treat the keyword as a section marker when it leads the
		// line; "mix the ingredients well" inside a step is not an anchor.
		if idx > 2 {
			continue
		}
		rest := ""
		if colon := strings.Index(line, ":"); colon >= 0 {
			rest = strings.TrimSpace(line[colon+1:])
		}
		return true, rest
	}
	return false, ""
}
