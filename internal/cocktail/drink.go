package cocktail

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// maxIngredients is the number of strIngredientN/strMeasureN slots in a
// TheCocktailDB drink object.
const maxIngredients = 15

// Language keys used in Drink.Instructions.
const (
	LangEnglish = "en"
	LangGerman  = "de"
	LangSpanish = "es"
	LangFrench  = "fr"
	LangItalian = "it"
	LangZhHans  = "zh-hans"
	LangZhHant  = "zh-hant"
)

var instructionFields = map[string]string{
	"strInstructions":        LangEnglish,
	"strInstructionsDE":      LangGerman,
	"strInstructionsES":      LangSpanish,
	"strInstructionsFR":      LangFrench,
	"strInstructionsIT":      LangItalian,
	"strInstructionsZH-HANS": LangZhHans,
	"strInstructionsZH-HANT": LangZhHant,
}

// Drink is one record returned by the API. Every field the API may omit or
// null out is a pointer; nil means absent.
type Drink struct {
	ID           string
	Name         *string
	Glass        *string
	Ingredients  []Ingredient
	Instructions map[string]*string
}

// Ingredient pairs an ingredient with its measure, in API slot order.
type Ingredient struct {
	Name    *string
	Measure *string
}

// Instruction returns the instructions in the given language, if present.
func (d Drink) Instruction(lang string) (string, bool) {
	v, ok := d.Instructions[lang]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// UnmarshalJSON decodes the flat strFoo layout of the API into a Drink.
func (d *Drink) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode drink: %w", err)
	}

	drink := Drink{
		Instructions: make(map[string]*string),
	}

	if id := str(raw, "idDrink"); id != nil {
		drink.ID = *id
	}
	drink.Name = str(raw, "strDrink")
	drink.Glass = str(raw, "strGlass")

	for field, lang := range instructionFields {
		if v := str(raw, field); v != nil {
			drink.Instructions[lang] = v
		}
	}

	for i := 1; i <= maxIngredients; i++ {
		n := strconv.Itoa(i)
		ingredient := Ingredient{
			Name:    str(raw, "strIngredient"+n),
			Measure: str(raw, "strMeasure"+n),
		}
		if ingredient.Name == nil && ingredient.Measure == nil {
			continue
		}
		drink.Ingredients = append(drink.Ingredients, ingredient)
	}

	*d = drink
	return nil
}

// str returns a pointer to the string stored under key, or nil when the key
// is missing, null or not a string.
func str(raw map[string]any, key string) *string {
	s, ok := raw[key].(string)
	if !ok {
		return nil
	}
	return &s
}

type randomResponse struct {
	Drinks []Drink `json:"drinks"`
}
