// Package drink turns TheCocktailDB records into chat replies.
package drink

import (
	"fmt"
	"strings"

	"github.com/j0lvera/drinkbot/internal/cocktail"
)

// NotFound is sent whenever no record can be formatted.
const NotFound = "no drink found"

// view is a record that passed validation; every field is present.
type view struct {
	name         string
	ingredients  []string
	instructions string
	glass        string
}

// validate checks the record in a fixed order: name, ingredients, English
// instructions, glass. Ingredient pairs missing either half are dropped.
func validate(d cocktail.Drink) (view, bool) {
	var v view

	if d.Name == nil {
		return v, false
	}
	v.name = *d.Name

	for _, i := range d.Ingredients {
		if i.Name == nil || i.Measure == nil {
			continue
		}
		v.ingredients = append(v.ingredients,
			fmt.Sprintf("%s (%s)", strings.TrimSpace(*i.Name), strings.TrimSpace(*i.Measure)))
	}
	if len(v.ingredients) == 0 {
		return v, false
	}

	instructions, ok := d.Instruction(cocktail.LangEnglish)
	if !ok {
		return v, false
	}
	v.instructions = instructions

	if d.Glass == nil {
		return v, false
	}
	v.glass = *d.Glass

	return v, true
}

// Format renders a record as the four-line reply, or NotFound when the
// record is incomplete.
func Format(d cocktail.Drink) string {
	v, ok := validate(d)
	if !ok {
		return NotFound
	}

	return fmt.Sprintf(
		"**Name**: %s\n**Ingredients**: %s\n**Instructions**: %s\n**Glass**: %s",
		strings.TrimSpace(v.name),
		strings.TrimSpace(strings.Join(v.ingredients, ", ")),
		strings.TrimSpace(v.instructions),
		strings.TrimSpace(v.glass),
	)
}
