package application

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"retreat/internal/domain/entities"
)

// sortByFullName orders participations by person full name using Spanish
// collation, so "Álvarez" sorts next to "Alonso" rather than after "Zapata".
func sortByFullName(ps []entities.Participation) {
	col := collate.New(language.Spanish, collate.IgnoreCase)
	slices.SortStableFunc(ps, func(a, b entities.Participation) int {
		if c := col.CompareString(a.Person.NameFull, b.Person.NameFull); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
