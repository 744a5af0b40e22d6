package palette

import (
	"math/rand"

	"github.com/charmbracelet/lipgloss"
)

// Class splits the palette into the dominant display color and the
// decorative ones.
type Class int

const (
	Accent Class = iota
	Primary
)

// Entry is one weighted color in the fixed palette.
type Entry struct {
	Class  Class
	Color  lipgloss.Color
	Weight int
	Style  lipgloss.Style
}

func accent(c string) Entry {
	return Entry{Accent, lipgloss.Color(c), 10, lipgloss.NewStyle().Foreground(lipgloss.Color(c))}
}

func primary(c string) Entry {
	return Entry{Primary, lipgloss.Color(c), 30, lipgloss.NewStyle().Foreground(lipgloss.Color(c))}
}

// Catalog holds the 8 ANSI-256 foreground colors. Accents carry weight 10
// each, the primary weight 30; total weight is 100.
var Catalog = []Entry{
	accent("0"),
	accent("18"),
	accent("29"),
	accent("39"),
	accent("128"),
	accent("199"),
	accent("206"),
	primary("255"),
}

// TotalWeight returns the sum of all catalog weights.
func TotalWeight() int {
	total := 0
	for _, e := range Catalog {
		total += e.Weight
	}
	return total
}

// Random picks a catalog entry with probability proportional to its weight,
// by cumulative scan: draw in [0,total), subtract weights until one covers
// the draw. Well-formed weights always cover the range, so the scan cannot
// fall through.
func Random(rng *rand.Rand) Entry {
	choice := rng.Intn(TotalWeight())
	for _, e := range Catalog {
		if choice < e.Weight {
			return e
		}
		choice -= e.Weight
	}
	return Catalog[len(Catalog)-1]
}
