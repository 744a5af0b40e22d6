package glyph

import "math/rand"

// Catalog is the fixed set of fragments a stream can shed. Entries are one
// renderable unit each; several carry combining marks, so "one fragment" is
// not "one rune".
var Catalog = []string{
	"A̵̦̦̓͌͗͛̕",
	"A",
	"₳",
	"░A░",
	"A҉",
	"Ⱥ",
	"A̷",
	"A̲",
	"A̳",
	"A̾",
	"A͎",
	"A͓̽",
	"𝔸",
	"ᴀ",
	"∀",
}

// MaxRun is the longest fragment sequence a single draw produces.
const MaxRun = 16

// RandomRun samples 1 to MaxRun fragments uniformly from the catalog, each
// pick independent. The result is never empty.
func RandomRun(rng *rand.Rand) []string {
	n := 1 + rng.Intn(MaxRun)
	run := make([]string, n)
	for i := range run {
		run[i] = Catalog[rng.Intn(len(Catalog))]
	}
	return run
}
