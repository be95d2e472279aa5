package projection

import (
	"strings"

	"github.com/career-compass/projector/pkg/models"
	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// Key normalizes a profession name for lookups.
func Key(profession string) string {
	return fold.String(strings.TrimSpace(profession))
}

// Index maps normalized profession names to their profile for one track.
type Index map[string]models.Profession

// NewIndex builds an index over a reference table.
//
// If a table contains the same profession more than once, the first
// row wins.
func NewIndex(professions []models.Profession) Index {
	idx := make(Index, len(professions))
	for _, p := range professions {
		k := Key(p.Name)
		if _, ok := idx[k]; ok {
			continue
		}
		idx[k] = p
	}
	return idx
}

// Lookup finds the profile for a profession.
func (i Index) Lookup(profession string) (models.Profession, bool) {
	p, ok := i[Key(profession)]
	return p, ok
}

// Tables are the civilian and the military reference tables.
type Tables struct {
	Civilian Index
	Military Index
}

// NewTables indexes both reference tables.
func NewTables(civilian, military []models.Profession) Tables {
	return Tables{
		Civilian: NewIndex(civilian),
		Military: NewIndex(military),
	}
}

func (t Tables) track(track models.Track) Index {
	if track == models.Military {
		return t.Military
	}
	return t.Civilian
}
