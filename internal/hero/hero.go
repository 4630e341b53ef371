// Package hero projects flat column-keyed table rows into the stable hero
// record schema and assembles the output envelope.
package hero

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/hyperifyio/herotable/internal/table"
)

// Hero is one projected row: a stable named schema plus the full flat
// header-keyed mapping kept verbatim under Raw for forward compatibility.
type Hero struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	PrimaryAttribute table.Value            `json:"primaryAttribute"`
	Base             BaseAttributes         `json:"base"`
	Raw              map[string]table.Value `json:"raw"`
}

// BaseAttributes are the promoted base-attribute fields. A field whose header
// key is missing from the row stays null.
type BaseAttributes struct {
	Str     table.Value `json:"str"`
	StrGain table.Value `json:"strGain"`
	Str30   table.Value `json:"str30"`

	Agi     table.Value `json:"agi"`
	AgiGain table.Value `json:"agiGain"`
	Agi30   table.Value `json:"agi30"`

	Int     table.Value `json:"int"`
	IntGain table.Value `json:"intGain"`
	Int30   table.Value `json:"int30"`

	Total     table.Value `json:"total"`
	TotalGain table.Value `json:"totalGain"`
	Total30   table.Value `json:"total30"`

	MS    table.Value `json:"ms"`
	Armor table.Value `json:"armor"`

	DmgMin table.Value `json:"dmgMin"`
	DmgMax table.Value `json:"dmgMax"`

	Range       table.Value `json:"range"`
	AttackSpeed table.Value `json:"attackSpeed"`
	BAT         table.Value `json:"bat"`
	AttackPoint table.Value `json:"attackPoint"`
	Backswing   table.Value `json:"backswing"`

	VisionDay   table.Value `json:"visionDay"`
	VisionNight table.Value `json:"visionNight"`

	TurnRate  table.Value `json:"turnRate"`
	Collision table.Value `json:"collision"`

	HP      table.Value `json:"hp"`
	HPRegen table.Value `json:"hpRegen"`

	MP      table.Value `json:"mp"`
	MPRegen table.Value `json:"mpRegen"`
}

// primaryAttributeKey is the header key of the primary-attribute column.
const primaryAttributeKey = "A"

type headerBinding struct {
	key   string
	field *table.Value
}

// headerBindings is the static header-key to named-field mapping, consulted
// by plain lookup during projection.
func (b *BaseAttributes) headerBindings() []headerBinding {
	return []headerBinding{
		{"STR", &b.Str},
		{"STR+", &b.StrGain},
		{"STR 30", &b.Str30},

		{"AGI", &b.Agi},
		{"AGI+", &b.AgiGain},
		{"AGI 30", &b.Agi30},

		{"INT", &b.Int},
		{"INT+", &b.IntGain},
		{"INT 30", &b.Int30},

		{"T", &b.Total},
		{"T+", &b.TotalGain},
		{"T30", &b.Total30},

		{"MS", &b.MS},
		{"AR", &b.Armor},

		{"DMG (MIN)", &b.DmgMin},
		{"DMG (MAX)", &b.DmgMax},

		{"RG", &b.Range},
		{"AS", &b.AttackSpeed},
		{"BAT", &b.BAT},
		{"ATK PT", &b.AttackPoint},
		{"ATK BS", &b.Backswing},

		{"VS-D", &b.VisionDay},
		{"VS-N", &b.VisionNight},

		{"TR", &b.TurnRate},
		{"COL", &b.Collision},

		{"HP", &b.HP},
		{"HP/S", &b.HPRegen},

		{"MP", &b.MP},
		{"MP/S", &b.MPRegen},
	}
}

// Project converts one extracted row into a Hero. Header keys and cells must
// be position-aligned and of equal length; a mismatch here is an internal
// invariant violation, distinct from the row-skip tolerance applied upstream.
func Project(headerKeys []string, cells []table.Cell) (Hero, error) {
	if len(headerKeys) != len(cells) {
		return Hero{}, fmt.Errorf("header/cell mismatch: %d headers vs %d cells", len(headerKeys), len(cells))
	}
	if len(cells) == 0 {
		return Hero{}, errors.New("row has no cells")
	}

	flat := make(map[string]table.Value, len(cells))
	for i, key := range headerKeys {
		flat[key] = cells[i].Value
	}

	name := "Unknown"
	if lt := cells[0].LinkText; lt != nil && *lt != "" {
		name = *lt
	} else if cells[0].Text != "" {
		name = cells[0].Text
	}

	h := Hero{
		ID:               Slug(name),
		Name:             name,
		PrimaryAttribute: flat[primaryAttributeKey],
		Raw:              flat,
	}
	for _, bind := range h.Base.headerBindings() {
		if v, ok := flat[bind.key]; ok {
			*bind.field = v
		}
	}
	return h, nil
}

var nonAlnumRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases a display name, collapses every maximal run of
// non-alphanumeric characters to a single hyphen, and trims leading and
// trailing hyphens.
func Slug(name string) string {
	s := strings.ToLower(name)
	s = nonAlnumRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Result is the output envelope written to disk.
type Result struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
	Heroes []Hero `json:"heroes"`
}

// BuildResult sorts heroes ascending by name and wraps them with the resolved
// source identifier and the final count.
func BuildResult(source string, heroes []Hero) Result {
	if heroes == nil {
		heroes = []Hero{}
	}
	slices.SortStableFunc(heroes, func(a, b Hero) int {
		return strings.Compare(a.Name, b.Name)
	})
	return Result{Source: source, Count: len(heroes), Heroes: heroes}
}
