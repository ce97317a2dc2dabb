package material

import "image/color"

// ID identifies a material kind. The set is closed: materials are defined once
// at startup and referenced by id, never duplicated per cell.
type ID uint8

const (
	Empty ID = iota
	Stone
	Wood
	Sand
	Water
	Acid
	Smoke
	Fire

	// Boundary is the implicit material read back for out-of-range
	// coordinates. It is never stored in a grid cell.
	Boundary

	idCount
)

// Count is the number of registered material ids, Boundary included.
const Count = int(idCount)

// Phase is the movement-rule category a material belongs to.
type Phase uint8

const (
	// PhaseStatic materials never move; only reactions can mutate them.
	PhaseStatic Phase = iota
	// PhaseGranular materials fall straight down, then diagonally.
	PhaseGranular
	// PhaseLiquid materials fall like granular and additionally spread
	// sideways to level out.
	PhaseLiquid
	// PhaseGas materials rise, drift sideways, and decay.
	PhaseGas
)

// Reaction is the neighbor-interaction rule a material applies each tick.
type Reaction uint8

const (
	ReactNone Reaction = iota
	// ReactBurn ignites flammable neighbors with a per-tick probability.
	ReactBurn
	// ReactCorrode dissolves one corrodible neighbor per tick, spending a
	// unit of the material's own lifetime.
	ReactCorrode
)

// Properties holds the immutable behavior parameters of one material.
type Properties struct {
	Name     string
	Phase    Phase
	Reaction Reaction

	// Density orders displacement: a strictly denser mover swaps with a
	// lighter liquid or gas in its way. Equal densities never swap.
	Density int

	// Flammability is the per-tick probability that an adjacent burning
	// cell ignites this one. Zero means inert.
	Flammability float64

	// Lifetime is the initial decay counter for transient materials; zero
	// means the material persists indefinitely. DecaysTo is the material
	// left behind when the counter runs out.
	Lifetime uint8
	DecaysTo ID

	// Corrodible marks materials acid can dissolve.
	Corrodible bool

	Color color.RGBA
	// Shades is the number of jittered color variants used for visual
	// texture. Zero or one renders a flat color.
	Shades uint8
}

// defaultTable is the built-in material set. Densities only matter relative to
// each other; lifetimes are in ticks.
func defaultTable() [Count]Properties {
	var t [Count]Properties
	t[Empty] = Properties{
		Name:  "empty",
		Phase: PhaseStatic,
		Color: color.RGBA{R: 12, G: 12, B: 16, A: 255},
	}
	t[Stone] = Properties{
		Name:    "stone",
		Phase:   PhaseStatic,
		Density: 100,
		Color:   color.RGBA{R: 128, G: 128, B: 132, A: 255},
		Shades:  3,
	}
	t[Wood] = Properties{
		Name:         "wood",
		Phase:        PhaseStatic,
		Density:      60,
		Flammability: 0.25,
		Corrodible:   true,
		Color:        color.RGBA{R: 112, G: 78, B: 40, A: 255},
		Shades:       3,
	}
	t[Sand] = Properties{
		Name:       "sand",
		Phase:      PhaseGranular,
		Density:    50,
		Corrodible: true,
		Color:      color.RGBA{R: 214, G: 178, B: 110, A: 255},
		Shades:     4,
	}
	t[Water] = Properties{
		Name:    "water",
		Phase:   PhaseLiquid,
		Density: 10,
		Color:   color.RGBA{R: 40, G: 90, B: 210, A: 255},
		Shades:  3,
	}
	t[Acid] = Properties{
		Name:     "acid",
		Phase:    PhaseLiquid,
		Reaction: ReactCorrode,
		Density:  12,
		Lifetime: 16,
		DecaysTo: Empty,
		Color:    color.RGBA{R: 120, G: 230, B: 60, A: 255},
		Shades:   3,
	}
	t[Smoke] = Properties{
		Name:     "smoke",
		Phase:    PhaseGas,
		Density:  1,
		Lifetime: 48,
		DecaysTo: Empty,
		Color:    color.RGBA{R: 90, G: 90, B: 95, A: 255},
		Shades:   4,
	}
	t[Fire] = Properties{
		Name:     "fire",
		Phase:    PhaseStatic,
		Reaction: ReactBurn,
		Density:  2,
		Lifetime: 24,
		DecaysTo: Smoke,
		Color:    color.RGBA{R: 250, G: 120, B: 30, A: 255},
		Shades:   4,
	}
	t[Boundary] = Properties{
		Name:    "boundary",
		Phase:   PhaseStatic,
		Density: 1 << 20,
		Color:   color.RGBA{A: 255},
	}
	return t
}
