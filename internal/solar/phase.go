package solar

// Phase is the eight-step visible phase of a satellite, derived from
// its cycle fraction.
type Phase int

// Phases in cycle order, starting dark.
const (
	New Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	Full
	WaningGibbous
	LastQuarter
	WaningCrescent
)

var phaseNames = [...]string{
	"new", "waxing crescent", "first quarter", "waxing gibbous",
	"full", "waning gibbous", "last quarter", "waning crescent",
}

var phaseGlyphs = [...]string{"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"}

var phaseDescriptions = [...]string{
	"a silky hole in the starry sky",
	"in waxing crescent, light creeping out",
	"in the half-light of the first quarter",
	"in waxing gibbous, nearly fully lit",
	"a brilliant gleaming disk in the dark",
	"in waning gibbous, beginning to retreat into darkness",
	"in the half-shadow of the last quarter",
	"in waning crescent, nearly covered in darkness",
}

// String returns the phase name.
func (p Phase) String() string { return phaseNames[p] }

// Glyph returns the unicode moon image for the phase.
func (p Phase) Glyph() string { return phaseGlyphs[p] }

// Describe returns a narrative description of the phase.
func (p Phase) Describe() string { return phaseDescriptions[p] }

// PhaseOf buckets a cycle fraction into the nearest of the eight phases.
func PhaseOf(fraction float64) Phase {
	return Phase(int(fraction*8+0.5) % 8)
}
