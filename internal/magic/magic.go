// Package magic holds the fixed colour palette the V0 feature codec keys
// off of: a small set of named ARGB constants and the symbol <-> ARGB
// lookup between them.
//
// The shape follows the teacher's colourspace table in colorspace.go,
// which maps an enumerated colorspace constant to a conversion function;
// here the enumeration maps instead to a fixed ARGB word, and the mapping
// runs both directions (symbol -> ARGB for writers, ARGB -> symbol for
// readers).
package magic

// Symbol identifies one of the named colours a V0 magic-pixel cell can
// hold. Unknown is the zero value and is also what any unrecognized ARGB
// value decodes to.
type Symbol int

const (
	Unknown Symbol = iota
	Blue
	Green
	Red
	Purple
	Cyan
	Orange
	Pink
	Purple2
	White
	Gray
)

// argbOf gives each symbol its fixed alpha-0xFF ARGB word.
var argbOf = map[Symbol]uint32{
	Unknown: 0xFF000000,
	Blue:    0xFF3F23D8,
	Green:   0xFF23D848,
	Red:     0xFFD82350,
	Purple:  0xFFB923D8,
	Cyan:    0xFF23D8C6,
	Orange:  0xFFD87823,
	Pink:    0xFFD823B7,
	Purple2: 0xFFD823FF,
	White:   0xFFFEFDF2,
	Gray:    0xFF5E605A,
}

// symbolOf is the reverse of argbOf, built once at init time.
var symbolOf = func() map[uint32]Symbol {
	m := make(map[uint32]Symbol, len(argbOf))
	for s, v := range argbOf {
		m[v] = s
	}
	return m
}()

// ARGB returns the fixed ARGB word for s.
func (s Symbol) ARGB() uint32 {
	return argbOf[s]
}

// FromARGB maps an ARGB word to its symbol, or Unknown if the value is
// not one of the fixed palette entries.
func FromARGB(argb uint32) Symbol {
	if s, ok := symbolOf[argb]; ok {
		return s
	}
	return Unknown
}

// V0DetectARGB is the ARGB value the V0 detector looks for at cell 0.
const V0DetectARGB = 0xFF3F23D8 // Blue

// V1DetectARGB is the ARGB value the V1 detector looks for at cell (0,0).
const V1DetectARGB = 0xFFEA2501
