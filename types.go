package ears

import "github.com/ears-go/ears/internal/feature"

// Enum types mirror internal/feature's declaration order exactly, since V1
// decodes wire ordinals directly off that order; see feature.go's own
// comment on why reordering any of these consts would change the format.
type (
	EarMode   = feature.EarMode
	EarAnchor = feature.EarAnchor
	TailMode  = feature.TailMode
	WingMode  = feature.WingMode
)

const (
	EarNone      = feature.EarNone
	EarAbove     = feature.EarAbove
	EarSides     = feature.EarSides
	EarBehind    = feature.EarBehind
	EarAround    = feature.EarAround
	EarFloppy    = feature.EarFloppy
	EarCross     = feature.EarCross
	EarOut       = feature.EarOut
	EarTall      = feature.EarTall
	EarTallCross = feature.EarTallCross
)

const (
	AnchorCenter = feature.AnchorCenter
	AnchorFront  = feature.AnchorFront
	AnchorBack   = feature.AnchorBack
)

const (
	TailNone         = feature.TailNone
	TailDown         = feature.TailDown
	TailBack         = feature.TailBack
	TailUp           = feature.TailUp
	TailVertical     = feature.TailVertical
	TailCross        = feature.TailCross
	TailCrossOverlap = feature.TailCrossOverlap
	TailStar         = feature.TailStar
	TailStarOverlap  = feature.TailStarOverlap
)

const (
	WingNone            = feature.WingNone
	WingSymmetricDual   = feature.WingSymmetricDual
	WingSymmetricSingle = feature.WingSymmetricSingle
	WingAsymmetricL     = feature.WingAsymmetricL
	WingAsymmetricR     = feature.WingAsymmetricR
	WingAsymmetricDual  = feature.WingAsymmetricDual
	WingFlat            = feature.WingFlat
)

// Tail is the optional tail sub-record of a FeatureRecord.
type Tail = feature.Tail

// Snout is the optional snout sub-record of a FeatureRecord.
type Snout = feature.Snout

// Wing is the optional wing sub-record of a FeatureRecord.
type Wing = feature.Wing

// FeatureRecord is the full decoded cosmetic-feature set of one skin,
// independent of which wire version produced or will consume it.
type FeatureRecord = feature.Record
