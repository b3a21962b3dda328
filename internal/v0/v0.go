// Package v0 implements the colour-coded magic-pixel feature codec: eleven
// cells at (idx%4, 32+idx/4) for idx in 0..=10, each holding one symbol
// from the fixed palette in internal/magic, except cells 5-7 which pack
// raw data bytes across their RGBA channels instead of a palette symbol.
//
// Grounded on the teacher's colorspace.go, which also dispatches a small
// enumerated value (a colourspace constant) to a table of fixed behaviour;
// here the "table" is internal/magic's Symbol<->ARGB map and each cell's
// meaning is a small switch over the decoded Symbol.
package v0

import (
	"math"

	"github.com/ears-go/ears/internal/earserr"
	"github.com/ears-go/ears/internal/feature"
	"github.com/ears-go/ears/internal/imgmodel"
	"github.com/ears-go/ears/internal/magic"
)

func cellXY(idx int) (x, y int) {
	return idx % 4, 32 + idx/4
}

func readCell(img imgmodel.Image, idx int) magic.Symbol {
	x, y := cellXY(idx)
	r, g, b, a := img.At(x, y)
	return magic.FromARGB(imgmodel.ToARGB(r, g, b, a))
}

func writeCell(img imgmodel.Image, idx int, s magic.Symbol) {
	x, y := cellXY(idx)
	r, g, b, a := imgmodel.FromARGB(s.ARGB())
	img.Set(x, y, r, g, b, a)
}

// Detect reports whether img's cell 0 matches the V0 detection colour.
func Detect(img imgmodel.Image) bool {
	w, h := img.Bounds()
	if w != 64 || h != 64 {
		return false
	}
	r, g, b, a := img.At(0, 32)
	return imgmodel.ToARGB(r, g, b, a) == magic.V0DetectARGB
}

// unitToPxVal implements the zero-preserving signed pixel encoding for
// tail bends: 0 maps to 0, and every other unit value is nudged one step
// away from zero before re-centring on 128, so a fully black pixel byte
// always means "no bend" on decode. u*128 is rounded to the nearest
// integer (halves away from zero) before the nudge.
//
// For a non-zero u whose rounding lands exactly on j == 0 (0 < |u| <
// 1/256), this returns 127 where the reference encoder's two-sequential-if
// form returns 128. No representable (decoded) value ever lands in that
// gap, so the round trip this codec cares about is unaffected; only a raw
// sub-1/128 bend fed straight to the encoder would see the one-off.
func unitToPxVal(u float32) int32 {
	if u == 0 {
		return 0
	}
	j := int32(math.Round(float64(u * 128)))
	if j >= 0 {
		j--
	} else {
		j++
	}
	return j + 128
}

// pxValToUnit is the exact inverse of unitToPxVal.
func pxValToUnit(i int32) float32 {
	if i == 0 {
		return 0
	}
	j := i - 128
	if j < 0 {
		j--
	} else {
		j++
	}
	return float32(j) / 128
}

// Decode reads a full feature record from img's V0 cells. Callers must
// call Detect first; Decode does not re-check cell 0.
func Decode(img imgmodel.Image) *feature.Record {
	rec := &feature.Record{DataVersion: 0, EarAnchor: feature.AnchorCenter}

	switch readCell(img, 1) {
	case magic.Blue:
		rec.EarMode = feature.EarAbove
	case magic.Green:
		rec.EarMode = feature.EarSides
	case magic.Purple:
		rec.EarMode = feature.EarBehind
	case magic.Cyan:
		rec.EarMode = feature.EarAround
	case magic.Orange:
		rec.EarMode = feature.EarFloppy
	case magic.Pink:
		rec.EarMode = feature.EarCross
	case magic.Purple2:
		rec.EarMode = feature.EarOut
	case magic.White:
		rec.EarMode = feature.EarTall
	case magic.Gray:
		rec.EarMode = feature.EarTallCross
	default:
		rec.EarMode = feature.EarNone
	}

	if rec.EarMode != feature.EarNone && rec.EarMode != feature.EarBehind {
		switch readCell(img, 2) {
		case magic.Green:
			rec.EarAnchor = feature.AnchorFront
		case magic.Red:
			rec.EarAnchor = feature.AnchorBack
		default:
			rec.EarAnchor = feature.AnchorCenter
		}
	}

	switch readCell(img, 3) {
	case magic.Green:
		rec.Claws, rec.Horn = true, false
	case magic.Purple:
		rec.Claws, rec.Horn = false, true
	case magic.Cyan:
		rec.Claws, rec.Horn = true, true
	default:
		rec.Claws, rec.Horn = false, false
	}

	var tailMode feature.TailMode
	switch readCell(img, 4) {
	case magic.Blue:
		tailMode = feature.TailDown
	case magic.Green:
		tailMode = feature.TailBack
	case magic.Purple:
		tailMode = feature.TailUp
	case magic.Orange:
		tailMode = feature.TailVertical
	case magic.Pink:
		tailMode = feature.TailCross
	case magic.Purple2:
		tailMode = feature.TailCrossOverlap
	case magic.White:
		tailMode = feature.TailStar
	case magic.Gray:
		tailMode = feature.TailStarOverlap
	default:
		tailMode = feature.TailNone
	}

	if tailMode != feature.TailNone {
		x5, y5 := cellXY(5)
		r5, g5, b5, a5 := img.At(x5, y5)
		bend0 := pxValToUnit(255-int32(a5)) * 90
		bend1 := pxValToUnit(int32(r5)) * 90
		bend2 := pxValToUnit(int32(g5)) * 90
		bend3 := pxValToUnit(int32(b5)) * 90
		bends := [4]float32{bend0, bend1, bend2, bend3}

		segments := 1
		for i := 1; i <= 3; i++ {
			if bends[i] != 0 {
				segments++
			}
		}

		rec.Tail = &feature.Tail{Mode: tailMode, Segments: segments, Bends: bends}
	}

	// Cells 6/7 pack raw data bytes (not palette symbols) across R/G/B;
	// offsets follow the ARGB bit positions 16/8/0 used throughout this
	// codec (R/G/B respectively), per the reference's to_argb_hex layout.
	x6, y6 := cellXY(6)
	r6, g6, b6, _ := img.At(x6, y6)
	widthRaw := int(r6)
	heightRaw := int(g6)
	depthRaw := int(b6)

	x7, y7 := cellXY(7)
	r7, g7, b7, _ := img.At(x7, y7)
	chestByte := r7
	offsetRaw := int(g7)

	f := float32(chestByte) / 128
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	rec.ChestSize = f
	rec.CapeEnabled = b7&0x10 != 0

	if offsetRaw > 8-heightRaw {
		offsetRaw = 8 - heightRaw
	}
	width, height, depth := widthRaw, heightRaw, depthRaw
	if width > 7 {
		width = 7
	}
	if height > 4 {
		height = 4
	}
	if depth > 8 {
		depth = 8
	}

	if width != 0 || height != 0 || depth != 0 {
		rec.Snout = &feature.Snout{Offset: offsetRaw, Width: width, Height: height, Depth: depth}
	}

	var wingMode feature.WingMode
	switch readCell(img, 8) {
	case magic.Pink:
		wingMode = feature.WingSymmetricDual
	case magic.Green:
		wingMode = feature.WingSymmetricSingle
	case magic.Cyan:
		wingMode = feature.WingAsymmetricL
	case magic.Orange:
		wingMode = feature.WingAsymmetricR
	case magic.Purple:
		wingMode = feature.WingAsymmetricDual
	case magic.Purple2:
		wingMode = feature.WingFlat
	default:
		wingMode = feature.WingNone
	}
	if wingMode != feature.WingNone {
		animated := readCell(img, 9) != magic.Red
		rec.Wing = &feature.Wing{Mode: wingMode, Animated: animated}
	}

	rec.Emissive = readCell(img, 10) == magic.Orange

	return rec
}

// Encode writes rec into img's V0 cells, setting cell 0 to the detection
// colour. The anchor cell is left untouched when ear_mode is None or
// Behind; cell 6 is left untouched when no snout is present, matching the
// reference writer's omissions. Where the historical reference writer
// corrupts snout height on an out-of-range offset, this writer clamps the
// offset instead (see the V0 snout-offset REDESIGN FLAG in DESIGN.md).
func Encode(img imgmodel.Image, rec *feature.Record) error {
	w, h := img.Bounds()
	if w != 64 || h != 64 {
		return earserr.Newf(earserr.KindImageBounds, "v0: image must be 64x64, got %dx%d", w, h)
	}

	writeCell(img, 0, magic.Blue)

	earSym := magic.Unknown
	switch rec.EarMode {
	case feature.EarAbove:
		earSym = magic.Blue
	case feature.EarSides:
		earSym = magic.Green
	case feature.EarBehind:
		earSym = magic.Purple
	case feature.EarAround:
		earSym = magic.Cyan
	case feature.EarFloppy:
		earSym = magic.Orange
	case feature.EarCross:
		earSym = magic.Pink
	case feature.EarOut:
		earSym = magic.Purple2
	case feature.EarTall:
		earSym = magic.White
	case feature.EarTallCross:
		earSym = magic.Gray
	}
	writeCell(img, 1, earSym)

	if rec.EarMode != feature.EarNone && rec.EarMode != feature.EarBehind {
		anchorSym := magic.Blue
		switch rec.EarAnchor {
		case feature.AnchorFront:
			anchorSym = magic.Green
		case feature.AnchorBack:
			anchorSym = magic.Red
		}
		writeCell(img, 2, anchorSym)
	}

	clawsHornSym := magic.Unknown
	switch {
	case rec.Claws && rec.Horn:
		clawsHornSym = magic.Cyan
	case rec.Claws:
		clawsHornSym = magic.Green
	case rec.Horn:
		clawsHornSym = magic.Purple
	}
	writeCell(img, 3, clawsHornSym)

	tailSym := magic.Unknown
	if rec.Tail != nil {
		switch rec.Tail.Mode {
		case feature.TailDown:
			tailSym = magic.Blue
		case feature.TailBack:
			tailSym = magic.Green
		case feature.TailUp:
			tailSym = magic.Purple
		case feature.TailVertical:
			tailSym = magic.Orange
		case feature.TailCross:
			tailSym = magic.Pink
		case feature.TailCrossOverlap:
			tailSym = magic.Purple2
		case feature.TailStar:
			tailSym = magic.White
		case feature.TailStarOverlap:
			tailSym = magic.Gray
		}
	}
	writeCell(img, 4, tailSym)

	if rec.Tail != nil {
		bends := rec.Tail.Bends
		alphaByte := uint8(255 - unitToPxVal(bends[0]/90))
		r5 := uint8(unitToPxVal(bends[1] / 90))
		g5 := uint8(unitToPxVal(bends[2] / 90))
		b5 := uint8(unitToPxVal(bends[3] / 90))
		x5, y5 := cellXY(5)
		img.Set(x5, y5, r5, g5, b5, alphaByte)
	}

	var offsetByte uint8
	if rec.Snout != nil {
		width, height, depth := rec.Snout.Width, rec.Snout.Height, rec.Snout.Depth
		if depth > 8 {
			depth = 8
		}
		if height > 4 {
			height = 4
		}
		if width > 7 {
			width = 7
		}
		offset := rec.Snout.Offset
		if offset > 8-height {
			offset = 8 - height
		}
		x6, y6 := cellXY(6)
		img.Set(x6, y6, uint8(width), uint8(height), uint8(depth), 0)
		offsetByte = uint8(offset)
	}

	chestByte := uint8(rec.ChestSize * 128)
	var capeBit uint8
	if rec.CapeEnabled {
		capeBit = 0x10
	}
	x7, y7 := cellXY(7)
	img.Set(x7, y7, chestByte, offsetByte, capeBit, 0)

	wingSym := magic.Unknown
	if rec.Wing != nil {
		switch rec.Wing.Mode {
		case feature.WingSymmetricDual:
			wingSym = magic.Pink
		case feature.WingSymmetricSingle:
			wingSym = magic.Green
		case feature.WingAsymmetricL:
			wingSym = magic.Cyan
		case feature.WingAsymmetricR:
			wingSym = magic.Orange
		case feature.WingAsymmetricDual:
			wingSym = magic.Purple
		case feature.WingFlat:
			wingSym = magic.Purple2
		}
	}
	writeCell(img, 8, wingSym)

	if rec.Wing != nil {
		if rec.Wing.Animated {
			writeCell(img, 9, magic.Blue)
		} else {
			writeCell(img, 9, magic.Red)
		}
	}

	if rec.Emissive {
		writeCell(img, 10, magic.Orange)
	} else {
		writeCell(img, 10, magic.Blue)
	}

	return nil
}
