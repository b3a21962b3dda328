// Package v1 implements the bit-packed feature codec across the 16 cells
// at (x, 32+y) for x,y in 0..=3. Cell (0,0) holds the detection colour;
// the remaining 15 cells carry 3 bytes each (R,G,B), giving a 45-byte,
// 360-bit payload decoded with internal/bitio in strict field order.
//
// Grounded on the teacher's internal/codestream/header.go, which also
// parses a fixed sequence of marker fields in a strict, gapless order out
// of a byte buffer; here the buffer comes from pixel channels instead of
// a codestream, and the reader is internal/bitio rather than byte-aligned
// marker parsing, since V1's fields are sub-byte width.
package v1

import (
	"github.com/ears-go/ears/internal/bitio"
	"github.com/ears-go/ears/internal/earserr"
	"github.com/ears-go/ears/internal/feature"
	"github.com/ears-go/ears/internal/imgmodel"
	"github.com/ears-go/ears/internal/magic"
)

const payloadBytes = 45 // (16-1) cells * 3 bytes

// tailModeFromV1Ordinal restricts TailMode decoding to the five variants
// V1's 3-bit field actually represents (None..Vertical); the higher
// ordinals Cross/CrossOverlap/Star/StarOverlap are reserved in this wire
// version and fall back to TailNone, even for the values 5-7 that the
// 3-bit field can carry.
func tailModeFromV1Ordinal(ord int) feature.TailMode {
	if ord < 0 || ord > 4 {
		return feature.TailNone
	}
	return feature.TailModeFromOrdinal(ord)
}

// Detect reports whether img's cell (0,0) matches the V1 detection colour.
func Detect(img imgmodel.Image) bool {
	w, h := img.Bounds()
	if w != 64 || h != 64 {
		return false
	}
	r, g, b, a := img.At(0, 32)
	return imgmodel.ToARGB(r, g, b, a) == magic.V1DetectARGB
}

func readPayload(img imgmodel.Image) []byte {
	data := make([]byte, 0, payloadBytes)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x == 0 && y == 0 {
				continue
			}
			r, g, b, _ := img.At(x, 32+y)
			data = append(data, r, g, b)
		}
	}
	return data
}

func writePayload(img imgmodel.Image, data []byte) {
	img.Set(0, 32, 0xEA, 0x25, 0x01, 0xFF)
	i := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x == 0 && y == 0 {
				continue
			}
			var r, g, b byte
			if i < len(data) {
				r = data[i]
			}
			if i+1 < len(data) {
				g = data[i+1]
			}
			if i+2 < len(data) {
				b = data[i+2]
			}
			i += 3
			img.Set(x, 32+y, r, g, b, 0xFF)
		}
	}
}

// Decode reads a full feature record from img's V1 payload. Callers must
// call Detect first; Decode does not re-check cell (0,0).
func Decode(img imgmodel.Image) (*feature.Record, error) {
	r := bitio.NewReader(readPayload(img))
	rec := &feature.Record{DataVersion: 1}

	if _, err := r.ReadByte(); err != nil { // version, currently unused
		return nil, err
	}

	ears, err := r.Read(6)
	if err != nil {
		return nil, err
	}
	if ears == 0 {
		rec.EarMode = feature.EarNone
		rec.EarAnchor = feature.AnchorCenter
	} else {
		modeOrd := int((ears-1)/3) + 1
		anchorOrd := int(ears-1) % 3
		rec.EarMode = feature.EarModeFromOrdinal(modeOrd)
		rec.EarAnchor = feature.EarAnchorFromOrdinal(anchorOrd)
	}

	if rec.Claws, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if rec.Horn, err = r.ReadBool(); err != nil {
		return nil, err
	}

	tailOrd, err := r.Read(3)
	if err != nil {
		return nil, err
	}
	tailMode := tailModeFromV1Ordinal(int(tailOrd))
	if tailMode != feature.TailNone {
		segsField, err := r.Read(2)
		if err != nil {
			return nil, err
		}
		segments := int(segsField) + 1
		var bends [4]float32
		for i := 0; i < 4; i++ {
			if i < segments {
				v, err := r.ReadSamUnit(6)
				if err != nil {
					return nil, err
				}
				bends[i] = v * 90
			}
		}
		rec.Tail = &feature.Tail{Mode: tailMode, Segments: segments, Bends: bends}
	}

	width, err := r.Read(3)
	if err != nil {
		return nil, err
	}
	if width > 0 {
		heightField, err := r.Read(2)
		if err != nil {
			return nil, err
		}
		depthField, err := r.Read(3)
		if err != nil {
			return nil, err
		}
		offset, err := r.Read(3)
		if err != nil {
			return nil, err
		}
		rec.Snout = &feature.Snout{
			Offset: int(offset),
			Width:  int(width),
			Height: int(heightField) + 1,
			Depth:  int(depthField) + 1,
		}
	}

	chestSize, err := r.ReadUnit(5)
	if err != nil {
		return nil, err
	}
	rec.ChestSize = chestSize

	wingOrd, err := r.Read(3)
	if err != nil {
		return nil, err
	}
	wingMode := feature.WingModeFromOrdinal(int(wingOrd))
	if wingMode != feature.WingNone {
		animated, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		rec.Wing = &feature.Wing{Mode: wingMode, Animated: animated}
	}

	if rec.CapeEnabled, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if rec.Emissive, err = r.ReadBool(); err != nil {
		return nil, err
	}

	return rec, nil
}

// Encode writes rec into img's V1 cells as the bit-packed payload.
func Encode(img imgmodel.Image, rec *feature.Record) error {
	w, h := img.Bounds()
	if w != 64 || h != 64 {
		return earserr.Newf(earserr.KindImageBounds, "v1: image must be 64x64, got %dx%d", w, h)
	}

	bw := bitio.NewWriter()
	if err := bw.WriteByte(0); err != nil { // version
		return err
	}

	var ears uint64
	if rec.EarMode != feature.EarNone {
		ears = uint64(rec.EarMode.Ordinal()-1)*3 + uint64(rec.EarAnchor.Ordinal()) + 1
	}
	if err := bw.WriteLong(6, ears); err != nil {
		return err
	}

	bw.WriteBool(rec.Claws)
	bw.WriteBool(rec.Horn)

	tailMode := feature.TailNone
	if rec.Tail != nil {
		tailMode = rec.Tail.Mode
	}
	if tailMode.Ordinal() > 4 {
		// Modes beyond Vertical have no representation in V1's 3-bit
		// field (see tailModeFromV1Ordinal); writing them as None keeps
		// the writer's output always decodable by this same package.
		tailMode = feature.TailNone
	}
	if err := bw.Write(3, uint32(tailMode.Ordinal())); err != nil {
		return err
	}
	if rec.Tail != nil && tailMode != feature.TailNone {
		segments := rec.Tail.Segments
		if err := bw.Write(2, uint32(segments-1)); err != nil {
			return err
		}
		for i := 0; i < segments && i < 4; i++ {
			if err := bw.WriteSamUnit(6, rec.Tail.Bends[i]/90); err != nil {
				return err
			}
		}
	}

	if rec.Snout != nil {
		if err := bw.Write(3, uint32(rec.Snout.Width)); err != nil {
			return err
		}
		if err := bw.Write(2, uint32(rec.Snout.Height-1)); err != nil {
			return err
		}
		if err := bw.Write(3, uint32(rec.Snout.Depth-1)); err != nil {
			return err
		}
		if err := bw.Write(3, uint32(rec.Snout.Offset)); err != nil {
			return err
		}
	} else {
		if err := bw.Write(3, 0); err != nil {
			return err
		}
	}

	if err := bw.WriteUnit(5, rec.ChestSize); err != nil {
		return err
	}

	wingMode := feature.WingNone
	if rec.Wing != nil {
		wingMode = rec.Wing.Mode
	}
	if err := bw.Write(3, uint32(wingMode.Ordinal())); err != nil {
		return err
	}
	if rec.Wing != nil && wingMode != feature.WingNone {
		bw.WriteBool(rec.Wing.Animated)
	}

	bw.WriteBool(rec.CapeEnabled)
	bw.WriteBool(rec.Emissive)

	writePayload(img, bw.Bytes())
	return nil
}
