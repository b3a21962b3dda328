// Package eraseregion codes the EraseRegion records packed inside the
// Alfalfa "erase" value: repeated 22-bit records (6-bit x, 6-bit y, 5-bit
// width-1, 5-bit height-1) with no padding between records.
//
// Grounded on internal/bitio for the bit-level packing, the same way the
// V0/V1 feature codecs are; this is the simplest consumer of bitio since
// a region is a single fixed-width flat record with no conditional fields.
package eraseregion

import "github.com/ears-go/ears/internal/bitio"

// Region is one erase rectangle: width and height are the as-used extents
// (already un-minus-one'd from the wire form).
type Region struct {
	X, Y, Width, Height int
}

// Decode consumes fixed-width records from b until fewer than 22 bits
// remain. A partially-present trailing record is never produced by this
// package's own Encode and is simply not consumed if present, matching the
// spec's "decoder stops at exhaustion" contract.
func Decode(b []byte) []Region {
	r := bitio.NewReader(b)
	var regions []Region
	for r.Available() >= 22 {
		x, _ := r.Read(6)
		y, _ := r.Read(6)
		wm1, _ := r.Read(5)
		hm1, _ := r.Read(5)
		regions = append(regions, Region{
			X:      int(x),
			Y:      int(y),
			Width:  int(wm1) + 1,
			Height: int(hm1) + 1,
		})
	}
	return regions
}

// Encode packs regions into whole 22-bit records followed by byte
// alignment, so no partial record is ever emitted.
func Encode(regions []Region) []byte {
	w := bitio.NewWriter()
	for _, reg := range regions {
		w.Write(6, uint32(reg.X))
		w.Write(6, uint32(reg.Y))
		w.Write(5, uint32(reg.Width-1))
		w.Write(5, uint32(reg.Height-1))
	}
	return w.Bytes()
}
