package alfalfa

import (
	"math/big"

	"github.com/ears-go/ears/internal/earserr"
	"github.com/ears-go/ears/internal/imgmodel"
)

// Rectangles is the fixed, ordered list of pixel rectangles the Alfalfa
// projection spreads its big-integer payload across. Order matters: pixel
// index i (used as the big-integer digit exponent) is assigned by
// iterating this slice in order, and within each rectangle x-outer,
// y-inner.
var Rectangles = []imgmodel.Rectangle{
	{X1: 8, Y1: 0, X2: 24, Y2: 8},
	{X1: 0, Y1: 8, X2: 8, Y2: 16},
	{X1: 16, Y1: 8, X2: 32, Y2: 16},
	{X1: 4, Y1: 16, X2: 12, Y2: 20},
	{X1: 20, Y1: 16, X2: 36, Y2: 20},
	{X1: 44, Y1: 16, X2: 52, Y2: 20},
	{X1: 0, Y1: 20, X2: 56, Y2: 32},
	{X1: 20, Y1: 48, X2: 28, Y2: 52},
	{X1: 36, Y1: 48, X2: 44, Y2: 52},
	{X1: 16, Y1: 52, X2: 48, Y2: 64},
}

type point struct{ x, y int }

func pixelSequence() []point {
	var seq []point
	for _, r := range Rectangles {
		for x := r.X1; x < r.X2; x++ {
			for y := r.Y1; y < r.Y2; y++ {
				seq = append(seq, point{x, y})
			}
		}
	}
	return seq
}

// DecodeAlfalfa recovers an Alfalfa map from the alpha channel of img's
// fixed rectangles. A 64x64 bounds violation or an all-zero projection
// ("no Alfalfa present") both return (nil, nil); structural corruption in
// a payload whose container header did match is a reported error.
func DecodeAlfalfa(img imgmodel.Image) (*Data, error) {
	w, h := img.Bounds()
	if w != 64 || h != 64 {
		return nil, nil
	}

	n := new(big.Int)
	shift := uint(0)
	for _, p := range pixelSequence() {
		_, _, _, a := img.At(p.x, p.y)
		if a == 0 {
			continue
		}
		v := 0x7F - (a & 0x7F)
		if v != 0 {
			digit := new(big.Int).Lsh(big.NewInt(int64(v)), shift)
			n.Or(n, digit)
		}
		shift += 7
	}

	if n.Sign() == 0 {
		return nil, nil
	}
	return DecodeFramed(n.Bytes())
}

// EncodeAlfalfa writes data into img's fixed rectangles' alpha channel,
// leaving RGB untouched except that a previously fully-transparent pixel
// is first forced to opaque black so the data-bearing high bit is free.
// Fails with KindInvalidAlfalfaVersion if data.Version isn't the one
// version this codec writes, KindAlfalfaDataTooLarge if the framed form
// exceeds MaxFramedLen, and KindImageBounds if img is not 64x64.
func EncodeAlfalfa(img imgmodel.Image, data *Data) error {
	w, h := img.Bounds()
	if w != 64 || h != 64 {
		return earserr.Newf(earserr.KindImageBounds, "alfalfa: image must be 64x64, got %dx%d", w, h)
	}
	if data.Version != Version {
		return earserr.Newf(earserr.KindInvalidAlfalfaVersion, "alfalfa: unsupported version %d, want %d", data.Version, Version)
	}

	b, err := EncodeFramed(data.Entries)
	if err != nil {
		return err
	}
	if len(b) > MaxFramedLen {
		return earserr.Newf(earserr.KindAlfalfaDataTooLarge, "alfalfa: framed payload %d bytes exceeds %d before projection", len(b), MaxFramedLen)
	}
	n := new(big.Int).SetBytes(b)

	mask := big.NewInt(0x7F)
	for i, p := range pixelSequence() {
		shift := uint(i * 7)
		digit := new(big.Int).Rsh(n, shift)
		digit.And(digit, mask)
		v := uint8(digit.Uint64())

		r, g, bch, a := img.At(p.x, p.y)
		if a == 0 {
			r, g, bch = 0, 0, 0
		}
		img.Set(p.x, p.y, r, g, bch, (0x7F-v)|0x80)
	}
	return nil
}
