package ears

import (
	"github.com/ears-go/ears/internal/alfalfa"
	"github.com/ears-go/ears/internal/eraseregion"
	"github.com/ears-go/ears/internal/v0"
	"github.com/ears-go/ears/internal/v1"
)

// Parse detects which magic-pixel version (if any) img carries and decodes
// its feature record. V0 takes precedence when both detectors would match,
// per the magic-pixel-at-(0,32) invariant. A nil, nil result means neither
// version's detection colour was present.
func Parse(img PixelImage) (*FeatureRecord, error) {
	m := modelImage{img}
	if v0.Detect(m) {
		return v0.Decode(m), nil
	}
	if v1.Detect(m) {
		return v1.Decode(m)
	}
	return nil, nil
}

// Write encodes rec into img using the wire version named by rec.DataVersion.
func Write(img PixelImage, rec *FeatureRecord) error {
	if rec.DataVersion == 1 {
		return WriteV1(img, rec)
	}
	return WriteV0(img, rec)
}

// WriteV0 encodes rec into img's V0 colour-coded magic-pixel cells,
// regardless of rec.DataVersion.
func WriteV0(img PixelImage, rec *FeatureRecord) error {
	return v0.Encode(modelImage{img}, rec)
}

// WriteV1 encodes rec into img's V1 bit-packed magic-pixel cells,
// regardless of rec.DataVersion.
func WriteV1(img PixelImage, rec *FeatureRecord) error {
	return v1.Encode(modelImage{img}, rec)
}

// AlfalfaData is a decoded Alfalfa container: a version tag and the
// key -> bytes dictionary it carries.
type AlfalfaData = alfalfa.Data

// DecodeAlfalfa recovers an Alfalfa map from img's ten fixed rectangles. A
// non-64x64 image or an all-zero projection both yield (nil, nil).
func DecodeAlfalfa(img PixelImage) (*AlfalfaData, error) {
	return alfalfa.DecodeAlfalfa(modelImage{img})
}

// EncodeAlfalfa writes entries into img's ten fixed rectangles' alpha
// channel. Fails with KindAlfalfaDataTooLarge if the framed form of entries
// exceeds 1428 bytes, or KindImageBounds if img is not 64x64.
func EncodeAlfalfa(img PixelImage, entries map[string][]byte) error {
	return alfalfa.EncodeAlfalfa(modelImage{img}, &alfalfa.Data{Version: alfalfa.Version, Entries: entries})
}

// DecodeAlfalfaFramed parses a framed Alfalfa byte stream (the container
// that holds the "cape"/"erase"-style values, obtained by some means other
// than the pixel projection) without going through pixels. A bad magic or unsupported version yields (nil, nil).
func DecodeAlfalfaFramed(b []byte) (*AlfalfaData, error) {
	return alfalfa.DecodeFramed(b)
}

// EncodeAlfalfaFramed serializes entries into its framed byte form without
// projecting onto any image.
func EncodeAlfalfaFramed(entries map[string][]byte) ([]byte, error) {
	return alfalfa.EncodeFramed(entries)
}

// EraseRegion is one erase rectangle carried inside the Alfalfa "erase"
// value: width and height are the as-used extents, already un-minus-one'd
// from the wire form.
type EraseRegion = eraseregion.Region

// DecodeEraseRegions unpacks the flat 22-bit erase records from the bytes
// stored under the Alfalfa "erase" key.
func DecodeEraseRegions(b []byte) []EraseRegion {
	return eraseregion.Decode(b)
}

// EncodeEraseRegions packs regions into the flat 22-bit record form stored
// under the Alfalfa "erase" key.
func EncodeEraseRegions(regions []EraseRegion) []byte {
	return eraseregion.Encode(regions)
}
