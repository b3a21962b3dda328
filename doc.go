// Package ears decodes and encodes the Ears cosmetic-feature extension
// format embedded in 64x64 RGBA character-skin images.
//
// Two complementary channels carry data: a set of magic-pixel cells that
// encode versioned feature flags (V0 colour-coded, V1 bit-packed), and an
// Alfalfa sidechannel that smuggles an arbitrary key->byte-array
// dictionary inside the low 7 bits of the alpha channel across a fixed
// set of rectangular regions. Parse and Write are the two entry points
// for the feature channel; DecodeAlfalfa and EncodeAlfalfa are the entry
// points for the sidechannel.
//
// This package never decodes image file formats itself: callers supply a
// PixelImage, or use FromImage to adapt a standard library image.Image.
package ears
