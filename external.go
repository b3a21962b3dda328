package ears

// This file documents the external collaborators this module's feature and
// Alfalfa codecs assume exist around them, without implementing any of
// them: the outer PNG decoder/encoder, the legacy-skin upscaler, the
// alpha-stripping pass, the cape-layout reprojection, and emissive-palette
// extraction are all out of scope (see spec §1/§6). Declaring them here as
// plain Go function/interface types lets call sites that wire a real
// implementation type-check against this package without it depending on
// any of their implementations.

// LegacyUpgrader converts a legacy 32-pixel-tall skin into a 64x64 skin
// before feature parsing is attempted. Not implemented by this module;
// callers supply their own upscaling heuristics.
type LegacyUpgrader func(img PixelImage) (PixelImage, error)

// AlphaStripper forces full opacity over the ten Alfalfa rectangles and the
// magic-pixel cells ahead of re-saving a skin for distribution, so no
// accidental Alfalfa payload leaks through a republished image. Idempotent
// by construction: every affected pixel becomes alpha 0xFF, so a second
// application is a no-op. Not implemented by this module.
type AlphaStripper func(img PixelImage)

// CapeLayoutConverter reprojects an Ears-style cape image (20x16 logical
// faces packed into varying source geometries) into the standard 64x32
// cape layout. Not implemented by this module.
type CapeLayoutConverter func(img PixelImage) PixelImage

// EmissivePalette is a set of "glowing" colors extracted from a skin's
// reserved swatch, split out into a second, fully-opaque overlay texture by
// an EmissiveApplier. The palette's contents are collaborator-defined; this
// module only names the shape callers pass around.
type EmissivePalette struct {
	Colors []uint32
}

// EmissiveExtractor pulls an EmissivePalette from img's reserved swatch.
// Not implemented by this module.
type EmissiveExtractor func(img PixelImage) (*EmissivePalette, error)

// EmissiveApplier splits palette into a second, fully-opaque overlay
// texture derived from img. Not implemented by this module.
type EmissiveApplier func(img PixelImage, palette *EmissivePalette) (PixelImage, error)
