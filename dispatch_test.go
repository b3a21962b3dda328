package ears

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeImage struct {
	w, h       int
	r, g, b, a [64][64]uint8
}

func newFakeImage() *fakeImage { return &fakeImage{w: 64, h: 64} }

func (f *fakeImage) Bounds() (int, int) { return f.w, f.h }

func (f *fakeImage) At(x, y int) (r, g, b, a uint8) {
	return f.r[x][y], f.g[x][y], f.b[x][y], f.a[x][y]
}

func (f *fakeImage) Set(x, y int, r, g, b, a uint8) {
	f.r[x][y], f.g[x][y], f.b[x][y], f.a[x][y] = r, g, b, a
}

var _ PixelImage = (*fakeImage)(nil)

func TestParseReturnsNilOnUndetectedImage(t *testing.T) {
	rec, err := Parse(newFakeImage())
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestParseWriteV0RoundTrip(t *testing.T) {
	img := newFakeImage()
	rec := &FeatureRecord{DataVersion: 0, EarAnchor: AnchorCenter, ChestSize: 0.5, Emissive: true}
	require.NoError(t, WriteV0(img, rec))

	got, err := Parse(img)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 0, got.DataVersion)
	require.Equal(t, true, got.Emissive)
}

func TestParseWriteV1RoundTrip(t *testing.T) {
	img := newFakeImage()
	rec := &FeatureRecord{DataVersion: 1, EarMode: EarSides, EarAnchor: AnchorBack, CapeEnabled: true}
	require.NoError(t, Write(img, rec))

	got, err := Parse(img)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 1, got.DataVersion)
	require.Equal(t, EarSides, got.EarMode)
	require.Equal(t, AnchorBack, got.EarAnchor)
	require.True(t, got.CapeEnabled)
}

func TestV0TakesPrecedenceOverV1(t *testing.T) {
	img := newFakeImage()
	v1rec := &FeatureRecord{DataVersion: 1, EarMode: EarTall}
	require.NoError(t, WriteV1(img, v1rec))
	require.NoError(t, WriteV0(img, &FeatureRecord{EarAnchor: AnchorCenter}))

	got, err := Parse(img)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 0, got.DataVersion)
}

func TestAlfalfaWrappersRoundTrip(t *testing.T) {
	img := newFakeImage()
	entries := map[string][]byte{"cape": {1, 2, 3}, "erase": {4, 5}}
	require.NoError(t, EncodeAlfalfa(img, entries))

	data, err := DecodeAlfalfa(img)
	require.NoError(t, err)
	require.NotNil(t, data)
	require.Equal(t, entries["cape"], data.Entries["cape"])
	require.Equal(t, entries["erase"], data.Entries["erase"])
}

func TestAlfalfaFramedWrappers(t *testing.T) {
	b, err := EncodeAlfalfaFramed(map[string][]byte{"wing": {9}})
	require.NoError(t, err)
	data, err := DecodeAlfalfaFramed(b)
	require.NoError(t, err)
	require.NotNil(t, data)
	require.Equal(t, []byte{9}, data.Entries["wing"])
}

func TestEraseRegionWrappers(t *testing.T) {
	regions := []EraseRegion{{X: 1, Y: 2, Width: 3, Height: 4}}
	got := DecodeEraseRegions(EncodeEraseRegions(regions))
	require.Equal(t, regions, got)
}

func TestFromImageAdaptsStandardRGBA(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 64, 64))
	px := FromImage(rgba)
	px.Set(0, 32, 0x3F, 0x23, 0xD8, 0xFF)
	r, g, b, a := px.At(0, 32)
	require.Equal(t, [4]uint8{0x3F, 0x23, 0xD8, 0xFF}, [4]uint8{r, g, b, a})
}
