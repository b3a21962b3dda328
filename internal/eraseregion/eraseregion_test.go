package eraseregion

import (
	"reflect"
	"testing"
)

func TestDecodeSampleEraseBytes(t *testing.T) {
	// Scenario 3: the "erase" value from the V1 "nickac" sample.
	data := []byte{196, 131, 30, 2, 12, 122, 141, 24, 96, 152, 201}
	want := []Region{
		{X: 49, Y: 8, Width: 7, Height: 8},
		{X: 32, Y: 8, Width: 7, Height: 8},
		{X: 42, Y: 13, Width: 4, Height: 2},
		{X: 32, Y: 38, Width: 7, Height: 10},
	}
	got := Decode(data)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Decode() = %+v, want %+v", got, want)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	regions := []Region{
		{X: 0, Y: 0, Width: 1, Height: 1},
		{X: 63, Y: 63, Width: 32, Height: 32},
		{X: 10, Y: 20, Width: 5, Height: 17},
	}
	got := Decode(Encode(regions))
	if !reflect.DeepEqual(got, regions) {
		t.Fatalf("round trip = %+v, want %+v", got, regions)
	}
}

func TestDecodeEmpty(t *testing.T) {
	if got := Decode(nil); got != nil {
		t.Fatalf("Decode(nil) = %+v, want nil", got)
	}
}

func TestDecodeStopsBeforePartialRecord(t *testing.T) {
	// A single zero byte (8 bits) is nowhere near the 22 bits a record
	// needs, so the decoder must produce no regions rather than error.
	if got := Decode([]byte{0}); got != nil {
		t.Fatalf("Decode(1 byte) = %+v, want nil", got)
	}
}
