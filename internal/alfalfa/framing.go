// Package alfalfa implements the Alfalfa sidechannel: a length-prefixed
// TLV map of string keys to byte values, framed with a fixed magic/version
// header, then projected into the low 7 bits of a fixed set of image
// rectangles' alpha channel.
//
// The entry framing here is grounded on the teacher's internal/box
// package, which reads/writes a JP2 file as a sequence of length-prefixed
// boxes over an io.Reader/io.Writer. Alfalfa's framing is not box-shaped
// (no fixed 8-byte header, no type code), so this is a rewrite rather than
// a reuse of box.Reader/box.Writer: a DecodeFramed/EncodeFramed function
// pair over a byte slice, with encoding/binary for the fixed-width header
// fields (see internal/box/box.go's use of binary.BigEndian for box
// headers).
package alfalfa

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/ears-go/ears/internal/earserr"
)

// Magic is the 4-byte big-endian signature that opens a framed Alfalfa
// byte stream.
const Magic uint32 = 0xEA1FA1FA

// Version is the only Alfalfa payload version this codec recognizes on
// encode. Decode tolerates only this version too; any other version (or a
// bad magic) means "no Alfalfa present", not an error.
const Version uint8 = 1

// MaxFramedLen is the largest framed byte stream the ten pixel rectangles
// can carry: 1632 pixels at 7 bits each, rounded down to whole bytes.
const MaxFramedLen = 1428

// predefKeys is the fixed predefined-key table. Index 0 is the "END"
// sentinel and is never a storable key.
var predefKeys = []string{"END", "wing", "erase", "cape"}

func predefIndex(key string) (int, bool) {
	for i, k := range predefKeys {
		if k == key {
			return i, true
		}
	}
	return 0, false
}

// Data is a decoded Alfalfa container: a version tag and the key -> bytes
// map it carries. Version 0 means absent; this codec only ever decodes or
// encodes version 1.
type Data struct {
	Version uint8
	Entries map[string][]byte
}

// DecodeFramed parses a framed Alfalfa byte stream into a map. A bad magic
// or unsupported version yields (nil, nil): "no Alfalfa present" is not an
// error. Structural corruption inside a stream whose header matched is a
// reported error.
func DecodeFramed(b []byte) (*Data, error) {
	if len(b) < 5 {
		return nil, nil
	}
	if binary.BigEndian.Uint32(b[0:4]) != Magic {
		return nil, nil
	}
	version := b[4]
	if version != Version {
		return nil, nil
	}

	entries := make(map[string][]byte)
	pos := 5
	readByte := func() (byte, bool) {
		if pos >= len(b) {
			return 0, false
		}
		v := b[pos]
		pos++
		return v, true
	}

	for {
		code, ok := readByte()
		if !ok {
			return nil, earserr.New(earserr.KindTruncatedBitStream, "alfalfa: truncated key code")
		}

		var key string
		if code < 64 {
			if int(code) == 0 {
				break // END
			}
			if int(code) < len(predefKeys) {
				key = predefKeys[code]
			} else {
				key = unkKeyName(code)
			}
		} else if code&0x80 != 0 {
			// Single-character custom key: the high bit is already set on
			// this one byte, so there is no continuation byte to read.
			key = string([]byte{code & 0x7F})
		} else {
			chars := []byte{code}
			for {
				c, ok := readByte()
				if !ok {
					return nil, earserr.New(earserr.KindTruncatedBitStream, "alfalfa: truncated custom key")
				}
				chars = append(chars, c&0x7F)
				if c&0x80 != 0 {
					break
				}
			}
			key = string(chars)
		}

		var value bytes.Buffer
		for {
			n, ok := readByte()
			if !ok {
				return nil, earserr.New(earserr.KindTruncatedBitStream, "alfalfa: truncated value chunk length")
			}
			if n == 0 {
				break
			}
			if pos+int(n) > len(b) {
				return nil, earserr.New(earserr.KindTruncatedBitStream, "alfalfa: truncated value chunk")
			}
			value.Write(b[pos : pos+int(n)])
			pos += int(n)
			if n != 255 {
				break
			}
		}
		entries[key] = value.Bytes()
	}

	return &Data{Version: version, Entries: entries}, nil
}

// EncodeFramed serializes a version-1 Alfalfa map into its framed byte
// form. Keys must satisfy the predefined-or-ASCII-custom invariant;
// violations are reported rather than silently coerced. EncodeFramed does
// not itself enforce MaxFramedLen: that bound belongs to the alpha-channel
// projection the framed bytes are destined for (see EncodeAlfalfa), not to
// framing, since a framed stream can be a useful byte sequence on its own
// (e.g. for testing) beyond the ten-rectangle carrying capacity.
func EncodeFramed(entries map[string][]byte) ([]byte, error) {
	var out bytes.Buffer
	var hdr [5]byte
	binary.BigEndian.PutUint32(hdr[0:4], Magic)
	hdr[4] = Version
	out.Write(hdr[:])

	keys := make([]string, 0, len(entries))
	for k := range entries {
		if k == "END" {
			return nil, earserr.New(earserr.KindInvalidAlfalfaEntryName, "alfalfa: \"END\" is a sentinel, not a storable key")
		}
		keys = append(keys, k)
	}
	// Sorted lexicographically on the raw key string, not by predefined
	// table index: map iteration order is non-deterministic in Go, and
	// this is the deterministic tie-break the reference golden encoding
	// (e.g. "cape" before "erase") was generated with.
	sort.Strings(keys)

	for _, key := range keys {
		if err := writeKey(&out, key); err != nil {
			return nil, err
		}
		writeValue(&out, entries[key])
	}
	out.WriteByte(0) // END

	return out.Bytes(), nil
}

func writeKey(out *bytes.Buffer, key string) error {
	if idx, ok := predefIndex(key); ok {
		out.WriteByte(byte(idx))
		return nil
	}
	if code, ok := parseUnkKeyName(key); ok {
		out.WriteByte(code)
		return nil
	}
	if len(key) == 0 || key[0] < 0x40 {
		return earserr.Newf(earserr.KindInvalidAlfalfaEntryName, "alfalfa: key %q must start with an ASCII byte >= 0x40", key)
	}
	for i := 0; i < len(key); i++ {
		if key[i] > 0x7F {
			return earserr.Newf(earserr.KindNonASCIIAlfalfaEntryName, "alfalfa: key %q contains a non-ASCII byte", key)
		}
	}
	for i := 0; i < len(key)-1; i++ {
		out.WriteByte(key[i])
	}
	out.WriteByte(key[len(key)-1] | 0x80)
	return nil
}

func writeValue(out *bytes.Buffer, value []byte) {
	for len(value) >= 255 {
		out.WriteByte(255)
		out.Write(value[:255])
		value = value[255:]
	}
	out.WriteByte(byte(len(value)))
	out.Write(value)
}

func unkKeyName(code byte) string {
	return "!unk" + itoa(int(code))
}

func parseUnkKeyName(key string) (byte, bool) {
	const prefix = "!unk"
	if len(key) <= len(prefix) || key[:len(prefix)] != prefix {
		return 0, false
	}
	n, ok := atoi(key[len(prefix):])
	if !ok || n < 0 || n > 255 {
		return 0, false
	}
	return byte(n), true
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
