package uint128

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// goldenRatio64 is the 64-bit golden-ratio constant used to decorrelate the
// two word hashes when they are combined.
const goldenRatio64 = 0x9e3779b9

// Hash returns a 64-bit hash of u. It is a pure function of (lo, hi): equal
// values always produce equal hashes, and repeated calls are stable. The two
// words are combined with a golden-ratio mix so that values differing only in
// the high word still spread across buckets.
func (u Uint128) Hash() uint64 {
	return u.lo ^ (u.hi + goldenRatio64 + u.lo<<6 + u.lo>>2)
}

// Bytes returns the 16-byte little-endian encoding of u: the low word in
// bytes 0–7, the high word in bytes 8–15.
func (u Uint128) Bytes() [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], u.lo)
	binary.LittleEndian.PutUint64(b[8:], u.hi)
	return b
}

// FromBytes decodes a Uint128 from its 16-byte little-endian encoding.
// See Bytes for the counterpart.
func FromBytes(b [16]byte) Uint128 {
	return Uint128{
		lo: binary.LittleEndian.Uint64(b[:8]),
		hi: binary.LittleEndian.Uint64(b[8:]),
	}
}

// Sum64 returns the xxHash digest of the 16-byte encoding of u. Like Hash it
// depends only on (lo, hi) and is stable across calls; it trades a few more
// cycles for much stronger dispersion.
func (u Uint128) Sum64() uint64 {
	b := u.Bytes()
	return xxhash.Sum64(b[:])
}
