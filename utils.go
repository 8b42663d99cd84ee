// utils.go -- utility functions
//
// (c) Sudhi Herle 2018 (teacher), adapted 2026
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package perfect

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mrand "math/rand"
)

// rand64 draws a cryptographically random 64-bit value, used only to seed
// the default math/rand source handed to a Perfectionist created via
// UsingDefaults. Every randomized search itself draws from that *rand.Rand,
// so a caller who wants reproducible construction supplies their own seeded
// source via Using.
func rand64() uint64 {
	var b [8]byte

	_, err := io.ReadFull(rand.Reader, b[:])
	if err != nil {
		panic("perfect: can't read crypto/rand")
	}

	return binary.BigEndian.Uint64(b[:])
}

// defaultRand returns a *rand.Rand seeded from crypto/rand, for callers
// that don't need reproducible construction.
func defaultRand() *mrand.Rand {
	return mrand.New(mrand.NewSource(int64(rand64())))
}
