package golurk

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

func CreateRandomStateSeed() rand.PCG {
	var randBytes [16]byte
	// crypto/rand.Read never returns an error on supported platforms
	_, _ = cryptoRand.Read(randBytes[:])

	return *rand.NewPCG(binary.LittleEndian.Uint64(randBytes[0:8]), binary.LittleEndian.Uint64(randBytes[8:]))
}

// StateSeed builds a reproducible seed for a battle. Battles that share a seed play out identically
// as long as every choice made in them is the same.
func StateSeed(seed uint64, stream uint64) rand.PCG {
	return *rand.NewPCG(seed, stream)
}

func CreateRNG(seed *rand.PCG) *rand.Rand {
	return rand.New(seed)
}
