package hash

import (
	"sync"

	"github.com/zeebo/blake3"
)

// pool amortizes allocations of blake3 hashers used for transaction ids and state roots.
var pool = &sync.Pool{
	New: func() any {
		return blake3.New()
	},
}

// GetHasher returns a blake3 hasher from the pool.
// The hasher must be returned with PutHasher once the digest is computed.
func GetHasher() *blake3.Hasher {
	return pool.Get().(*blake3.Hasher)
}

// PutHasher resets the hasher and puts it back to the pool.
func PutHasher(hasher *blake3.Hasher) {
	hasher.Reset()
	pool.Put(hasher)
}
