package hash

import "github.com/minio/sha256-simd"

// Sha256 is an alias to minio sha256.Sum256.
var Sha256 = sha256.Sum256

// Sum computes blake3 digest of the concatenated chunks.
func Sum(chunks ...[]byte) [32]byte {
	hasher := GetHasher()
	defer PutHasher(hasher)
	for _, chunk := range chunks {
		hasher.Write(chunk)
	}
	var rst [32]byte
	hasher.Sum(rst[:0])
	return rst
}
