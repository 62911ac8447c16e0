package source

import "github.com/minio/highwayhash"

// fingerprintKey is fixed so that fingerprints are comparable across processes
var fingerprintKey = []byte("gqlcombine/fingerprint/key/00000")

// Fingerprint returns highwayhash 64 of the content
func Fingerprint(content []byte) uint64 {
	return highwayhash.Sum64(content, fingerprintKey)
}
