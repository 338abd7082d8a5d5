package service

import (
	"fmt"
	"strconv"
	"unicode/utf16"

	"github.com/cespare/xxhash/v2"

	"github.com/MKhiriev/go-gallery-replica/internal/config"
	"github.com/MKhiriev/go-gallery-replica/models"
)

// ChecksumFunc fingerprints the mutable fields of a remote item. Equal
// inputs always give equal fingerprints.
type ChecksumFunc func(img models.RemoteImage) string

// checksumInput joins the fields whose change marks an item as updated.
func checksumInput(img models.RemoteImage) string {
	return fmt.Sprintf("%s-%s-%s-%d", img.Filename, img.MinioURL, img.UpdatedAt, img.DatasetID)
}

// Rolling32Checksum applies hash = hash*31 + c over the UTF-16 code units
// of the input, wrapping at 32 bits, and formats the signed result in
// decimal. Fingerprints match the ones stored by earlier replicas.
func Rolling32Checksum(img models.RemoteImage) string {
	var hash int32
	for _, unit := range utf16.Encode([]rune(checksumInput(img))) {
		hash = (hash << 5) - hash + int32(unit)
	}
	return strconv.FormatInt(int64(hash), 10)
}

// XXHash64Checksum is a 64-bit fingerprint of the same input.
func XXHash64Checksum(img models.RemoteImage) string {
	return strconv.FormatUint(xxhash.Sum64String(checksumInput(img)), 16)
}

// checksumFor returns the fingerprint function configured by name. Unknown
// names select the rolling hash.
func checksumFor(name string) ChecksumFunc {
	if name == config.ChecksumXXHash64 {
		return XXHash64Checksum
	}
	return Rolling32Checksum
}
