package utils

import (
	"encoding/json"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the JSON encoding of v. Map keys are sorted by
// encoding/json, so equal values give equal fingerprints.
func Fingerprint(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16), nil
}
