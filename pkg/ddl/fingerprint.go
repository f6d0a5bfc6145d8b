package ddl

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// Fingerprint hashes the statement BuildCreateTableSQL renders for t. Two
// definitions share a fingerprint exactly when they render the same DDL, so a
// stored fingerprint detects schema drift without keeping the text around.
func Fingerprint(t TableDef) (uint64, error) {
	stmt, err := BuildCreateTableSQL(t)
	if err != nil {
		return 0, err
	}
	return xxh3.HashString(stmt), nil
}

// FingerprintHex is Fingerprint formatted as 16 lowercase hex digits.
func FingerprintHex(t TableDef) (string, error) {
	h, err := Fingerprint(t)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h), nil
}
