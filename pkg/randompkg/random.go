// Package randompkg provides functionality for generating random application common items.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Account numbers are ten digit strings drawn from [1000000000, 2000000000).
const (
	accountNumberBase  = 1_000_000_000
	accountNumberRange = 1_000_000_000
)

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Int64Between generates a random integer between min and max.
func Int64Between(min, max int64) int64 {
	return min + Intn(int(max-min))
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Owner generates a random owner name.
func Owner() string {
	return String(6)
}

// AccountNumber generates a random ten digit account number.
// Uniqueness is not guaranteed and must be checked against existing accounts.
func AccountNumber() string {
	return fmt.Sprintf("%d", accountNumberBase+Intn(accountNumberRange))
}

// TransactionID generates an opaque transaction identifier safe to share
// externally instead of the storage key.
func TransactionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
