// Package refpkg generates transaction references and account numbers.
package refpkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// TransferPrefix starts every transaction reference id.
	TransferPrefix = "TXN"
	// transferDigits is the number of random digits after the prefix.
	transferDigits = 9
)

// TransferReference returns a new transaction reference id: the TXN
// prefix followed by random digits. Uniqueness is enforced by the
// ledger's unique index; callers must treat a collision as retryable.
func TransferReference() string {
	var sb strings.Builder

	sb.WriteString(TransferPrefix)

	for i := 0; i < transferDigits; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			panic(err)
		}

		sb.WriteByte(byte('0' + n.Int64()))
	}

	return sb.String()
}

// AccountNumber composes an account number from the issue year and a
// zero-padded allocator sequence, e.g. 2025000001. The sequence comes
// from the store's atomic counter; the function itself holds no state
// and offers no uniqueness guarantee beyond its inputs.
func AccountNumber(year int, seq int64) string {
	return fmt.Sprintf("%d%06d", year, seq)
}
