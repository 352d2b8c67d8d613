package testutil

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	alphaNumCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
	bech32Charset   = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

	nativeAddressPrefix = "fra1"
	nativeAddressLength = 58
)

// RandomSuffix returns a lowercase alphanumeric string, handy for unique
// docker container and table names
func RandomSuffix(length int) (string, error) {
	return randomString(alphaNumCharset, length)
}

// RandomNativeAddress returns a string shaped like a bech32 native address.
// The checksum is not valid, the ledger never verifies it.
func RandomNativeAddress() (string, error) {
	body, err := randomString(bech32Charset, nativeAddressLength-len(nativeAddressPrefix))
	if err != nil {
		return "", err
	}
	return nativeAddressPrefix + body, nil
}

func randomString(charset string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	out := make([]byte, length)
	for i := range out {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		out[i] = charset[num.Int64()]
	}

	return string(out), nil
}
