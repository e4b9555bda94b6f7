package accounts

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/forkcfg/internal/domain/config"
)

// Describe derives the address behind each entry. Entries whose key does
// not parse carry the error instead of an address.
func Describe(entries []config.AccountEntry) []config.AccountInfo {
	out := make([]config.AccountInfo, 0, len(entries))
	for _, e := range entries {
		info := config.AccountInfo{Name: e.Name}
		addr, err := AddressFromKey(e.PrivateKey)
		if err != nil {
			info.Err = err
		} else {
			info.Address = addr.Hex()
		}
		out = append(out, info)
	}
	return out
}

// AddressFromKey derives the account address for a hex private key
func AddressFromKey(key string) (common.Address, error) {
	hexKey := strings.TrimPrefix(strings.TrimSpace(key), "0x")
	if hexKey == "" {
		return common.Address{}, fmt.Errorf("empty private key")
	}

	pk, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid private key: %w", err)
	}
	return crypto.PubkeyToAddress(pk.PublicKey), nil
}
