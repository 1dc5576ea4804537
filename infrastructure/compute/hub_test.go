package compute

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
)

func TestDeriveTaskID(t *testing.T) {
	t.Run("matches keccak of deal and padded index", func(t *testing.T) {
		dealID := "0x0102030000000000000000000000000000000000000000000000000000000000"

		var index [32]byte
		expected := crypto.Keccak256Hash(common.HexToHash(dealID).Bytes(), index[:]).Hex()
		assert.Equal(t, expected, DeriveTaskID(dealID, 0))
	})

	t.Run("is deterministic", func(t *testing.T) {
		dealID := "0xabcdef0000000000000000000000000000000000000000000000000000000000"
		assert.Equal(t, DeriveTaskID(dealID, 0), DeriveTaskID(dealID, 0))
	})

	t.Run("distinct per index", func(t *testing.T) {
		dealID := "0xabcdef0000000000000000000000000000000000000000000000000000000000"
		assert.NotEqual(t, DeriveTaskID(dealID, 0), DeriveTaskID(dealID, 1))
	})

	t.Run("distinct per deal", func(t *testing.T) {
		a := "0x1100000000000000000000000000000000000000000000000000000000000000"
		b := "0x2200000000000000000000000000000000000000000000000000000000000000"
		assert.NotEqual(t, DeriveTaskID(a, 0), DeriveTaskID(b, 0))
	})
}
