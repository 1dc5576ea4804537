package compute

import (
	"archive/zip"
	"bytes"
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "tee-settlement/domain/errors"
)

func buildArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecodeResultArchive(t *testing.T) {
	validJSON := `{
		"payouts": [
			{"recipient": "0x1111111111111111111111111111111111111111", "amount": "10.5"},
			{"recipient": "0x2222222222222222222222222222222222222222", "amount": "0.000001"}
		],
		"attestation": "0xdeadbeef"
	}`

	t.Run("decodes the fixed entry", func(t *testing.T) {
		archive := buildArchive(t, map[string]string{
			"result.json": validJSON,
			"stdout.txt":  "computation log",
		})

		result, err := DecodeResultArchive(archive)
		require.NoError(t, err)
		require.Len(t, result.Payouts, 2)
		assert.Equal(t, "0x1111111111111111111111111111111111111111", result.Payouts[0].Recipient)
		assert.Equal(t, "10.5", result.Payouts[0].Amount)
		assert.Equal(t, "0xdeadbeef", result.Attestation)
	})

	t.Run("empty payout list is valid", func(t *testing.T) {
		archive := buildArchive(t, map[string]string{
			"result.json": `{"payouts": [], "attestation": "0x01"}`,
		})

		result, err := DecodeResultArchive(archive)
		require.NoError(t, err)
		assert.Empty(t, result.Payouts)
	})

	t.Run("not an archive", func(t *testing.T) {
		_, err := DecodeResultArchive([]byte("plain text, not a zip"))
		require.Error(t, err)
		assert.True(t, goerrors.Is(err, domainerrors.ErrResultFormat))
	})

	t.Run("missing entry", func(t *testing.T) {
		archive := buildArchive(t, map[string]string{"other.json": validJSON})

		_, err := DecodeResultArchive(archive)
		require.Error(t, err)
		assert.True(t, goerrors.Is(err, domainerrors.ErrResultFormat))
		assert.Contains(t, err.Error(), "result.json")
	})

	t.Run("entry is not JSON", func(t *testing.T) {
		archive := buildArchive(t, map[string]string{"result.json": "not json"})

		_, err := DecodeResultArchive(archive)
		require.Error(t, err)
		assert.True(t, goerrors.Is(err, domainerrors.ErrResultFormat))
	})

	t.Run("missing payouts list", func(t *testing.T) {
		archive := buildArchive(t, map[string]string{
			"result.json": `{"attestation": "0x01"}`,
		})

		_, err := DecodeResultArchive(archive)
		require.Error(t, err)
		assert.True(t, goerrors.Is(err, domainerrors.ErrResultFormat))
	})

	t.Run("missing attestation", func(t *testing.T) {
		archive := buildArchive(t, map[string]string{
			"result.json": `{"payouts": []}`,
		})

		_, err := DecodeResultArchive(archive)
		require.Error(t, err)
		assert.True(t, goerrors.Is(err, domainerrors.ErrResultFormat))
	})
}
