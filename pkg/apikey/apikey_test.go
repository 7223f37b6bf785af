package apikey_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vortex/pkg/apikey"
)

const (
	zeroID       = "00000000-0000-0000-0000-000000000000"
	zeroEncoded  = "AAAAAAAAAAAAAAAAAAAAAA"
	seqEncoded   = "AAECAwQFBgcICQoLDA0ODw"
	seqID        = "00010203-0405-0607-0809-0a0b0c0d0e0f"
	zeroKeyInput = "VRTX." + zeroEncoded + ".secret"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid key", func(t *testing.T) {
		t.Parallel()
		key, err := apikey.Parse(zeroKeyInput)
		require.NoError(t, err)
		assert.Equal(t, zeroID, key.ID())
		assert.Equal(t, zeroKeyInput, key.Raw())
		assert.False(t, key.IsZero())
	})

	t.Run("canonical uuid text", func(t *testing.T) {
		t.Parallel()
		key, err := apikey.Parse("VRTX." + seqEncoded + ".s")
		require.NoError(t, err)
		assert.Equal(t, seqID, key.ID())
	})

	t.Run("padded identifier", func(t *testing.T) {
		t.Parallel()
		key, err := apikey.Parse("VRTX." + seqEncoded + "==.s")
		require.NoError(t, err)
		assert.Equal(t, seqID, key.ID())
	})

	tests := []struct {
		name string
		raw  string
		err  error
	}{
		{"empty", "", apikey.ErrInvalidFormat},
		{"two parts", "VRTX." + zeroEncoded, apikey.ErrInvalidFormat},
		{"four parts", "VRTX." + zeroEncoded + ".secret.extra", apikey.ErrInvalidFormat},
		{"empty secret", "VRTX." + zeroEncoded + ".", apikey.ErrInvalidFormat},
		{"empty id", "VRTX..secret", apikey.ErrInvalidFormat},
		{"wrong prefix", "ABCD." + zeroEncoded + ".secret", apikey.ErrInvalidPrefix},
		{"lowercase prefix", "vrtx." + zeroEncoded + ".secret", apikey.ErrInvalidPrefix},
		{"not base64", "VRTX.!!!!.secret", apikey.ErrInvalidFormat},
		{"short identifier", "VRTX.AAAAAAAAAAAAAAAAAAAA.secret", apikey.ErrInvalidFormat},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			key, err := apikey.Parse(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, key.IsZero())
		})
	}
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { apikey.MustParse(zeroKeyInput) })
	assert.Panics(t, func() { apikey.MustParse("nope") })
}

func TestKey_SigningKey(t *testing.T) {
	t.Parallel()

	key := apikey.MustParse(zeroKeyInput)

	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte(zeroID))
	expected := mac.Sum(nil)

	got := key.SigningKey()
	assert.Len(t, got, sha256.Size)
	assert.Equal(t, expected, got)
	assert.Equal(t, "087ba611beddb623bfa7ea25494b5faeee1c311cf73220413cc3f65056a69332", hex.EncodeToString(got))

	// Recomputed on each call, never shared.
	got[0] ^= 0xff
	assert.Equal(t, expected, key.SigningKey())
}

func TestKey_Redaction(t *testing.T) {
	t.Parallel()

	key := apikey.MustParse(zeroKeyInput)

	assert.Equal(t, "VRTX."+zeroEncoded+".***", key.String())
	assert.NotContains(t, fmt.Sprintf("%v", key), "secret")
	assert.NotContains(t, fmt.Sprintf("%+v", key), "secret")
	assert.NotContains(t, fmt.Sprintf("%#v", key), "secret")

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	log.Info("loaded", slog.Any("api_key", key))
	assert.NotContains(t, buf.String(), "secret")
	assert.Contains(t, buf.String(), zeroID)

	assert.Empty(t, apikey.Key{}.String())
}
