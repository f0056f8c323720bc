package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	return bytes.Repeat([]byte{0xAB}, 32)
}

func TestCipher_RoundTrip(t *testing.T) {
	c, err := NewCipher(testKey())
	require.NoError(t, err)

	plaintext := []byte(`{"access_token":"pat-na1-secret"}`)
	ciphertext, err := c.Encrypt(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	decrypted, err := c.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestCipher_NonceUniqueness(t *testing.T) {
	c, err := NewCipher(testKey())
	require.NoError(t, err)

	a, err := c.Encrypt([]byte("same input"))
	require.NoError(t, err)
	b, err := c.Encrypt([]byte("same input"))
	require.NoError(t, err)

	// Same plaintext must never produce the same ciphertext twice.
	assert.NotEqual(t, a, b)
}

func TestCipher_TamperedCiphertext(t *testing.T) {
	c, err := NewCipher(testKey())
	require.NoError(t, err)

	ciphertext, err := c.Encrypt([]byte("sensitive"))
	require.NoError(t, err)

	ciphertext[len(ciphertext)-1] ^= 0x01
	_, err = c.Decrypt(ciphertext)
	assert.Error(t, err)
}

func TestCipher_ShortCiphertext(t *testing.T) {
	c, err := NewCipher(testKey())
	require.NoError(t, err)

	_, err = c.Decrypt([]byte{0x01, 0x02})
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestNewCipher_BadKeyLength(t *testing.T) {
	_, err := NewCipher([]byte("too short"))
	assert.Error(t, err)
}

func TestNewCipherFromEnv(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		t.Setenv("CRM_ENCRYPTION_KEY", "")
		_, err := NewCipherFromEnv()
		assert.ErrorIs(t, err, ErrKeyNotSet)
	})

	t.Run("valid key", func(t *testing.T) {
		t.Setenv("CRM_ENCRYPTION_KEY", hex.EncodeToString(testKey()))
		c, err := NewCipherFromEnv()
		require.NoError(t, err)

		ciphertext, err := c.Encrypt([]byte("hello"))
		require.NoError(t, err)
		decrypted, err := c.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), decrypted)
	})

	t.Run("invalid hex", func(t *testing.T) {
		t.Setenv("CRM_ENCRYPTION_KEY", "not-hex")
		_, err := NewCipherFromEnv()
		assert.Error(t, err)
	})
}
