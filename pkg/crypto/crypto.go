// Package crypto provides AES-256-GCM encryption for data at rest:
// CRM credentials and enrichment payloads.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

const keyEnvVar = "CRM_ENCRYPTION_KEY"

var (
	// ErrKeyNotSet is returned when the encryption key env var is missing.
	ErrKeyNotSet = errors.New("CRM_ENCRYPTION_KEY is not set")

	// ErrCiphertextTooShort is returned when a ciphertext is shorter than
	// the nonce it must carry.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)

// Cipher encrypts and decrypts with a fixed 256-bit key. The nonce is
// generated per message and prepended to the ciphertext.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipherFromEnv builds a Cipher from the hex-encoded 32-byte key in
// CRM_ENCRYPTION_KEY.
func NewCipherFromEnv() (*Cipher, error) {
	keyHex := os.Getenv(keyEnvVar)
	if keyHex == "" {
		return nil, ErrKeyNotSet
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", keyEnvVar, err)
	}
	return NewCipher(key)
}

// NewCipher builds a Cipher from a raw 32-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext and returns nonce||ciphertext.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens nonce||ciphertext produced by Encrypt.
func (c *Cipher) Decrypt(data []byte) ([]byte, error) {
	if len(data) < c.aead.NonceSize() {
		return nil, ErrCiphertextTooShort
	}
	nonce, ciphertext := data[:c.aead.NonceSize()], data[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}
