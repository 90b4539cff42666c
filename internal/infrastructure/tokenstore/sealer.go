package tokenstore

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

const (
	saltSize  = 16
	nonceSize = 24
	keySize   = 32

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

var errSealedTooShort = errors.New("token sellado inválido")

// Sealer cifra el token en disco con una passphrase (scrypt + nacl/secretbox).
// Formato: base64(salt | nonce | secretbox).
type Sealer struct {
	passphrase []byte
}

// NewSealer crea un Sealer con la passphrase dada.
func NewSealer(passphrase string) *Sealer {
	return &Sealer{passphrase: []byte(passphrase)}
}

func (s *Sealer) deriveKey(salt []byte) (*[keySize]byte, error) {
	k, err := scrypt.Key(s.passphrase, salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return nil, err
	}
	var key [keySize]byte
	copy(key[:], k)
	return &key, nil
}

// Seal cifra plain con sal y nonce aleatorios.
func (s *Sealer) Seal(plain string) (string, error) {
	buf := make([]byte, saltSize+nonceSize, saltSize+nonceSize+secretbox.Overhead+len(plain))
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("aleatorio: %w", err)
	}
	key, err := s.deriveKey(buf[:saltSize])
	if err != nil {
		return "", err
	}
	var nonce [nonceSize]byte
	copy(nonce[:], buf[saltSize:])
	out := secretbox.Seal(buf, []byte(plain), &nonce, key)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Open descifra un valor producido por Seal.
func (s *Sealer) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("base64: %w", err)
	}
	if len(raw) < saltSize+nonceSize+secretbox.Overhead {
		return "", errSealedTooShort
	}
	key, err := s.deriveKey(raw[:saltSize])
	if err != nil {
		return "", err
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[saltSize:saltSize+nonceSize])
	plain, ok := secretbox.Open(nil, raw[saltSize+nonceSize:], &nonce, key)
	if !ok {
		return "", errors.New("passphrase incorrecta o token alterado")
	}
	return string(plain), nil
}
