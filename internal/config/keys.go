package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

const rsaKeyBits = 2048

// loadJWTKeys reads the base64 PEM pair from JWT_PRIVATE_KEY and
// JWT_PUBLIC_KEY. Outside production a missing pair is replaced by a fresh
// one, which invalidates every token on restart.
func loadJWTKeys(production bool) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateB64, publicB64 := os.Getenv("JWT_PRIVATE_KEY"), os.Getenv("JWT_PUBLIC_KEY")

	if privateB64 == "" || publicB64 == "" {
		if production {
			return nil, nil, errors.New("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY must be set in production")
		}
		slog.Warn("JWT keys not configured, generating an ephemeral RSA pair")
		return GenerateRSAKeyPair()
	}

	privatePEM, err := base64.StdEncoding.DecodeString(privateB64)
	if err != nil {
		return nil, nil, fmt.Errorf("decode JWT_PRIVATE_KEY: %w", err)
	}
	publicPEM, err := base64.StdEncoding.DecodeString(publicB64)
	if err != nil {
		return nil, nil, fmt.Errorf("decode JWT_PUBLIC_KEY: %w", err)
	}

	privateKey, err := parseRSAPrivateKey(privatePEM)
	if err != nil {
		return nil, nil, err
	}
	publicKey, err := parseRSAPublicKey(publicPEM)
	if err != nil {
		return nil, nil, err
	}
	if !privateKey.PublicKey.Equal(publicKey) {
		return nil, nil, errors.New("JWT_PUBLIC_KEY does not belong to JWT_PRIVATE_KEY")
	}
	return privateKey, publicKey, nil
}

func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return nil, nil, fmt.Errorf("generate RSA key: %w", err)
	}
	return key, &key.PublicKey, nil
}

// parseRSAPrivateKey accepts PKCS#1 and PKCS#8 PEM blocks
func parseRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("private key: no PEM block")
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key: %T is not RSA", parsed)
	}
	return key, nil
}

// parseRSAPublicKey accepts a PKIX PEM block
func parseRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("public key: no PEM block")
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key: %T is not RSA", parsed)
	}
	return key, nil
}
