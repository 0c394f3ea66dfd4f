package service

import (
	"encoding/binary"
	"fmt"

	"smart-wallet-core/internal/core/domain"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

// Domain-separation prefixes so relay payloads can never collide with
// direct-request payloads.
const (
	relayDigestPrefix   = "SWC-RELAY-V1"
	requestDigestPrefix = "SWC-REQUEST-V1"
)

// compactSigLen is header byte + r (32) + s (32).
const compactSigLen = 65

// ECDSASignatureService implements ports.SignatureService with secp256k1
// compact signatures and Keccak-256 digests.
type ECDSASignatureService struct{}

// NewECDSASignatureService creates a new ECDSASignatureService.
func NewECDSASignatureService() *ECDSASignatureService {
	return &ECDSASignatureService{}
}

// RelayDigest hashes the canonical relay payload (wallet, kind, opData, nonce).
func (s *ECDSASignatureService) RelayDigest(wallet domain.Address, kind domain.OperationKind, opData []byte, nonce uint64) []byte {
	var nonceBuf [8]byte
	binary.BigEndian.PutUint64(nonceBuf[:], nonce)

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(relayDigestPrefix))
	h.Write(wallet.Bytes())
	h.Write([]byte(kind))
	h.Write(keccak256(opData))
	h.Write(nonceBuf[:])
	return h.Sum(nil)
}

// RequestDigest hashes a direct HTTP request for signer authentication.
func (s *ECDSASignatureService) RequestDigest(method, path string, timestamp int64, nonce string, body []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(requestDigestPrefix))
	h.Write([]byte(fmt.Sprintf("%s|%s|%d|%s|", method, path, timestamp, nonce)))
	h.Write(keccak256(body))
	return h.Sum(nil)
}

// RecoverSigner recovers the address behind a single compact signature.
func (s *ECDSASignatureService) RecoverSigner(digest []byte, sig []byte) (domain.Address, error) {
	if len(sig) != compactSigLen {
		return domain.ZeroAddress, fmt.Errorf("signature must be %d bytes, got %d", compactSigLen, len(sig))
	}
	pub, _, err := secpecdsa.RecoverCompact(sig, digest)
	if err != nil {
		return domain.ZeroAddress, fmt.Errorf("recovering public key: %w", err)
	}
	return PubKeyAddress(pub), nil
}

// RecoverSigners recovers every signer from a concatenation of compact
// signatures. Signers must appear in strictly ascending address order, which
// makes duplicate signers structurally impossible.
func (s *ECDSASignatureService) RecoverSigners(digest []byte, sigs []byte) ([]domain.Address, error) {
	if len(sigs)%compactSigLen != 0 {
		return nil, fmt.Errorf("signature blob length %d is not a multiple of %d", len(sigs), compactSigLen)
	}
	count := len(sigs) / compactSigLen
	signers := make([]domain.Address, 0, count)
	for i := 0; i < count; i++ {
		signer, err := s.RecoverSigner(digest, sigs[i*compactSigLen:(i+1)*compactSigLen])
		if err != nil {
			return nil, fmt.Errorf("signature %d: %w", i, err)
		}
		if i > 0 && !signers[i-1].Less(signer) {
			return nil, fmt.Errorf("signature %d: signers must be in strictly ascending address order", i)
		}
		signers = append(signers, signer)
	}
	return signers, nil
}

// PubKeyAddress derives the 20-byte address from a secp256k1 public key:
// the last 20 bytes of keccak256 over the uncompressed key without prefix.
func PubKeyAddress(pub *secp256k1.PublicKey) domain.Address {
	raw := pub.SerializeUncompressed()
	return domain.BytesToAddress(keccak256(raw[1:])[12:])
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}
