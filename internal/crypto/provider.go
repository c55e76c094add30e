package crypto

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"golang.org/x/crypto/curve25519"

	"pairchat/internal/domain"
	"pairchat/internal/util/memzero"
)

// Provider generates the key material and pairing codes backing a chat
// session. Key material never leaves the provider; callers observe only
// success or failure, plus a short fingerprint for display.
type Provider struct {
	mu sync.Mutex

	codeLength int

	xPriv    [32]byte
	xPub     [32]byte
	edPriv   ed25519.PrivateKey
	edPub    ed25519.PublicKey
	haveKeys bool
}

// New returns a provider minting pairing codes of codeLength characters.
// Non-positive lengths fall back to DefaultCodeLength.
func New(codeLength int) *Provider {
	if codeLength <= 0 {
		codeLength = DefaultCodeLength
	}
	return &Provider{codeLength: codeLength}
}

// GenerateKeyPair creates a fresh X25519 key pair (clamped per RFC 7748) and
// an Ed25519 signing pair for the current session, replacing any previous
// keys.
func (p *Provider) GenerateKeyPair(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}

	var xPriv [32]byte
	if _, err := rand.Read(xPriv[:]); err != nil {
		return fmt.Errorf("%w: x25519 keygen: %v", domain.ErrCrypto, err)
	}
	clamp(&xPriv)
	xPub, err := curve25519.X25519(xPriv[:], curve25519.Basepoint)
	if err != nil {
		return fmt.Errorf("%w: x25519 public key: %v", domain.ErrCrypto, err)
	}

	edPub, edPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("%w: ed25519 keygen: %v", domain.ErrCrypto, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.wipeLocked()
	p.xPriv = xPriv
	copy(p.xPub[:], xPub)
	p.edPriv = edPriv
	p.edPub = edPub
	p.haveKeys = true
	return nil
}

// Reset wipes the session's key material. Safe to call repeatedly.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.wipeLocked()
}

// Fingerprint returns a short hex fingerprint of the session's X25519 public
// key, or "" when no key pair has been generated.
func (p *Provider) Fingerprint() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.haveKeys {
		return ""
	}
	sum := sha256.Sum256(p.xPub[:])
	return hex.EncodeToString(sum[:10])
}

func (p *Provider) wipeLocked() {
	memzero.Zero(p.xPriv[:])
	memzero.Zero(p.edPriv)
	p.xPub = [32]byte{}
	p.edPriv, p.edPub = nil, nil
	p.haveKeys = false
}

// clamp prepares an X25519 private key per RFC 7748.
func clamp(k *[32]byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}

// Compile-time assertion that Provider implements domain.CryptoProvider.
var _ domain.CryptoProvider = (*Provider)(nil)
