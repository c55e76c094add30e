package crypto

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"

	"pairchat/internal/domain"
)

// DefaultCodeLength is the pairing-code length used when none is configured.
const DefaultCodeLength = 10

var codeEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// GeneratePairingCode mints a random lowercase base32 code. The entropy is
// drawn from crypto/rand, so collisions among concurrently open rooms are
// negligible at the expected room counts.
func (p *Provider) GeneratePairingCode(ctx context.Context) (domain.PairingCode, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}

	// 5 bits per base32 character.
	raw := make([]byte, (p.codeLength*5+7)/8)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("%w: pairing code: %v", domain.ErrCrypto, err)
	}
	code := strings.ToLower(codeEncoding.EncodeToString(raw))[:p.codeLength]
	return domain.PairingCode(code), nil
}
