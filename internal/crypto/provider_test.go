package crypto_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pairchat/internal/crypto"
	"pairchat/internal/domain"
)

const codeAlphabet = "abcdefghijklmnopqrstuvwxyz234567"

func TestGeneratePairingCode_LengthAndCharset(t *testing.T) {
	for _, length := range []int{crypto.DefaultCodeLength, 16} {
		p := crypto.New(length)
		code, err := p.GeneratePairingCode(context.Background())
		if err != nil {
			t.Fatalf("GeneratePairingCode: %v", err)
		}
		if len(code) != length {
			t.Fatalf("code %q has length %d, want %d", code, len(code), length)
		}
		for _, r := range string(code) {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("code %q contains %q outside the base32 alphabet", code, r)
			}
		}
	}
}

func TestGeneratePairingCode_Unique(t *testing.T) {
	p := crypto.New(0)
	seen := make(map[domain.PairingCode]bool)
	for i := 0; i < 100; i++ {
		code, err := p.GeneratePairingCode(context.Background())
		if err != nil {
			t.Fatalf("GeneratePairingCode: %v", err)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q", code)
		}
		seen[code] = true
	}
}

func TestGenerateKeyPair_Fingerprint(t *testing.T) {
	p := crypto.New(0)
	if fp := p.Fingerprint(); fp != "" {
		t.Fatalf("fingerprint before keygen = %q, want empty", fp)
	}

	if err := p.GenerateKeyPair(context.Background()); err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	first := p.Fingerprint()
	if first == "" {
		t.Fatal("empty fingerprint after keygen")
	}

	if err := p.GenerateKeyPair(context.Background()); err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if second := p.Fingerprint(); second == first {
		t.Fatalf("fingerprint unchanged after regenerating keys: %q", second)
	}
}

func TestReset_WipesKeys(t *testing.T) {
	p := crypto.New(0)
	if err := p.GenerateKeyPair(context.Background()); err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	p.Reset()
	if fp := p.Fingerprint(); fp != "" {
		t.Fatalf("fingerprint after reset = %q, want empty", fp)
	}

	// Reset on an already-reset provider is a no-op.
	p.Reset()
}

func TestCancelledContext_IsCryptoError(t *testing.T) {
	p := crypto.New(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.GenerateKeyPair(ctx); !errors.Is(err, domain.ErrCrypto) {
		t.Fatalf("GenerateKeyPair error = %v, want ErrCrypto", err)
	}
	if _, err := p.GeneratePairingCode(ctx); !errors.Is(err, domain.ErrCrypto) {
		t.Fatalf("GeneratePairingCode error = %v, want ErrCrypto", err)
	}
}
