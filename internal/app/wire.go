package app

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pairchat/internal/crypto"
	"pairchat/internal/identity"
	"pairchat/internal/registry"
	chatsvc "pairchat/internal/services/chat"
)

// Wire bundles the process-wide room registry and a factory for independent
// chat sessions sharing it.
type Wire struct {
	Rooms *registry.Registry

	cfg Config
}

// NewWire constructs the dependency graph from cfg. The registry is created
// once here and lives for the process.
func NewWire(cfg Config) *Wire {
	return &Wire{Rooms: registry.New(), cfg: cfg}
}

// NewSession creates an independent chat session: a fresh identity and
// crypto provider, wired to the shared registry.
func (w *Wire) NewSession() *chatsvc.Service {
	return chatsvc.New(identity.New(), crypto.New(w.cfg.CodeLength), w.Rooms)
}

// SetupLogging configures the global zerolog logger from cfg.
func SetupLogging(cfg Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
