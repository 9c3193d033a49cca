package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/tradesmith/tradesmith-cli/pkg/catalog"
	"github.com/tradesmith/tradesmith-cli/pkg/registry"
	"github.com/tradesmith/tradesmith-cli/pkg/store"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() (*CommandContext, error) {
	return &CommandContext{
		ProjectPath: store.TradesmithDir,
	}, nil
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no .tradesmith directory found. Run 'tradesmith init' first")
	}

	c.validated = true
	return nil
}

// Environment bundles the loaded project state every command works against.
type Environment struct {
	Log      zerolog.Logger
	Registry *registry.Registry
	Catalog  *catalog.Catalog
}

// NewLogger builds the CLI logger. Level comes from TRADESMITH_LOG; commands
// default to warn so normal output stays clean.
func NewLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if raw := os.Getenv("TRADESMITH_LOG"); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// LoadEnvironment validates the project and loads the registry and item
// catalog.
func LoadEnvironment() (*Environment, error) {
	ctx, err := NewCommandContext()
	if err != nil {
		return nil, err
	}
	if err := ctx.ValidateProject(); err != nil {
		return nil, err
	}

	log := NewLogger()

	reg := registry.NewRegistry(store.NewStore(store.TradesmithDir, log), log)
	if err := reg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load trade collections: %w", err)
	}

	cat, err := catalog.Load(store.TradesmithDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load item catalog: %w", err)
	}

	return &Environment{Log: log, Registry: reg, Catalog: cat}, nil
}
