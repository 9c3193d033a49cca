package commands

import (
	"fmt"
	"os"

	"github.com/tradesmith/tradesmith-cli/internal/cli"
	"github.com/tradesmith/tradesmith-cli/pkg/auth"
	"github.com/tradesmith/tradesmith-cli/pkg/store"
)

// LocalActor identifies the operator of this CLI to the authorization gate.
// The terminal tool is single-user; multi-user identity lives in the session
// router.
const LocalActor = "local"

// newGate builds the authorization gate. Tests swap this out.
var newGate = func() auth.Gate {
	return auth.FromEnv()
}

func requireAdmin() error {
	if !newGate().Allowed(LocalActor, auth.ActionAdmin) {
		return fmt.Errorf("not permitted: admin role required (set TRADESMITH_ROLE=admin)")
	}
	return nil
}

func requireUse() error {
	if !newGate().Allowed(LocalActor, auth.ActionUse) {
		return fmt.Errorf("not permitted: trading access required")
	}
	return nil
}

func requireProject() error {
	if _, err := os.Stat(store.TradesmithDir); os.IsNotExist(err) {
		return fmt.Errorf("no .tradesmith directory found. Run 'tradesmith init' first")
	}
	return nil
}

func loadEnvironment() (*cli.Environment, error) {
	return cli.LoadEnvironment()
}
