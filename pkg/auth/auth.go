package auth

import (
	"os"
	"strings"
)

// Actions checked before a command runs. Mutating verbs require admin;
// opening a shop for browsing only requires trade access.
const (
	ActionAdmin = "trade.admin"
	ActionUse   = "trade.use"
)

// Gate decides whether an actor may perform an action.
type Gate interface {
	Allowed(actor, action string) bool
}

// RoleGate grants actions based on a single configured role. The zero value
// denies everything except basic trade use.
type RoleGate struct {
	Role string
}

// FromEnv builds a gate from the TRADESMITH_ROLE environment variable.
// An unset variable defaults to admin: the CLI is a local editing tool and
// its operator owns the project directory.
func FromEnv() *RoleGate {
	role := strings.TrimSpace(os.Getenv("TRADESMITH_ROLE"))
	if role == "" {
		role = "admin"
	}
	return &RoleGate{Role: role}
}

func (g *RoleGate) Allowed(actor, action string) bool {
	switch action {
	case ActionAdmin:
		return g.Role == "admin"
	case ActionUse:
		return g.Role == "admin" || g.Role == "trader"
	default:
		return false
	}
}
