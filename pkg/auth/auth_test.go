package auth

import "testing"

func TestRoleGate(t *testing.T) {
	tests := []struct {
		role   string
		action string
		want   bool
	}{
		{"admin", ActionAdmin, true},
		{"admin", ActionUse, true},
		{"trader", ActionAdmin, false},
		{"trader", ActionUse, true},
		{"", ActionAdmin, false},
		{"admin", "unknown.action", false},
	}

	for _, tt := range tests {
		g := &RoleGate{Role: tt.role}
		if got := g.Allowed("steve", tt.action); got != tt.want {
			t.Errorf("RoleGate{%q}.Allowed(%q) = %v, want %v", tt.role, tt.action, got, tt.want)
		}
	}
}

func TestFromEnvDefaultsToAdmin(t *testing.T) {
	t.Setenv("TRADESMITH_ROLE", "")
	if g := FromEnv(); g.Role != "admin" {
		t.Errorf("expected admin default, got %q", g.Role)
	}

	t.Setenv("TRADESMITH_ROLE", "trader")
	if g := FromEnv(); g.Role != "trader" {
		t.Errorf("expected trader, got %q", g.Role)
	}
}
