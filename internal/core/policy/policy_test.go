package policy

import (
	"testing"

	"github.com/invenco/inventory-system/internal/core/domain"
)

var (
	admin = Caller{ID: "u-admin", Role: domain.RoleAdmin}
	owner = Caller{ID: "u-owner", Role: domain.RoleOwner}
	plain = Caller{ID: "u-plain", Role: domain.RoleDefault}
)

func TestAuthorize_AdminAllowsEverything(t *testing.T) {
	actions := []Action{ActionListAll, ActionListOwn, ActionCreate, ActionEdit, ActionDelete, ActionViewUsers, ActionReassignOwner}
	for _, action := range actions {
		if Authorize(admin, action, "someone-else") != Allow {
			t.Errorf("admin denied %s", action)
		}
	}
}

func TestAuthorize_OwnerScopedToOwnItems(t *testing.T) {
	if Authorize(owner, ActionEdit, owner.ID) != Allow {
		t.Error("owner denied edit on own item")
	}
	if Authorize(owner, ActionDelete, owner.ID) != Allow {
		t.Error("owner denied delete on own item")
	}
	if Authorize(owner, ActionEdit, "someone-else") != Deny {
		t.Error("owner allowed to edit a foreign item")
	}
	if Authorize(owner, ActionDelete, "someone-else") != Deny {
		t.Error("owner allowed to delete a foreign item")
	}
}

func TestAuthorize_OwnerCapabilities(t *testing.T) {
	if Authorize(owner, ActionCreate, "") != Allow {
		t.Error("owner denied create")
	}
	if Authorize(owner, ActionListOwn, "") != Allow {
		t.Error("owner denied list own")
	}
	if Authorize(owner, ActionListAll, "") != Deny {
		t.Error("owner allowed to list all")
	}
	if Authorize(owner, ActionViewUsers, "") != Deny {
		t.Error("owner allowed to view users")
	}
	if Authorize(owner, ActionReassignOwner, owner.ID) != Deny {
		t.Error("owner allowed to reassign ownership")
	}
	if Authorize(owner, ActionRead, owner.ID) != Deny {
		t.Error("read must be decided through ListScope, not the decision table")
	}
}

func TestAuthorize_DefaultDeny(t *testing.T) {
	actions := []Action{ActionListAll, ActionListOwn, ActionCreate, ActionEdit, ActionDelete, ActionViewUsers, ActionReassignOwner, ActionRead}
	for _, caller := range []Caller{plain, Anonymous()} {
		for _, action := range actions {
			if Authorize(caller, action, caller.ID) != Deny {
				t.Errorf("caller %q allowed %s", caller.ID, action)
			}
		}
	}
}

func TestAuthorize_DanglingOwnerTreatedAsNotOwner(t *testing.T) {
	// An item whose owner reference no longer resolves has an owner id that
	// matches no caller; the check must deny rather than fault.
	if Authorize(owner, ActionEdit, "") != Deny {
		t.Error("owner allowed to edit item with missing owner reference")
	}
}

func TestAuthorize_AnonymousNeverMatchesEmptyOwner(t *testing.T) {
	// Both the anonymous caller id and a dangling owner are empty strings;
	// that coincidence must not grant access.
	anon := Anonymous()
	if Authorize(anon, ActionEdit, "") != Deny {
		t.Error("anonymous caller allowed edit on ownerless item")
	}
}

func TestListScope(t *testing.T) {
	tests := []struct {
		name   string
		caller Caller
		want   Scope
	}{
		{"admin sees all", admin, ScopeAll},
		{"owner sees own", owner, ScopeOwn},
		{"default sees nothing", plain, ScopeNone},
		{"anonymous sees nothing", Anonymous(), ScopeNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ListScope(tt.caller); got != tt.want {
				t.Errorf("ListScope() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRole_UnknownCollapsesToDefault(t *testing.T) {
	for _, name := range []string{"", "Admin", "ADMIN", "superuser", "ownerr"} {
		if domain.ParseRole(name) != domain.RoleDefault {
			t.Errorf("ParseRole(%q) should be RoleDefault", name)
		}
	}
	if domain.ParseRole("admin") != domain.RoleAdmin {
		t.Error("ParseRole(admin) should be RoleAdmin")
	}
	if domain.ParseRole("owner") != domain.RoleOwner {
		t.Error("ParseRole(owner) should be RoleOwner")
	}
}
