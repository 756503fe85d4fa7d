// Package policy is the single source of truth for access decisions. It is a
// pure decision table: no storage, no network, no ambient state. Both the
// session surface and the data surface consult it through the service layer,
// so the rules cannot diverge per entry point.
package policy

import "github.com/invenco/inventory-system/internal/core/domain"

// Action enumerates everything a caller can attempt.
type Action int

const (
	ActionListAll Action = iota
	ActionListOwn
	ActionCreate
	ActionEdit
	ActionDelete
	ActionViewUsers
	// ActionReassignOwner covers changing an item's owner reference, either
	// on update or by creating an item on someone else's behalf. Admin only.
	ActionReassignOwner
	// ActionRead labels denied item reads (single get or list) in the audit
	// trail and metrics. Read access itself is decided through ListScope;
	// this action never grants anything in the decision table.
	ActionRead
)

func (a Action) String() string {
	switch a {
	case ActionListAll:
		return "list_all"
	case ActionListOwn:
		return "list_own"
	case ActionCreate:
		return "create"
	case ActionEdit:
		return "edit"
	case ActionDelete:
		return "delete"
	case ActionViewUsers:
		return "view_users"
	case ActionReassignOwner:
		return "reassign_owner"
	case ActionRead:
		return "read"
	default:
		return "unknown"
	}
}

// Decision is the outcome of an authorization check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

// Caller identifies who is acting. The zero value is the anonymous caller:
// empty ID, RoleDefault, denied everything.
type Caller struct {
	ID   string
	Role domain.Role
}

// Anonymous returns the unauthenticated caller.
func Anonymous() Caller {
	return Caller{}
}

// Authorize decides whether caller may perform action. For Edit, Delete and
// ReassignOwner, targetOwner is the owner reference of the item being acted
// on; it is ignored for target-less actions. A dangling owner reference can
// never equal a caller ID, so it resolves to "not owner" rather than a fault.
func Authorize(caller Caller, action Action, targetOwner string) Decision {
	switch caller.Role {
	case domain.RoleAdmin:
		return Allow
	case domain.RoleOwner:
		switch action {
		case ActionCreate, ActionListOwn:
			return Allow
		case ActionEdit, ActionDelete:
			if caller.ID != "" && targetOwner == caller.ID {
				return Allow
			}
			return Deny
		default:
			return Deny
		}
	default:
		return Deny
	}
}

// Scope describes which items a caller may see when listing or reading.
type Scope int

const (
	ScopeNone Scope = iota
	ScopeOwn
	ScopeAll
)

// ListScope returns the listing scope for caller. Listing is policy-shaped:
// controllers ask for the scope instead of branching on the role themselves.
func ListScope(caller Caller) Scope {
	switch {
	case Authorize(caller, ActionListAll, "") == Allow:
		return ScopeAll
	case Authorize(caller, ActionListOwn, "") == Allow:
		return ScopeOwn
	default:
		return ScopeNone
	}
}
