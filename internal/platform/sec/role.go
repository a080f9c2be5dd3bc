// Copyright (c) 2026 Polyglot. All rights reserved.
// Author: thuan.dang.dev@gmail.com

package sec

// # Editor Roles

// EditorRole represents the authorization level granted to an editor account.
type EditorRole string

const (
	// Unrestricted system access, including locale administration
	RoleAdmin EditorRole = "admin"

	// Can create, translate, and publish content records
	RoleEditor EditorRole = "editor"

	// Can propose translations but not publish or delete
	RoleTranslator EditorRole = "translator"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r EditorRole) AtLeast(target EditorRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r EditorRole) level() int {

	// Linear scale (10-30) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleEditor:
		return 20
	case RoleTranslator:
		return 10
	default:
		return 0
	}
}
