// Package familypolicy holds the pure authorization rules for family
// creation and sharing.
//
// Authorization rules:
//   - Only Google-authenticated sessions may create a family, because a
//     family implies potential sharing with other members.
//   - Email/password accounts are never sharing-capable.
//   - Membership checks are not a policy concern; they live on the family
//     store, which owns the member list.
package familypolicy

import "github.com/dalemusser/pantryhub/internal/domain/models"

// CanShareFamily reports whether the given login method is permitted to
// create a shareable family. This is evaluated per request at creation time
// against the method the caller authenticated with, not stored state.
func CanShareFamily(method models.LoginMethod) bool {
	return method == models.LoginMethodGoogle
}
