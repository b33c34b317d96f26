// internal/domain/models/enums.go
package models

// LoginMethod identifies how a user authenticated for the current request.
// It is a closed set: anything outside these two values is rejected at the
// handler boundary, so stores never see an unknown method.
type LoginMethod string

const (
	LoginMethodEmail  LoginMethod = "email"
	LoginMethodGoogle LoginMethod = "google"
)

// Valid reports whether m is one of the known login methods.
func (m LoginMethod) Valid() bool {
	return m == LoginMethodEmail || m == LoginMethodGoogle
}

// FamilyType classifies a family group.
type FamilyType string

const (
	FamilyTypeHome   FamilyType = "home"
	FamilyTypeOffice FamilyType = "office"
)

// Valid reports whether t is one of the known family types.
func (t FamilyType) Valid() bool {
	return t == FamilyTypeHome || t == FamilyTypeOffice
}

// MemberRole is the role a user holds inside a family. The creating user is
// always the owner; everyone added later is a plain member.
type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleMember MemberRole = "member"
)
