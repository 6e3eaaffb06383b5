package entity

import "slices"

// Access is the breadth of an editor's scope.
type Access string

const (
	AccessAll      Access = "all"
	AccessSpecific Access = "specific"
)

// ActorScope describes which records an administrator may see.
// Families maps a surname to the families of that surname the actor may see;
// a surname with no families listed grants every family of it.
type ActorScope struct {
	UID      string
	Email    string
	Role     Role
	Access   Access
	Surnames []string
	Families map[string][]string
}

// Unrestricted returns a scope that sees every record.
func Unrestricted() ActorScope {
	return ActorScope{Role: RoleSuperAdmin, Access: AccessAll}
}

// SeesAll reports whether the scope is unrestricted.
func (s ActorScope) SeesAll() bool {
	return s.Role == RoleSuperAdmin || s.Access == AccessAll
}

// AllowsSurname reports whether the surname is listed in the scope.
func (s ActorScope) AllowsSurname(surname string) bool {
	return surname != "" && slices.Contains(s.Surnames, surname)
}
