package genealogy

import (
	"slices"

	"familytree/internal/domain/entity"
)

// IsVisible reports whether an administrator with the given scope may see
// the person. An editor with specific access sees records whose surname or
// maiden name is listed, restricted to the families listed for that surname.
func IsVisible(person *entity.Person, scope entity.ActorScope) bool {
	if person == nil {
		return false
	}
	if scope.SeesAll() {
		return scope.Role.IsValid()
	}
	if scope.Role != entity.RoleEditor || scope.Access != entity.AccessSpecific {
		return false
	}

	surname := ""
	switch {
	case scope.AllowsSurname(person.Surname):
		surname = person.Surname
	case scope.AllowsSurname(person.MaidenName):
		surname = person.MaidenName
	default:
		return false
	}

	families := scope.Families[surname]
	if len(families) == 0 {
		return true
	}

	return slices.Contains(families, person.Family)
}

// FilterVisible returns the records visible to scope. A nil scope sees everything.
func FilterVisible(s *Snapshot, scope *entity.ActorScope) *Snapshot {
	if scope == nil {
		return s
	}

	return s.Filter(func(p *entity.Person) bool {
		return IsVisible(p, *scope)
	})
}
