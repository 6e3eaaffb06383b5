package repository

import (
	"maps"
	"slices"

	"familytree/internal/domain/entity"
)

type deleteField struct{}

// DeleteField is the patch value that removes a field from the document,
// as opposed to setting it to an empty value.
var DeleteField = deleteField{}

// Patch maps document field names to new values or DeleteField.
type Patch map[string]any

// Set records a new value for the field.
func (p Patch) Set(field string, value any) Patch {
	p[field] = value

	return p
}

// Delete records the removal of the field.
func (p Patch) Delete(fields ...string) Patch {
	for _, field := range fields {
		p[field] = DeleteField
	}

	return p
}

// IsDelete reports whether the patch removes the field.
func (p Patch) IsDelete(field string) bool {
	value, ok := p[field]

	return ok && value == DeleteField
}

// Merge copies every entry of other into p.
func (p Patch) Merge(other Patch) Patch {
	maps.Copy(p, other)

	return p
}

// Fields returns the patched field names in sorted order.
func (p Patch) Fields() []string {
	return slices.Sorted(maps.Keys(p))
}

// SetRelation records the fields that represent rel in the given slot.
func (p Patch) SetRelation(slot entity.RelationSlot, rel entity.Relation) Patch {
	idField, nameField := RelationFields(slot)
	switch rel.Kind {
	case entity.RelationLinked:
		p[idField] = rel.ID
		if rel.Name != "" {
			p[nameField] = rel.Name
		} else {
			p[nameField] = DeleteField
		}
	case entity.RelationUnlinked:
		p[idField] = DeleteField
		p[nameField] = rel.Name
	default:
		p[idField] = DeleteField
		p[nameField] = DeleteField
	}

	return p
}

// RelationFields returns the ID and name fields backing a relation slot.
func RelationFields(slot entity.RelationSlot) (idField, nameField string) {
	switch slot {
	case entity.SlotFather:
		return FieldFatherID, FieldFatherName
	case entity.SlotMother:
		return FieldMotherID, FieldMotherName
	default:
		return FieldSpouseID, FieldSpouseName
	}
}
