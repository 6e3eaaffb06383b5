// Package document converts people to and from the field maps stored by
// document backends. A field that is unset on the person is absent from the
// map rather than stored empty.
package document

import (
	"maps"
	"time"

	"familytree/internal/domain/entity"
	"familytree/internal/domain/repository"
)

// Document is the stored form of a person, keyed by repository field name.
// The ID is the document key and is not part of the map.
type Document map[string]any

// Encode returns the document for p.
func Encode(p *entity.Person) Document {
	doc := Document{
		repository.FieldName:          p.Name,
		repository.FieldSurname:       p.Surname,
		repository.FieldGender:        string(p.Gender),
		repository.FieldMaritalStatus: string(p.MaritalStatus),
		repository.FieldStatus:        string(p.Status),
		repository.FieldIsDeceased:    p.IsDeceased,
	}

	putString(doc, repository.FieldMaidenName, p.MaidenName)
	putString(doc, repository.FieldFamily, p.Family)
	putString(doc, repository.FieldBirthMonth, p.BirthMonth)
	putString(doc, repository.FieldBirthYear, p.BirthYear)
	putString(doc, repository.FieldProfilePictureURL, p.ProfilePictureURL)
	putString(doc, repository.FieldDescription, p.Description)
	putTime(doc, repository.FieldDeletedAt, p.DeletedAt)
	putTime(doc, repository.FieldDeathDate, p.DeathDate)

	for _, slot := range []entity.RelationSlot{entity.SlotFather, entity.SlotMother, entity.SlotSpouse} {
		idField, nameField := repository.RelationFields(slot)
		rel := p.Slot(slot)
		putString(doc, idField, rel.LinkedID())
		putString(doc, nameField, rel.Name)
	}

	return doc
}

// Decode builds the person stored under id.
func Decode(id string, doc Document) *entity.Person {
	p := &entity.Person{
		ID:                id,
		Name:              doc.String(repository.FieldName),
		Surname:           doc.String(repository.FieldSurname),
		MaidenName:        doc.String(repository.FieldMaidenName),
		Family:            doc.String(repository.FieldFamily),
		Gender:            entity.Gender(doc.String(repository.FieldGender)),
		MaritalStatus:     entity.MaritalStatus(doc.String(repository.FieldMaritalStatus)),
		BirthMonth:        doc.String(repository.FieldBirthMonth),
		BirthYear:         doc.String(repository.FieldBirthYear),
		ProfilePictureURL: doc.String(repository.FieldProfilePictureURL),
		Description:       doc.String(repository.FieldDescription),
		Status:            entity.Status(doc.String(repository.FieldStatus)),
		DeletedAt:         doc.Time(repository.FieldDeletedAt),
		IsDeceased:        doc.Bool(repository.FieldIsDeceased),
		DeathDate:         doc.Time(repository.FieldDeathDate),
	}

	for _, slot := range []entity.RelationSlot{entity.SlotFather, entity.SlotMother, entity.SlotSpouse} {
		idField, nameField := repository.RelationFields(slot)
		p.SetSlot(slot, entity.Linked(doc.String(idField), doc.String(nameField)))
	}

	return p
}

// Apply returns a copy of doc with the patch applied.
func Apply(doc Document, patch repository.Patch) Document {
	out := maps.Clone(doc)
	if out == nil {
		out = Document{}
	}
	for field, value := range patch {
		if value == repository.DeleteField {
			delete(out, field)

			continue
		}
		out[field] = Normalize(value)
	}

	return out
}

// Normalize converts a patch value to the plain type stored in documents.
// Named string types become strings and times are stored in UTC.
func Normalize(value any) any {
	switch v := value.(type) {
	case entity.Gender:
		return string(v)
	case entity.MaritalStatus:
		return string(v)
	case entity.Status:
		return string(v)
	case time.Time:
		return v.UTC()
	case *time.Time:
		if v == nil {
			return nil
		}

		return v.UTC()
	default:
		return value
	}
}

// Matches reports whether the field of doc equals value.
func (d Document) Matches(field string, value any) bool {
	stored, ok := d[field]
	if !ok {
		return false
	}
	want := Normalize(value)
	if t, isTime := want.(time.Time); isTime {
		got, isStoredTime := stored.(time.Time)

		return isStoredTime && got.Equal(t)
	}

	return stored == want
}

// String returns a string field, or "" when absent.
func (d Document) String(field string) string {
	s, _ := d[field].(string)

	return s
}

// Bool returns a boolean field, or false when absent.
func (d Document) Bool(field string) bool {
	b, _ := d[field].(bool)

	return b
}

// Time returns a timestamp field, or nil when absent.
func (d Document) Time(field string) *time.Time {
	switch v := d[field].(type) {
	case time.Time:
		t := v.UTC()

		return &t
	case *time.Time:
		if v == nil {
			return nil
		}
		t := v.UTC()

		return &t
	default:
		return nil
	}
}

func putString(doc Document, field, value string) {
	if value != "" {
		doc[field] = value
	}
}

func putTime(doc Document, field string, value *time.Time) {
	if value != nil {
		doc[field] = value.UTC()
	}
}
