package gormdb

import (
	"context"
	"time"

	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/repository"
	"familytree/internal/errors"
	"familytree/internal/infra/persistence/document"
	"familytree/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// columns maps document field names to table columns.
var columns = map[string]string{
	repository.FieldID:                "id",
	repository.FieldName:              "name",
	repository.FieldSurname:           "surname",
	repository.FieldMaidenName:        "maiden_name",
	repository.FieldFamily:            "family",
	repository.FieldGender:            "gender",
	repository.FieldMaritalStatus:     "marital_status",
	repository.FieldFatherID:          "father_id",
	repository.FieldFatherName:        "father_name",
	repository.FieldMotherID:          "mother_id",
	repository.FieldMotherName:        "mother_name",
	repository.FieldSpouseID:          "spouse_id",
	repository.FieldSpouseName:        "spouse_name",
	repository.FieldBirthMonth:        "birth_month",
	repository.FieldBirthYear:         "birth_year",
	repository.FieldProfilePictureURL: "profile_picture_url",
	repository.FieldDescription:       "description",
	repository.FieldStatus:            "status",
	repository.FieldDeletedAt:         "deleted_at",
	repository.FieldIsDeceased:        "is_deceased",
	repository.FieldDeathDate:         "death_date",
}

// personRepository implements repository.PersonRepository using GORM.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository is the constructor for personRepository.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{db: db}
}

func (repo *personRepository) FindByID(ctx context.Context, id string) (*entity.Person, error) {
	var m model.PersonModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, wrapStoreError(err, "failed to find person by id")
	}

	return toPersonDomain(&m), nil
}

func (repo *personRepository) FindAll(ctx context.Context) ([]*entity.Person, error) {
	var models []model.PersonModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, wrapStoreError(err, "failed to list people")
	}

	return toPeopleDomain(models), nil
}

func (repo *personRepository) FindByField(ctx context.Context, field string, value any) ([]*entity.Person, error) {
	column, ok := columns[field]
	if !ok {
		return nil, errors.Errorf("unknown person field %q", field)
	}

	var models []model.PersonModel
	err := repo.db.WithContext(ctx).
		Where(column+" = ?", document.Normalize(value)).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, wrapStoreError(err, "failed to query people by "+field)
	}

	return toPeopleDomain(models), nil
}

func (repo *personRepository) CountIDRange(ctx context.Context, lo, hi string) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PersonModel{}).
		Where("id >= ? AND id < ?", lo, hi).
		Count(&count).Error
	if err != nil {
		return 0, wrapStoreError(err, "failed to count person ids")
	}

	return int(count), nil
}

func (repo *personRepository) Create(ctx context.Context, person *entity.Person) error {
	m := fromPersonDomain(person)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrPersonExists, "create %s", person.ID)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required person information")
		}

		return wrapStoreError(err, "failed to create person")
	}

	return nil
}

func (repo *personRepository) Update(ctx context.Context, id string, patch repository.Patch) error {
	if len(patch) == 0 {
		return nil
	}

	updates := make(map[string]any, len(patch))
	for field, value := range patch {
		column, ok := columns[field]
		if !ok || field == repository.FieldID {
			return errors.Errorf("cannot update person field %q", field)
		}
		if value == repository.DeleteField {
			updates[column] = nil

			continue
		}
		updates[column] = document.Normalize(value)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PersonModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return wrapStoreError(result.Error, "failed to update person")
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(repository.ErrPersonNotFound, "update %s", id)
	}

	return nil
}

func (repo *personRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PersonModel{}).Error; err != nil {
		return wrapStoreError(err, "failed to delete person")
	}

	return nil
}

func wrapStoreError(err error, details string) error {
	if errors.IsAny(err, context.Canceled, context.DeadlineExceeded) {
		return errors.Wrap(err, details)
	}

	return domainerrors.NewStoreError(err, details)
}

func toPeopleDomain(models []model.PersonModel) []*entity.Person {
	people := make([]*entity.Person, 0, len(models))
	for i := range models {
		people = append(people, toPersonDomain(&models[i]))
	}

	return people
}

func toPersonDomain(m *model.PersonModel) *entity.Person {
	return &entity.Person{
		ID:                m.ID,
		Name:              m.Name,
		Surname:           m.Surname,
		MaidenName:        deref(m.MaidenName),
		Family:            deref(m.Family),
		Gender:            entity.Gender(m.Gender),
		MaritalStatus:     entity.MaritalStatus(m.MaritalStatus),
		Father:            entity.Linked(deref(m.FatherID), deref(m.FatherName)),
		Mother:            entity.Linked(deref(m.MotherID), deref(m.MotherName)),
		Spouse:            entity.Linked(deref(m.SpouseID), deref(m.SpouseName)),
		BirthMonth:        deref(m.BirthMonth),
		BirthYear:         deref(m.BirthYear),
		ProfilePictureURL: deref(m.ProfilePictureURL),
		Description:       deref(m.Description),
		Status:            entity.Status(m.Status),
		DeletedAt:         utc(m.DeletedAt),
		IsDeceased:        m.IsDeceased,
		DeathDate:         utc(m.DeathDate),
	}
}

func fromPersonDomain(p *entity.Person) *model.PersonModel {
	return &model.PersonModel{
		ID:                p.ID,
		Name:              p.Name,
		Surname:           p.Surname,
		MaidenName:        optional(p.MaidenName),
		Family:            optional(p.Family),
		Gender:            string(p.Gender),
		MaritalStatus:     string(p.MaritalStatus),
		FatherID:          optional(p.Father.LinkedID()),
		FatherName:        optional(p.Father.Name),
		MotherID:          optional(p.Mother.LinkedID()),
		MotherName:        optional(p.Mother.Name),
		SpouseID:          optional(p.Spouse.LinkedID()),
		SpouseName:        optional(p.Spouse.Name),
		BirthMonth:        optional(p.BirthMonth),
		BirthYear:         optional(p.BirthYear),
		ProfilePictureURL: optional(p.ProfilePictureURL),
		Description:       optional(p.Description),
		Status:            string(p.Status),
		DeletedAt:         utc(p.DeletedAt),
		IsDeceased:        p.IsDeceased,
		DeathDate:         utc(p.DeathDate),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()

	return &v
}
