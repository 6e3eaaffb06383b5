package handler

import (
	"strings"
	"time"

	"familytree/internal/domain/entity"
	"familytree/internal/domain/genealogy"
	"familytree/internal/domain/service"
	"familytree/internal/usecase"
)

// PersonRequest is the body of a registration, an admin create or an import record.
// A relation is linked when its ID is set, otherwise claimed by name.
type PersonRequest struct {
	Name              string     `json:"name" validate:"required,uppername"`
	Surname           string     `json:"surname" validate:"required,uppername"`
	MaidenName        string     `json:"maidenName" validate:"required,uppername"`
	Family            string     `json:"family" validate:"max=64"`
	Gender            string     `json:"gender" validate:"required,gender"`
	MaritalStatus     string     `json:"maritalStatus" validate:"omitempty,oneof=single married"`
	FatherID          string     `json:"fatherId"`
	FatherName        string     `json:"fatherName"`
	MotherID          string     `json:"motherId"`
	MotherName        string     `json:"motherName"`
	SpouseID          string     `json:"spouseId"`
	SpouseName        string     `json:"spouseName"`
	BirthMonth        string     `json:"birthMonth" validate:"omitempty,numeric,min=1,max=2"`
	BirthYear         string     `json:"birthYear" validate:"omitempty,numeric,len=4"`
	ProfilePictureURL string     `json:"profilePictureUrl" validate:"omitempty,url"`
	Description       string     `json:"description" validate:"max=2000"`
	IsDeceased        bool       `json:"isDeceased"`
	DeathDate         *time.Time `json:"deathDate"`
}

// Normalize upper-cases the names before validation.
func (r *PersonRequest) Normalize() {
	r.Name = upper(r.Name)
	r.Surname = upper(r.Surname)
	r.MaidenName = upper(r.MaidenName)
	r.Family = upper(r.Family)
	r.FatherName = upper(r.FatherName)
	r.MotherName = upper(r.MotherName)
	r.SpouseName = upper(r.SpouseName)
}

func (r *PersonRequest) toInput() *usecase.CreatePersonInput {
	return &usecase.CreatePersonInput{
		Name:              r.Name,
		Surname:           r.Surname,
		MaidenName:        r.MaidenName,
		Family:            r.Family,
		Gender:            entity.Gender(r.Gender),
		MaritalStatus:     entity.MaritalStatus(r.MaritalStatus),
		Father:            entity.Linked(strings.TrimSpace(r.FatherID), r.FatherName),
		Mother:            entity.Linked(strings.TrimSpace(r.MotherID), r.MotherName),
		Spouse:            entity.Linked(strings.TrimSpace(r.SpouseID), r.SpouseName),
		BirthMonth:        r.BirthMonth,
		BirthYear:         r.BirthYear,
		ProfilePictureURL: r.ProfilePictureURL,
		Description:       r.Description,
		IsDeceased:        r.IsDeceased,
		DeathDate:         r.DeathDate,
	}
}

// UpdatePersonRequest is the body of a partial update. Absent fields are
// left untouched. Sending both the ID and the name of a relation as empty
// strings clears it.
type UpdatePersonRequest struct {
	Name              *string    `json:"name" validate:"omitempty,uppername"`
	Surname           *string    `json:"surname" validate:"omitempty,uppername"`
	MaidenName        *string    `json:"maidenName" validate:"omitempty,uppername"`
	Family            *string    `json:"family" validate:"omitempty,max=64"`
	Gender            *string    `json:"gender" validate:"omitempty,gender"`
	MaritalStatus     *string    `json:"maritalStatus" validate:"omitempty,oneof=single married"`
	FatherID          *string    `json:"fatherId"`
	FatherName        *string    `json:"fatherName"`
	MotherID          *string    `json:"motherId"`
	MotherName        *string    `json:"motherName"`
	SpouseID          *string    `json:"spouseId"`
	SpouseName        *string    `json:"spouseName"`
	BirthMonth        *string    `json:"birthMonth" validate:"omitempty,numeric,min=1,max=2"`
	BirthYear         *string    `json:"birthYear" validate:"omitempty,numeric,len=4"`
	ProfilePictureURL *string    `json:"profilePictureUrl" validate:"omitempty,url"`
	Description       *string    `json:"description" validate:"omitempty,max=2000"`
	IsDeceased        *bool      `json:"isDeceased"`
	DeathDate         *time.Time `json:"deathDate"`
}

// Normalize upper-cases the set names.
func (r *UpdatePersonRequest) Normalize() {
	for _, field := range []*string{r.Name, r.Surname, r.MaidenName, r.Family, r.FatherName, r.MotherName, r.SpouseName} {
		if field != nil {
			*field = upper(*field)
		}
	}
}

func (r *UpdatePersonRequest) toPatch() *usecase.PersonPatch {
	patch := &usecase.PersonPatch{
		Name:              r.Name,
		Surname:           r.Surname,
		MaidenName:        r.MaidenName,
		Family:            r.Family,
		Father:            relationPatch(r.FatherID, r.FatherName),
		Mother:            relationPatch(r.MotherID, r.MotherName),
		Spouse:            relationPatch(r.SpouseID, r.SpouseName),
		BirthMonth:        r.BirthMonth,
		BirthYear:         r.BirthYear,
		ProfilePictureURL: r.ProfilePictureURL,
		Description:       r.Description,
		IsDeceased:        r.IsDeceased,
		DeathDate:         r.DeathDate,
	}
	if r.Gender != nil {
		gender := entity.Gender(*r.Gender)
		patch.Gender = &gender
	}
	if r.MaritalStatus != nil {
		status := entity.MaritalStatus(*r.MaritalStatus)
		patch.MaritalStatus = &status
	}

	return patch
}

func relationPatch(id, name *string) *entity.Relation {
	if id == nil && name == nil {
		return nil
	}
	rel := entity.Linked(strings.TrimSpace(deref(id)), deref(name))

	return &rel
}

// RelationRequest links a relation slot to an existing record.
type RelationRequest struct {
	TargetID string `json:"targetId" validate:"required"`
}

// BulkApprovalRequest approves or unapproves several records at once.
type BulkApprovalRequest struct {
	IDs      []string `json:"ids" validate:"required,min=1,dive,required"`
	Approved *bool    `json:"approved" validate:"required"`
}

// BulkDeceasedRequest sets the deceased flag on several records at once.
type BulkDeceasedRequest struct {
	IDs        []string `json:"ids" validate:"required,min=1,dive,required"`
	IsDeceased *bool    `json:"isDeceased" validate:"required"`
}

// ImportRequest carries records to store as approved.
type ImportRequest struct {
	Records []PersonRequest `json:"records" validate:"required,min=1,max=500,dive"`
}

// Normalize upper-cases the names of every record.
func (r *ImportRequest) Normalize() {
	for i := range r.Records {
		r.Records[i].Normalize()
	}
}

// AcceptSuggestionRequest accepts one suggestion of the oracle.
type AcceptSuggestionRequest struct {
	CandidateID  string `json:"candidateId" validate:"required"`
	Relationship string `json:"relationship" validate:"required,relation"`
}

// PersonResponse is the JSON form of a person record.
type PersonResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Surname           string     `json:"surname"`
	MaidenName        string     `json:"maidenName"`
	Family            string     `json:"family,omitempty"`
	Gender            string     `json:"gender"`
	MaritalStatus     string     `json:"maritalStatus"`
	FatherID          string     `json:"fatherId,omitempty"`
	FatherName        string     `json:"fatherName,omitempty"`
	MotherID          string     `json:"motherId,omitempty"`
	MotherName        string     `json:"motherName,omitempty"`
	SpouseID          string     `json:"spouseId,omitempty"`
	SpouseName        string     `json:"spouseName,omitempty"`
	BirthMonth        string     `json:"birthMonth,omitempty"`
	BirthYear         string     `json:"birthYear,omitempty"`
	ProfilePictureURL string     `json:"profilePictureUrl,omitempty"`
	Description       string     `json:"description,omitempty"`
	Status            string     `json:"status"`
	DeletedAt         *time.Time `json:"deletedAt,omitempty"`
	IsDeceased        bool       `json:"isDeceased"`
	DeathDate         *time.Time `json:"deathDate,omitempty"`
}

func toPersonResponse(p *entity.Person) *PersonResponse {
	if p == nil {
		return nil
	}

	return &PersonResponse{
		ID:                p.ID,
		Name:              p.Name,
		Surname:           p.Surname,
		MaidenName:        p.MaidenName,
		Family:            p.Family,
		Gender:            string(p.Gender),
		MaritalStatus:     string(p.MaritalStatus),
		FatherID:          p.Father.LinkedID(),
		FatherName:        p.Father.Name,
		MotherID:          p.Mother.LinkedID(),
		MotherName:        p.Mother.Name,
		SpouseID:          p.Spouse.LinkedID(),
		SpouseName:        p.Spouse.Name,
		BirthMonth:        p.BirthMonth,
		BirthYear:         p.BirthYear,
		ProfilePictureURL: p.ProfilePictureURL,
		Description:       p.Description,
		Status:            string(p.Status),
		DeletedAt:         p.DeletedAt,
		IsDeceased:        p.IsDeceased,
		DeathDate:         p.DeathDate,
	}
}

func toPersonResponses(people []*entity.Person) []*PersonResponse {
	out := make([]*PersonResponse, 0, len(people))
	for _, p := range people {
		out = append(out, toPersonResponse(p))
	}

	return out
}

// DustbinEntryResponse is a deleted record with its retention countdown.
type DustbinEntryResponse struct {
	*PersonResponse
	DaysRemaining int  `json:"daysRemaining"`
	PurgeEligible bool `json:"purgeEligible"`
}

// FamilyViewResponse is the JSON form of a derived family.
type FamilyViewResponse struct {
	Person              *PersonResponse   `json:"person"`
	Father              *PersonResponse   `json:"father,omitempty"`
	Mother              *PersonResponse   `json:"mother,omitempty"`
	PaternalGrandfather *PersonResponse   `json:"paternalGrandfather,omitempty"`
	PaternalGrandmother *PersonResponse   `json:"paternalGrandmother,omitempty"`
	MaternalGrandfather *PersonResponse   `json:"maternalGrandfather,omitempty"`
	MaternalGrandmother *PersonResponse   `json:"maternalGrandmother,omitempty"`
	Spouse              *PersonResponse   `json:"spouse,omitempty"`
	FatherInLaw         *PersonResponse   `json:"fatherInLaw,omitempty"`
	MotherInLaw         *PersonResponse   `json:"motherInLaw,omitempty"`
	Children            []*PersonResponse `json:"children"`
	Siblings            []*PersonResponse `json:"siblings"`
	PaternalUncles      []*PersonResponse `json:"paternalUncles"`
	PaternalAunts       []*PersonResponse `json:"paternalAunts"`
	MaternalUncles      []*PersonResponse `json:"maternalUncles"`
	MaternalAunts       []*PersonResponse `json:"maternalAunts"`
	Unlinked            map[string]string `json:"unlinked,omitempty"`
}

func toFamilyViewResponse(view *genealogy.FamilyView) *FamilyViewResponse {
	resp := &FamilyViewResponse{
		Person:              toPersonResponse(view.Person),
		Father:              toPersonResponse(view.Parents.Father),
		Mother:              toPersonResponse(view.Parents.Mother),
		PaternalGrandfather: toPersonResponse(view.Grandparents.PaternalGrandfather),
		PaternalGrandmother: toPersonResponse(view.Grandparents.PaternalGrandmother),
		MaternalGrandfather: toPersonResponse(view.Grandparents.MaternalGrandfather),
		MaternalGrandmother: toPersonResponse(view.Grandparents.MaternalGrandmother),
		Spouse:              toPersonResponse(view.Spouse),
		FatherInLaw:         toPersonResponse(view.InLaws.FatherInLaw),
		MotherInLaw:         toPersonResponse(view.InLaws.MotherInLaw),
		Children:            toPersonResponses(view.Children),
		Siblings:            toPersonResponses(view.Siblings),
		PaternalUncles:      toPersonResponses(view.PaternalUncles),
		PaternalAunts:       toPersonResponses(view.PaternalAunts),
		MaternalUncles:      toPersonResponses(view.MaternalUncles),
		MaternalAunts:       toPersonResponses(view.MaternalAunts),
	}
	if len(view.Unlinked) > 0 {
		resp.Unlinked = make(map[string]string, len(view.Unlinked))
		for slot, name := range view.Unlinked {
			resp.Unlinked[string(slot)] = name
		}
	}

	return resp
}

// SuggestionResponse is one relation guess of the oracle.
type SuggestionResponse struct {
	CandidateID  string `json:"candidateId"`
	Relationship string `json:"relationship"`
	Rationale    string `json:"rationale,omitempty"`
}

func toSuggestionResponses(suggestions []service.Suggestion) []SuggestionResponse {
	out := make([]SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, SuggestionResponse{
			CandidateID:  s.CandidateID,
			Relationship: string(s.Relationship),
			Rationale:    s.Rationale,
		})
	}

	return out
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
