package service

import (
	"context"

	"familytree/internal/domain/entity"
)

// SuggestionProfile is the part of a person shown to the oracle.
type SuggestionProfile struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	MaidenName    string `json:"maidenName"`
	Family        string `json:"family"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"maritalStatus"`
	FatherName    string `json:"fatherName,omitempty"`
	MotherName    string `json:"motherName,omitempty"`
	SpouseName    string `json:"spouseName,omitempty"`
	SpouseID      string `json:"spouseId,omitempty"`
	BirthYear     string `json:"birthYear,omitempty"`
	Description   string `json:"description,omitempty"`
}

// NewSuggestionProfile projects a person for the oracle. Relation names are
// taken from the cached or claimed names.
func NewSuggestionProfile(p *entity.Person) SuggestionProfile {
	return SuggestionProfile{
		ID:            p.ID,
		Name:          p.Name,
		Surname:       p.Surname,
		MaidenName:    p.MaidenName,
		Family:        p.Family,
		Gender:        string(p.Gender),
		MaritalStatus: string(p.MaritalStatus),
		FatherName:    p.Father.Name,
		MotherName:    p.Mother.Name,
		SpouseName:    p.Spouse.Name,
		SpouseID:      p.Spouse.LinkedID(),
		BirthYear:     p.BirthYear,
		Description:   p.Description,
	}
}

// SuggestionRequest asks the oracle for likely relatives of Target among Pool.
type SuggestionRequest struct {
	Target SuggestionProfile   `json:"target"`
	Pool   []SuggestionProfile `json:"pool"`
}

// Suggestion is an unverified relation guess returned by the oracle.
type Suggestion struct {
	CandidateID  string              `json:"candidateId"`
	Relationship entity.RelationSlot `json:"relationship"`
	Rationale    string              `json:"rationale"`
}

// SuggestionOracle proposes relations for a person. Its output is untrusted.
type SuggestionOracle interface {
	Suggest(ctx context.Context, req *SuggestionRequest) ([]Suggestion, error)
}
