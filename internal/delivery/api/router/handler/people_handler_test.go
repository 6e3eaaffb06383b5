package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/genealogy"
	mockSvc "familytree/internal/mocks/service"
	mockUsecase "familytree/internal/mocks/usecase"
	"familytree/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type peopleHandlerFixtures struct {
	handler  *PeopleHandler
	personUC *mockUsecase.MockPersonUsecase
	familyUC *mockUsecase.MockFamilyUsecase
	qrCode   *mockSvc.MockQRCodeService
}

func createPeopleHandler(t *testing.T) peopleHandlerFixtures {
	t.Helper()

	personUC := mockUsecase.NewMockPersonUsecase(t)
	familyUC := mockUsecase.NewMockFamilyUsecase(t)
	qrCode := mockSvc.NewMockQRCodeService(t)

	return peopleHandlerFixtures{
		handler: NewPeopleHandler(PeopleHandlerParams{
			PersonUC: personUC,
			FamilyUC: familyUC,
			QRCode:   qrCode,
			Logger:   slog.Default(),
		}),
		personUC: personUC,
		familyUC: familyUC,
		qrCode:   qrCode,
	}
}

func TestPeopleHandler_Register(t *testing.T) {
	fx := createPeopleHandler(t)

	body := `{"name":" asha ","surname":"mehta","maidenName":"mehta","gender":"female","fatherName":"kiran"}`
	c, rec := newContext(t, request{method: http.MethodPost, path: "/people/register", body: body})

	fx.personUC.EXPECT().
		CreatePerson(mock.Anything, mock.MatchedBy(func(in *usecase.CreatePersonInput) bool {
			return in.Name == "ASHA" &&
				in.Surname == "MEHTA" &&
				in.Gender == entity.GenderFemale &&
				in.Father == entity.Unlinked("KIRAN") &&
				in.Spouse.IsNone()
		}), entity.StatusPending).
		Return(&entity.Person{ID: "MEH-240615-001", Name: "ASHA", Surname: "MEHTA", Status: entity.StatusPending}, nil).
		Once()

	err := fx.handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"MEH-240615-001"`)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestPeopleHandler_Register_ValidationFailed(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "missing surname",
			body:  `{"name":"ASHA","maidenName":"MEHTA","gender":"female"}`,
			field: "surname",
		},
		{
			name:  "unknown gender",
			body:  `{"name":"ASHA","surname":"MEHTA","maidenName":"MEHTA","gender":"other"}`,
			field: "gender",
		},
		{
			name:  "digits in name",
			body:  `{"name":"ASHA2","surname":"MEHTA","maidenName":"MEHTA","gender":"female"}`,
			field: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createPeopleHandler(t)
			c, rec := newContext(t, request{method: http.MethodPost, path: "/people/register", body: tt.body})

			err := fx.handler.Register(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), domainerrors.ErrValidationFailed.ErrorCode())
			assert.Contains(t, rec.Body.String(), `"`+tt.field+`"`)
		})
	}
}

func TestPeopleHandler_Register_MalformedBody(t *testing.T) {
	fx := createPeopleHandler(t)
	c, rec := newContext(t, request{method: http.MethodPost, path: "/people/register", body: `{"name":`})

	err := fx.handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestPeopleHandler_Directory(t *testing.T) {
	fx := createPeopleHandler(t)
	c, rec := newContext(t, request{method: http.MethodGet, path: "/people"})

	fx.familyUC.EXPECT().Directory(mock.Anything).Return([]*entity.Person{
		approvedPerson("PAT-240101-001", "RAMESH", "PATEL"),
		approvedPerson("PAT-240101-003", "ARJUN", "PATEL"),
	}, nil).Once()

	err := fx.handler.Directory(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "PAT-240101-001")
	assert.Contains(t, rec.Body.String(), "PAT-240101-003")
}

func TestPeopleHandler_Family(t *testing.T) {
	fx := createPeopleHandler(t)
	c, rec := newContext(t, request{
		method: http.MethodGet,
		path:   "/people/PAT-240101-003/family",
		params: map[string]string{"id": "PAT-240101-003"},
	})

	father := approvedPerson("PAT-240101-001", "RAMESH", "PATEL")
	fx.familyUC.EXPECT().PublicFamilyView(mock.Anything, "PAT-240101-003").Return(&genealogy.FamilyView{
		Person:   approvedPerson("PAT-240101-003", "ARJUN", "PATEL"),
		Parents:  genealogy.Parents{Father: father},
		Unlinked: map[entity.RelationSlot]string{entity.SlotSpouse: "NEHA"},
	}, nil).Once()

	err := fx.handler.Family(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"father":{"id":"PAT-240101-001"`)
	assert.Contains(t, rec.Body.String(), `"unlinked":{"spouse":"NEHA"}`)
	assert.NotContains(t, rec.Body.String(), `"mother"`)
}

func TestPeopleHandler_Family_NotFound(t *testing.T) {
	fx := createPeopleHandler(t)
	c, rec := newContext(t, request{
		method: http.MethodGet,
		path:   "/people/PAT-240101-004/family",
		params: map[string]string{"id": "PAT-240101-004"},
	})

	fx.familyUC.EXPECT().PublicFamilyView(mock.Anything, "PAT-240101-004").
		Return(nil, domainerrors.ErrPersonNotFound.WithDetails("PAT-240101-004")).Once()

	err := fx.handler.Family(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PERSON_NOT_FOUND")
}

func TestPeopleHandler_QRCode(t *testing.T) {
	fx := createPeopleHandler(t)
	c, rec := newContext(t, request{
		method: http.MethodGet,
		path:   "/people/PAT-240101-001/qrcode",
		params: map[string]string{"id": "PAT-240101-001"},
	})

	fx.familyUC.EXPECT().GetPerson(mock.Anything, "PAT-240101-001", (*entity.ActorScope)(nil)).
		Return(approvedPerson("PAT-240101-001", "RAMESH", "PATEL"), nil).Once()
	fx.qrCode.EXPECT().GenerateProfileQR("PAT-240101-001").Return([]byte("\x89PNG"), nil).Once()

	err := fx.handler.QRCode(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestPeopleHandler_QRCode_PendingIsNotFound(t *testing.T) {
	fx := createPeopleHandler(t)
	c, rec := newContext(t, request{
		method: http.MethodGet,
		path:   "/people/PAT-240101-004/qrcode",
		params: map[string]string{"id": "PAT-240101-004"},
	})

	pending := approvedPerson("PAT-240101-004", "BINA", "PATEL")
	pending.Status = entity.StatusPending
	fx.familyUC.EXPECT().GetPerson(mock.Anything, "PAT-240101-004", (*entity.ActorScope)(nil)).
		Return(pending, nil).Once()

	err := fx.handler.QRCode(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
