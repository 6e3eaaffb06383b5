package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	"familytree/internal/delivery/api/validator"
	deliverycontext "familytree/internal/delivery/context"
	"familytree/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

type request struct {
	method string
	path   string
	body   string
	params map[string]string
	query  string
	scope  *entity.ActorScope
}

// newContext builds an echo context for a handler called outside the router.
func newContext(t *testing.T, r request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	target := r.path
	if r.query != "" {
		target += "?" + r.query
	}
	req := httptest.NewRequest(r.method, target, strings.NewReader(r.body))
	if r.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(r.params))
	values := make([]string, 0, len(r.params))
	for name, value := range r.params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	if r.scope != nil {
		deliverycontext.SetActorScope(c, r.scope)
	}

	return c, rec
}

func superAdmin() *entity.ActorScope {
	scope := entity.Unrestricted()
	scope.UID = "admin-1"

	return &scope
}

func shahEditor() *entity.ActorScope {
	return &entity.ActorScope{
		UID:      "editor-1",
		Role:     entity.RoleEditor,
		Access:   entity.AccessSpecific,
		Surnames: []string{"SHAH"},
	}
}

func approvedPerson(id, name, surname string) *entity.Person {
	return &entity.Person{
		ID:         id,
		Name:       name,
		Surname:    surname,
		MaidenName: surname,
		Gender:     entity.GenderMale,
		Status:     entity.StatusApproved,
	}
}
