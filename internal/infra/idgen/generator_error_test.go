package idgen

import (
	"context"
	"testing"
	"time"

	"familytree/internal/domain/entity"
	"familytree/internal/domain/repository"
	"familytree/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCounter struct {
	*idStore
	err error
}

func (f *failingCounter) CountIDRange(context.Context, string, string) (int, error) {
	return 0, f.err
}

type failingFinder struct {
	*idStore
	err error
}

func (f *failingFinder) FindByID(context.Context, string) (*entity.Person, error) {
	return nil, f.err
}

func TestNext_UnreservedPartition(t *testing.T) {
	gen := New(fixedClock(), time.UTC)

	alloc := gen.Reserve("PATEL")
	defer alloc.Release()

	_, err := alloc.Next(context.Background(), newIDStore(), "SHAH")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHA-240615")
}

func TestNext_AfterRelease(t *testing.T) {
	gen := New(fixedClock(), time.UTC)

	alloc := gen.Reserve("PATEL")
	alloc.Release()

	_, err := alloc.Next(context.Background(), newIDStore(), "PATEL")
	require.Error(t, err)
}

func TestNext_CountFailure(t *testing.T) {
	gen := New(fixedClock(), time.UTC)
	storeErr := errors.New("deadline exceeded")
	repo := &failingCounter{idStore: newIDStore(), err: storeErr}

	alloc := gen.Reserve("PATEL")
	defer alloc.Release()

	_, err := alloc.Next(context.Background(), repo, "PATEL")
	require.ErrorIs(t, err, storeErr)
}

func TestNext_ProbeFailure(t *testing.T) {
	gen := New(fixedClock(), time.UTC)
	storeErr := errors.New("unavailable")
	repo := &failingFinder{idStore: newIDStore(), err: storeErr}

	alloc := gen.Reserve("PATEL")
	defer alloc.Release()

	_, err := alloc.Next(context.Background(), repo, "PATEL")
	require.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, repository.ErrPersonNotFound)
}
