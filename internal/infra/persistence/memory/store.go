// Package memory is an in-process person store with the transaction rules of
// the document backend: reads see committed state only, no read may follow a
// write, and buffered writes are checked and applied atomically at commit.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"familytree/internal/domain/entity"
	"familytree/internal/domain/repository"
	"familytree/internal/errors"
	"familytree/internal/infra/persistence/document"
)

var (
	// ErrReadAfterWrite is returned by a read issued after a write in the same transaction.
	ErrReadAfterWrite = errors.New("read after write in transaction")

	// ErrTransactionClosed is returned when a repository outlives its transaction.
	ErrTransactionClosed = errors.New("transaction already closed")
)

// Store holds the committed documents. Transactions are serialized.
type Store struct {
	mu   sync.Mutex
	docs map[string]document.Document
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{docs: make(map[string]document.Document)}
}

// NewTransactionManager exposes the store through the domain transaction contract.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return store
}

// Len returns the number of committed documents.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.docs)
}

// Execute runs fn in a transaction and commits its writes when fn succeeds.
func (s *Store) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "transaction not started")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &transaction{store: s}
	defer func() { tx.closed = true }()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.commit()
}

type writeKind int

const (
	writeCreate writeKind = iota
	writeUpdate
	writeDelete
)

type write struct {
	kind  writeKind
	id    string
	doc   document.Document
	patch repository.Patch
}

type transaction struct {
	store  *Store
	writes []write
	closed bool
}

func (tx *transaction) NewPersonRepository() repository.PersonRepository {
	return &personRepository{tx: tx}
}

func (tx *transaction) beforeRead(ctx context.Context) error {
	if tx.closed {
		return ErrTransactionClosed
	}
	if len(tx.writes) > 0 {
		return ErrReadAfterWrite
	}

	return errors.WithStack(ctx.Err())
}

func (tx *transaction) buffer(ctx context.Context, w write) error {
	if tx.closed {
		return ErrTransactionClosed
	}
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	tx.writes = append(tx.writes, w)

	return nil
}

func (tx *transaction) commit() error {
	if len(tx.writes) == 0 {
		return nil
	}

	staged := maps.Clone(tx.store.docs)
	for _, w := range tx.writes {
		switch w.kind {
		case writeCreate:
			if _, ok := staged[w.id]; ok {
				return errors.Wrapf(repository.ErrPersonExists, "create %s", w.id)
			}
			staged[w.id] = w.doc
		case writeUpdate:
			doc, ok := staged[w.id]
			if !ok {
				return errors.Wrapf(repository.ErrPersonNotFound, "update %s", w.id)
			}
			staged[w.id] = document.Apply(doc, w.patch)
		case writeDelete:
			delete(staged, w.id)
		}
	}
	tx.store.docs = staged

	return nil
}

type personRepository struct {
	tx *transaction
}

func (r *personRepository) FindByID(ctx context.Context, id string) (*entity.Person, error) {
	if err := r.tx.beforeRead(ctx); err != nil {
		return nil, err
	}
	doc, ok := r.tx.store.docs[id]
	if !ok {
		return nil, repository.ErrPersonNotFound
	}

	return document.Decode(id, doc), nil
}

func (r *personRepository) FindAll(ctx context.Context) ([]*entity.Person, error) {
	return r.find(ctx, func(document.Document) bool { return true })
}

func (r *personRepository) FindByField(ctx context.Context, field string, value any) ([]*entity.Person, error) {
	if field == repository.FieldID {
		p, err := r.FindByID(ctx, stringValue(value))
		if errors.Is(err, repository.ErrPersonNotFound) {
			return []*entity.Person{}, nil
		}
		if err != nil {
			return nil, err
		}

		return []*entity.Person{p}, nil
	}

	return r.find(ctx, func(doc document.Document) bool { return doc.Matches(field, value) })
}

func (r *personRepository) find(ctx context.Context, keep func(document.Document) bool) ([]*entity.Person, error) {
	if err := r.tx.beforeRead(ctx); err != nil {
		return nil, err
	}

	ids := slices.Sorted(maps.Keys(r.tx.store.docs))
	people := make([]*entity.Person, 0, len(ids))
	for _, id := range ids {
		doc := r.tx.store.docs[id]
		if keep(doc) {
			people = append(people, document.Decode(id, doc))
		}
	}

	return people, nil
}

func (r *personRepository) CountIDRange(ctx context.Context, lo, hi string) (int, error) {
	if err := r.tx.beforeRead(ctx); err != nil {
		return 0, err
	}

	count := 0
	for id := range r.tx.store.docs {
		if id >= lo && id < hi {
			count++
		}
	}

	return count, nil
}

func (r *personRepository) Create(ctx context.Context, person *entity.Person) error {
	if person.ID == "" {
		return errors.New("person id is required")
	}

	return r.tx.buffer(ctx, write{kind: writeCreate, id: person.ID, doc: document.Encode(person)})
}

func (r *personRepository) Update(ctx context.Context, id string, patch repository.Patch) error {
	if len(patch) == 0 {
		return nil
	}

	return r.tx.buffer(ctx, write{kind: writeUpdate, id: id, patch: maps.Clone(patch)})
}

func (r *personRepository) Delete(ctx context.Context, id string) error {
	return r.tx.buffer(ctx, write{kind: writeDelete, id: id})
}

func stringValue(value any) string {
	s, _ := value.(string)

	return s
}
