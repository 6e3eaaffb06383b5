// Package firestoredb stores the person collection in Cloud Firestore.
// Each person is one document keyed by its ID.
package firestoredb

import (
	"context"

	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/repository"
	"familytree/internal/errors"
	"familytree/internal/infra/persistence/document"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type transactionManager struct {
	client     *firestore.Client
	collection string
}

// NewTransactionManager runs domain transactions as Firestore transactions.
func NewTransactionManager(client *firestore.Client, collection string) repository.TransactionManager {
	return &transactionManager{client: client, collection: collection}
}

// Execute runs fn in a Firestore transaction. Firestore retries contended
// transactions by calling fn again, so fn must not have side effects outside
// the repository it is given.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return fn(&repositoryFactory{tx: tx, collection: tm.client.Collection(tm.collection)})
	})
	if err == nil {
		return nil
	}

	return translateError(err, "transaction failed")
}

type repositoryFactory struct {
	tx         *firestore.Transaction
	collection *firestore.CollectionRef
}

func (f *repositoryFactory) NewPersonRepository() repository.PersonRepository {
	return &personRepository{tx: f.tx, collection: f.collection}
}

type personRepository struct {
	tx         *firestore.Transaction
	collection *firestore.CollectionRef
}

func (r *personRepository) FindByID(_ context.Context, id string) (*entity.Person, error) {
	snap, err := r.tx.Get(r.collection.Doc(id))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrPersonNotFound
		}

		return nil, translateError(err, "failed to get person "+id)
	}

	return decode(snap), nil
}

func (r *personRepository) FindAll(_ context.Context) ([]*entity.Person, error) {
	return r.query(r.collection.OrderBy(firestore.DocumentID, firestore.Asc), "failed to list people")
}

func (r *personRepository) FindByField(_ context.Context, field string, value any) ([]*entity.Person, error) {
	if field == repository.FieldID {
		id, _ := value.(string)
		q := r.collection.Where(firestore.DocumentID, "==", r.collection.Doc(id))

		return r.query(q, "failed to query people by id")
	}

	q := r.collection.Where(field, "==", document.Normalize(value)).OrderBy(firestore.DocumentID, firestore.Asc)

	return r.query(q, "failed to query people by "+field)
}

func (r *personRepository) query(q firestore.Query, details string) ([]*entity.Person, error) {
	snaps, err := r.tx.Documents(q).GetAll()
	if err != nil {
		return nil, translateError(err, details)
	}

	people := make([]*entity.Person, 0, len(snaps))
	for _, snap := range snaps {
		people = append(people, decode(snap))
	}

	return people, nil
}

func (r *personRepository) CountIDRange(_ context.Context, lo, hi string) (int, error) {
	q := r.collection.
		Where(firestore.DocumentID, ">=", r.collection.Doc(lo)).
		Where(firestore.DocumentID, "<", r.collection.Doc(hi)).
		Select()

	snaps, err := r.tx.Documents(q).GetAll()
	if err != nil {
		return 0, translateError(err, "failed to count person ids")
	}

	return len(snaps), nil
}

func (r *personRepository) Create(_ context.Context, person *entity.Person) error {
	if err := r.tx.Create(r.collection.Doc(person.ID), map[string]any(document.Encode(person))); err != nil {
		return translateError(err, "failed to create person")
	}

	return nil
}

func (r *personRepository) Update(_ context.Context, id string, patch repository.Patch) error {
	if len(patch) == 0 {
		return nil
	}

	updates := make([]firestore.Update, 0, len(patch))
	for _, field := range patch.Fields() {
		value := patch[field]
		if value == repository.DeleteField {
			updates = append(updates, firestore.Update{Path: field, Value: firestore.Delete})

			continue
		}
		updates = append(updates, firestore.Update{Path: field, Value: document.Normalize(value)})
	}

	if err := r.tx.Update(r.collection.Doc(id), updates); err != nil {
		return translateError(err, "failed to update person")
	}

	return nil
}

func (r *personRepository) Delete(_ context.Context, id string) error {
	if err := r.tx.Delete(r.collection.Doc(id)); err != nil {
		return translateError(err, "failed to delete person")
	}

	return nil
}

func decode(snap *firestore.DocumentSnapshot) *entity.Person {
	return document.Decode(snap.Ref.ID, document.Document(snap.Data()))
}

// translateError maps gRPC status codes onto repository and domain errors.
func translateError(err error, details string) error {
	switch status.Code(err) {
	case codes.NotFound:
		return errors.Wrap(repository.ErrPersonNotFound, details)
	case codes.AlreadyExists:
		return errors.Wrap(repository.ErrPersonExists, details)
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted:
		return domainerrors.NewStoreError(err, details)
	case codes.Canceled:
		return errors.Wrap(err, details)
	}

	// Errors returned by fn pass through RunTransaction untouched.
	return err
}
