package impl

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"sync"
	"testing"
	"time"

	"familytree/config"
	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/repository"
	"familytree/internal/domain/service"
	"familytree/internal/errors"
	"familytree/internal/infra/idgen"
	"familytree/internal/infra/persistence/memory"
	mockSvc "familytree/internal/mocks/service"
	"familytree/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// personServiceFixtures runs the graph store against the in-memory store.
type personServiceFixtures struct {
	service   usecase.PersonUsecase
	store     *memory.Store
	publisher *mockSvc.MockEventPublisher
	notifier  *mockSvc.MockNotificationService
	metrics   *mockSvc.MockGraphMetrics
}

func createTestPersonService(t *testing.T) personServiceFixtures {
	store := memory.NewStore()
	publisher := mockSvc.NewMockEventPublisher(t)
	notifier := mockSvc.NewMockNotificationService(t)
	metrics := mockSvc.NewMockGraphMetrics(t)
	metrics.EXPECT().ObserveMutation(mock.Anything, mock.Anything).Return().Maybe()

	cfg := &config.Config{
		IDs:          &config.IDsConfig{MaxAttempts: 3},
		Notification: &config.NotificationConfig{Enabled: true, AdminTopic: "admins"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewPersonService(PersonServiceParams{
		TxManager: memory.NewTransactionManager(store),
		IDs:       idgen.New(nil, time.UTC),
		Publisher: publisher,
		Notifier:  notifier,
		Metrics:   metrics,
		Config:    cfg,
		Logger:    logger,
	})

	return personServiceFixtures{
		service:   svc,
		store:     store,
		publisher: publisher,
		notifier:  notifier,
		metrics:   metrics,
	}
}

// quiet accepts any event, the default for tests not asserting on events.
func (fx personServiceFixtures) quiet() personServiceFixtures {
	fx.publisher.EXPECT().PublishPersonEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	return fx
}

func (fx personServiceFixtures) create(t *testing.T, input *usecase.CreatePersonInput) *entity.Person {
	t.Helper()
	person, err := fx.service.CreatePerson(context.Background(), input, entity.StatusApproved)
	require.NoError(t, err)

	return person
}

func (fx personServiceFixtures) get(t *testing.T, id string) *entity.Person {
	t.Helper()
	people := fx.all(t)
	person, ok := people[id]
	require.True(t, ok, "person %s not stored", id)

	return person
}

func (fx personServiceFixtures) all(t *testing.T) map[string]*entity.Person {
	t.Helper()
	var people []*entity.Person
	err := fx.store.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		var err error
		people, err = repoFactory.NewPersonRepository().FindAll(context.Background())

		return err
	})
	require.NoError(t, err)

	byID := make(map[string]*entity.Person, len(people))
	for _, p := range people {
		byID[p.ID] = p
	}

	return byID
}

func man(name string) *usecase.CreatePersonInput {
	return &usecase.CreatePersonInput{Name: name, Surname: "PATEL", MaidenName: "PATEL", Gender: entity.GenderMale}
}

func woman(name string) *usecase.CreatePersonInput {
	return &usecase.CreatePersonInput{Name: name, Surname: "PATEL", MaidenName: "SHAH", Gender: entity.GenderFemale}
}

func linked(id string) *entity.Relation {
	rel := entity.Linked(id, "")

	return &rel
}

// assertSpousalSymmetry checks that every spouse link points back and both
// sides are married, and that single records carry no spouse link.
func assertSpousalSymmetry(t *testing.T, people map[string]*entity.Person) {
	t.Helper()
	for _, p := range people {
		if p.MaritalStatus == entity.MaritalSingle {
			assert.False(t, p.Spouse.IsLinked(), "%s is single but linked", p.ID)
		}
		spouseID := p.Spouse.LinkedID()
		if spouseID == "" {
			continue
		}
		spouse, ok := people[spouseID]
		if !assert.True(t, ok, "%s links missing spouse %s", p.ID, spouseID) {
			continue
		}
		assert.Equal(t, p.ID, spouse.Spouse.LinkedID(), "%s -> %s is not symmetric", p.ID, spouseID)
		assert.Equal(t, entity.MaritalMarried, p.MaritalStatus)
		assert.Equal(t, entity.MaritalMarried, spouse.MaritalStatus)
	}
}

func TestPersonService_CreatePerson_Success(t *testing.T) {
	fx := createTestPersonService(t).quiet()

	person, err := fx.service.CreatePerson(context.Background(), &usecase.CreatePersonInput{
		Name:       "ARJUN",
		Surname:    "PATEL",
		MaidenName: "PATEL",
		Gender:     entity.GenderMale,
		Father:     entity.Unlinked("RAMESHPATEL"),
		BirthYear:  "1990",
	}, entity.StatusApproved)

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^PAT-\d{6}-001$`), person.ID)

	stored := fx.get(t, person.ID)
	assert.Equal(t, entity.StatusApproved, stored.Status)
	assert.Equal(t, entity.MaritalSingle, stored.MaritalStatus)
	assert.Equal(t, entity.Unlinked("RAMESHPATEL"), stored.Father)
	assert.Equal(t, entity.DefaultProfilePictureURL, stored.ProfilePictureURL)
	assert.Equal(t, "1990", stored.BirthYear)
}

func TestPersonService_CreatePerson_LinksSpouse(t *testing.T) {
	fx := createTestPersonService(t).quiet()

	a := fx.create(t, &usecase.CreatePersonInput{
		Name: "ASHA", Surname: "PATEL", MaidenName: "SHAH",
		Gender: entity.GenderFemale, MaritalStatus: entity.MaritalSingle,
	})
	b, err := fx.service.CreatePerson(context.Background(), &usecase.CreatePersonInput{
		Name: "BHARAT", Surname: "PATEL", MaidenName: "PATEL",
		Gender: entity.GenderMale, Spouse: entity.Linked(a.ID, ""),
	}, entity.StatusApproved)
	require.NoError(t, err)

	people := fx.all(t)
	assert.Equal(t, entity.MaritalMarried, people[b.ID].MaritalStatus)
	assert.Equal(t, entity.Linked(a.ID, "ASHAPATEL"), people[b.ID].Spouse)
	assert.Equal(t, b.ID, people[a.ID].Spouse.LinkedID())
	assert.Equal(t, "BHARATPATEL", people[a.ID].Spouse.Name)
	assert.Equal(t, entity.MaritalMarried, people[a.ID].MaritalStatus)
	assertSpousalSymmetry(t, people)
}

func TestPersonService_CreatePerson_CachesParentNames(t *testing.T) {
	fx := createTestPersonService(t).quiet()

	father := fx.create(t, man("RAMESH"))
	mother := fx.create(t, woman("SITA"))

	child := fx.create(t, &usecase.CreatePersonInput{
		Name: "ARJUN", Surname: "PATEL", MaidenName: "PATEL", Gender: entity.GenderMale,
		Father: entity.Linked(father.ID, ""), Mother: entity.Linked(mother.ID, ""),
	})

	stored := fx.get(t, child.ID)
	assert.Equal(t, entity.Linked(father.ID, "RAMESHPATEL"), stored.Father)
	assert.Equal(t, entity.Linked(mother.ID, "SITAPATEL"), stored.Mother)
}

func TestPersonService_CreatePerson_PendingNotifiesAdmins(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	fx.publisher.EXPECT().
		PublishPersonEvent(ctx, mock.MatchedBy(func(e *service.PersonEvent) bool {
			return e.Type == service.PersonCreated && e.Status == entity.StatusPending && len(e.PersonIDs) == 1
		})).
		Return(nil).
		Once()
	fx.notifier.EXPECT().
		SendTopicNotification(ctx, "admins", "New registration", "ARJUN PATEL is awaiting approval",
			mock.MatchedBy(func(data map[string]string) bool { return data["status"] == "pending" })).
		Return(nil).
		Once()

	person, err := fx.service.CreatePerson(ctx, man("ARJUN"), entity.StatusPending)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, fx.get(t, person.ID).Status)
}

func TestPersonService_CreatePerson_ClearsSpousePriorPartner(t *testing.T) {
	fx := createTestPersonService(t).quiet()

	wife := fx.create(t, woman("ASHA"))
	first := fx.create(t, &usecase.CreatePersonInput{
		Name: "BHARAT", Surname: "PATEL", Gender: entity.GenderMale, Spouse: entity.Linked(wife.ID, ""),
	})
	second := fx.create(t, &usecase.CreatePersonInput{
		Name: "CHETAN", Surname: "PATEL", Gender: entity.GenderMale, Spouse: entity.Linked(wife.ID, ""),
	})

	people := fx.all(t)
	assert.Equal(t, second.ID, people[wife.ID].Spouse.LinkedID())
	assert.Equal(t, entity.MaritalSingle, people[first.ID].MaritalStatus)
	assert.True(t, people[first.ID].Spouse.IsNone())
	assertSpousalSymmetry(t, people)
}

var errContended = errors.New("transaction contended")

// contendedTxManager rolls back the first transaction after fn ran, lets a
// concurrent writer commit, and runs fn again, the way a document store
// retries a contended transaction.
type contendedTxManager struct {
	store    *memory.Store
	between  func()
	attempts int
}

func (m *contendedTxManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	m.attempts++
	if m.attempts > 1 {
		return m.store.Execute(ctx, fn)
	}

	err := m.store.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := fn(repoFactory); err != nil {
			return err
		}

		return errContended
	})
	if !errors.Is(err, errContended) {
		return err
	}
	m.between()
	m.attempts++

	return m.store.Execute(ctx, fn)
}

func TestPersonService_CreatePerson_RetriedTransactionReplans(t *testing.T) {
	fx := createTestPersonService(t).quiet()
	ctx := context.Background()

	p := fx.create(t, man("PRAKASH"))
	s := fx.create(t, &usecase.CreatePersonInput{
		Name: "SITA", Surname: "PATEL", Gender: entity.GenderFemale, Spouse: entity.Linked(p.ID, ""),
	})
	q := fx.create(t, woman("QUEENIE"))

	txManager := &contendedTxManager{
		store: fx.store,
		between: func() {
			// P remarries Q, which leaves S single before the retry reads.
			require.NoError(t, fx.service.UpdatePerson(ctx, p.ID, &usecase.PersonPatch{Spouse: linked(q.ID)}))
		},
	}
	contended := NewPersonService(PersonServiceParams{
		TxManager: txManager,
		IDs:       idgen.New(nil, time.UTC),
		Publisher: fx.publisher,
		Notifier:  fx.notifier,
		Metrics:   fx.metrics,
		Config:    &config.Config{IDs: &config.IDsConfig{MaxAttempts: 3}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	n, err := contended.CreatePerson(ctx, &usecase.CreatePersonInput{
		Name: "NAVIN", Surname: "PATEL", Gender: entity.GenderMale, Spouse: entity.Linked(s.ID, ""),
	}, entity.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, 2, txManager.attempts)

	people := fx.all(t)
	require.Len(t, people, 4)
	assert.Equal(t, q.ID, people[p.ID].Spouse.LinkedID())
	assert.Equal(t, entity.MaritalMarried, people[p.ID].MaritalStatus)
	assert.Equal(t, p.ID, people[q.ID].Spouse.LinkedID())
	assert.Equal(t, n.ID, people[s.ID].Spouse.LinkedID())
	assertSpousalSymmetry(t, people)
}

func TestPersonService_UpdatePerson_SpouseReassignment(t *testing.T) {
	fx := createTestPersonService(t).quiet()
	ctx := context.Background()

	a := fx.create(t, man("ARJUN"))
	b := fx.create(t, &usecase.CreatePersonInput{
		Name: "BINA", Surname: "PATEL", Gender: entity.GenderFemale, Spouse: entity.Linked(a.ID, ""),
	})
	c := fx.create(t, woman("CHARU"))

	err := fx.service.UpdatePerson(ctx, a.ID, &usecase.PersonPatch{Spouse: linked(c.ID)})
	require.NoError(t, err)

	people := fx.all(t)
	assert.Equal(t, entity.MaritalSingle, people[b.ID].MaritalStatus)
	assert.True(t, people[b.ID].Spouse.IsNone())
	assert.Equal(t, c.ID, people[a.ID].Spouse.LinkedID())
	assert.Equal(t, a.ID, people[c.ID].Spouse.LinkedID())
	assert.Equal(t, entity.MaritalMarried, people[c.ID].MaritalStatus)
	assertSpousalSymmetry(t, people)
}

func TestPersonService_UpdatePerson_ClearsNewSpousePriorPartner(t *testing.T) {
	fx := createTestPersonService(t).quiet()

	a := fx.create(t, man("ARJUN"))
	c := fx.create(t, woman("CHARU"))
	d := fx.create(t, &usecase.CreatePersonInput{
		Name: "DEV", Surname: "PATEL", Gender: entity.GenderMale, Spouse: entity.Linked(c.ID, ""),
	})

	err := fx.service.UpdatePerson(context.Background(), a.ID, &usecase.PersonPatch{Spouse: linked(c.ID)})
	require.NoError(t, err)

	people := fx.all(t)
	assert.Equal(t, entity.MaritalSingle, people[d.ID].MaritalStatus)
	assert.False(t, people[d.ID].Spouse.IsLinked())
	assert.Equal(t, a.ID, people[c.ID].Spouse.LinkedID())
	assertSpousalSymmetry(t, people)
}

func TestPersonService_UpdatePerson_SingleClearsBothSides(t *testing.T) {
	fx := createTestPersonService(t).quiet()

	a := fx.create(t, man("ARJUN"))
	b := fx.create(t, &usecase.CreatePersonInput{
		Name: "BINA", Surname: "PATEL", Gender: entity.GenderFemale, Spouse: entity.Linked(a.ID, ""),
	})

	single := entity.MaritalSingle
	err := fx.service.UpdatePerson(context.Background(), b.ID, &usecase.PersonPatch{MaritalStatus: &single})
	require.NoError(t, err)

	people := fx.all(t)
	assert.True(t, people[b.ID].Spouse.IsNone())
	assert.Equal(t, entity.MaritalSingle, people[b.ID].MaritalStatus)
	assert.True(t, people[a.ID].Spouse.IsNone())
	assert.Equal(t, entity.MaritalSingle, people[a.ID].MaritalStatus)
}

func TestPersonService_UpdatePerson_RenameRefreshesSpouseName(t *testing.T) {
	fx := createTestPersonService(t).quiet()

	a := fx.create(t, man("ARJUN"))
	b := fx.create(t, &usecase.CreatePersonInput{
		Name: "BINA", Surname: "PATEL", Gender: entity.GenderFemale, Spouse: entity.Linked(a.ID, ""),
	})

	name := "ARVIND"
	description := "moved to Pune"
	err := fx.service.UpdatePerson(context.Background(), a.ID, &usecase.PersonPatch{Name: &name, Description: &description})
	require.NoError(t, err)

	people := fx.all(t)
	assert.Equal(t, "ARVIND", people[a.ID].Name)
	assert.Equal(t, "moved to Pune", people[a.ID].Description)
	assert.Equal(t, entity.Linked(a.ID, "ARVINDPATEL"), people[b.ID].Spouse)
	assertSpousalSymmetry(t, people)
}

func TestPersonService_UpdatePerson_RemovesOptionalFields(t *testing.T) {
	fx := createTestPersonService(t).quiet()

	deathDate := time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)
	p := fx.create(t, &usecase.CreatePersonInput{
		Name: "ARJUN", Surname: "PATEL", Gender: entity.GenderMale,
		BirthMonth: "March", BirthYear: "1950", IsDeceased: true, DeathDate: &deathDate,
	})
	require.NotNil(t, fx.get(t, p.ID).DeathDate)

	empty := ""
	alive := false
	err := fx.service.UpdatePerson(context.Background(), p.ID, &usecase.PersonPatch{BirthMonth: &empty, IsDeceased: &alive})
	require.NoError(t, err)

	stored := fx.get(t, p.ID)
	assert.Empty(t, stored.BirthMonth)
	assert.Equal(t, "1950", stored.BirthYear)
	assert.False(t, stored.IsDeceased)
	assert.Nil(t, stored.DeathDate)
}

func TestPersonService_LinkAndClearRelation(t *testing.T) {
	fx := createTestPersonService(t).quiet()
	ctx := context.Background()

	father := fx.create(t, man("RAMESH"))
	child := fx.create(t, man("ARJUN"))

	require.NoError(t, fx.service.LinkRelation(ctx, child.ID, entity.SlotFather, father.ID))
	assert.Equal(t, entity.Linked(father.ID, "RAMESHPATEL"), fx.get(t, child.ID).Father)

	require.NoError(t, fx.service.ClearRelation(ctx, child.ID, entity.SlotFather))
	assert.True(t, fx.get(t, child.ID).Father.IsNone())
}

func TestPersonService_SoftDeleteThenPurgeCascade(t *testing.T) {
	fx := createTestPersonService(t).quiet()
	ctx := context.Background()

	a := fx.create(t, man("ARJUN"))
	wife := fx.create(t, &usecase.CreatePersonInput{
		Name: "BINA", Surname: "PATEL", Gender: entity.GenderFemale, Spouse: entity.Linked(a.ID, ""),
	})
	d := fx.create(t, &usecase.CreatePersonInput{
		Name: "DEV", Surname: "PATEL", Gender: entity.GenderMale,
		Father: entity.Linked(a.ID, ""), Mother: entity.Linked(wife.ID, ""),
	})

	require.NoError(t, fx.service.SoftDelete(ctx, a.ID))
	deleted := fx.get(t, a.ID)
	assert.Equal(t, entity.StatusDeleted, deleted.Status)
	assert.NotNil(t, deleted.DeletedAt)
	// Edges survive a soft delete.
	assert.Equal(t, a.ID, fx.get(t, d.ID).Father.LinkedID())

	require.NoError(t, fx.service.Purge(ctx, a.ID))

	people := fx.all(t)
	assert.NotContains(t, people, a.ID)
	assert.False(t, people[d.ID].Father.IsLinked())
	assert.Equal(t, wife.ID, people[d.ID].Mother.LinkedID())
	assert.Equal(t, entity.MaritalSingle, people[wife.ID].MaritalStatus)
	assert.True(t, people[wife.ID].Spouse.IsNone())
	for _, p := range people {
		assert.NotEqual(t, a.ID, p.Father.LinkedID())
		assert.NotEqual(t, a.ID, p.Mother.LinkedID())
		assert.NotEqual(t, a.ID, p.Spouse.LinkedID())
	}
	assertSpousalSymmetry(t, people)
}

func TestPersonService_Recover(t *testing.T) {
	fx := createTestPersonService(t).quiet()
	ctx := context.Background()

	pending, err := fx.service.CreatePerson(ctx, man("ARJUN"), entity.StatusPending)
	require.NoError(t, err)

	require.NoError(t, fx.service.SoftDelete(ctx, pending.ID))
	require.NoError(t, fx.service.Recover(ctx, pending.ID))

	recovered := fx.get(t, pending.ID)
	assert.Equal(t, entity.StatusApproved, recovered.Status)
	assert.Nil(t, recovered.DeletedAt)
}

func TestPersonService_Recover_ApprovedIsNoOp(t *testing.T) {
	fx := createTestPersonService(t).quiet()

	p := fx.create(t, man("ARJUN"))
	before := fx.get(t, p.ID)

	require.NoError(t, fx.service.Recover(context.Background(), p.ID))

	assert.Equal(t, before, fx.get(t, p.ID))
}

func TestPersonService_SetApproval(t *testing.T) {
	fx := createTestPersonService(t).quiet()
	ctx := context.Background()

	p, err := fx.service.CreatePerson(ctx, man("ARJUN"), entity.StatusPending)
	require.NoError(t, err)

	require.NoError(t, fx.service.SetApproval(ctx, p.ID, true))
	assert.Equal(t, entity.StatusApproved, fx.get(t, p.ID).Status)

	require.NoError(t, fx.service.SetApproval(ctx, p.ID, false))
	assert.Equal(t, entity.StatusPending, fx.get(t, p.ID).Status)
}

func TestPersonService_BulkSetApproval(t *testing.T) {
	fx := createTestPersonService(t).quiet()
	ctx := context.Background()

	a, err := fx.service.CreatePerson(ctx, man("ARJUN"), entity.StatusPending)
	require.NoError(t, err)
	b, err := fx.service.CreatePerson(ctx, woman("BINA"), entity.StatusPending)
	require.NoError(t, err)

	require.NoError(t, fx.service.BulkSetApproval(ctx, []string{a.ID, b.ID, a.ID}, true))

	people := fx.all(t)
	assert.Equal(t, entity.StatusApproved, people[a.ID].Status)
	assert.Equal(t, entity.StatusApproved, people[b.ID].Status)
}

func TestPersonService_BulkSetDeceased(t *testing.T) {
	fx := createTestPersonService(t).quiet()
	ctx := context.Background()

	a := fx.create(t, man("ARJUN"))
	b := fx.create(t, woman("BINA"))

	require.NoError(t, fx.service.BulkSetDeceased(ctx, []string{a.ID, b.ID}, true))

	people := fx.all(t)
	assert.True(t, people[a.ID].IsDeceased)
	assert.True(t, people[b.ID].IsDeceased)
}

func TestPersonService_ImportBatch(t *testing.T) {
	fx := createTestPersonService(t).quiet()

	count, err := fx.service.ImportBatch(context.Background(), []*usecase.CreatePersonInput{
		{Name: "ARJUN", Surname: "PATEL", Gender: entity.GenderMale, Spouse: entity.Unlinked("BINAPATEL")},
		{Name: "BINA", Surname: "PATEL", Gender: entity.GenderFemale},
		{Name: "CHETAN", Surname: "SHAH", Gender: entity.GenderMale},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, count)

	people := fx.all(t)
	require.Len(t, people, 3)
	for _, p := range people {
		assert.Equal(t, entity.StatusApproved, p.Status)
		assert.Equal(t, entity.DefaultProfilePictureURL, p.ProfilePictureURL)
		if p.Name == "ARJUN" {
			assert.Equal(t, entity.Unlinked("BINAPATEL"), p.Spouse)
			assert.Regexp(t, `^PAT-\d{6}-001$`, p.ID)
		}
		if p.Name == "BINA" {
			assert.True(t, p.Spouse.IsNone())
			assert.Regexp(t, `^PAT-\d{6}-002$`, p.ID)
		}
	}
}

func TestPersonService_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	fx := createTestPersonService(t).quiet()
	ctx := context.Background()

	fx.notifier.EXPECT().
		SendTopicNotification(mock.Anything, "admins", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Times(25)

	const workers = 25
	var wg sync.WaitGroup
	ids := make(chan string, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := fx.service.CreatePerson(ctx, man("ARJUN"), entity.StatusPending)
			if assert.NoError(t, err) {
				ids <- p.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, workers)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
	assert.Equal(t, workers, fx.store.Len())
}

func TestPersonService_SpousalSymmetryAcrossOperations(t *testing.T) {
	fx := createTestPersonService(t).quiet()
	ctx := context.Background()

	a := fx.create(t, man("ARJUN"))
	b := fx.create(t, man("BHARAT"))
	c := fx.create(t, woman("CHARU"))
	d := fx.create(t, woman("DIYA"))

	single := entity.MaritalSingle
	steps := []func() error{
		func() error { return fx.service.LinkRelation(ctx, a.ID, entity.SlotSpouse, c.ID) },
		func() error { return fx.service.LinkRelation(ctx, b.ID, entity.SlotSpouse, d.ID) },
		func() error { return fx.service.LinkRelation(ctx, b.ID, entity.SlotSpouse, c.ID) },
		func() error { return fx.service.UpdatePerson(ctx, a.ID, &usecase.PersonPatch{Spouse: linked(d.ID)}) },
		func() error { return fx.service.UpdatePerson(ctx, c.ID, &usecase.PersonPatch{MaritalStatus: &single}) },
		func() error { return fx.service.ClearRelation(ctx, a.ID, entity.SlotSpouse) },
		func() error { return fx.service.LinkRelation(ctx, d.ID, entity.SlotSpouse, b.ID) },
		func() error { return fx.service.SoftDelete(ctx, b.ID) },
		func() error { return fx.service.Purge(ctx, b.ID) },
	}
	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
		assertSpousalSymmetry(t, fx.all(t))
	}
}

func TestPersonService_PublishesEventAfterCommit(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	fx.publisher.EXPECT().PublishPersonEvent(ctx, mock.Anything).Return(nil).Once()
	p := fx.create(t, man("ARJUN"))

	fx.publisher.EXPECT().
		PublishPersonEvent(ctx, mock.MatchedBy(func(e *service.PersonEvent) bool {
			return e.Type == service.PersonDeleted && e.Status == entity.StatusDeleted && e.PersonIDs[0] == p.ID
		})).
		Return(domainerrors.ErrInternalError).
		Once()

	// A failed publish does not fail the committed mutation.
	require.NoError(t, fx.service.SoftDelete(ctx, p.ID))
	assert.Equal(t, entity.StatusDeleted, fx.get(t, p.ID).Status)
}
