// Package idgen mints person IDs of the form PREFIX-YYMMDD-SEQ.
//
// SEQ is one more than the number of IDs already stored in the
// PREFIX-YYMMDD partition. Allocation is serialized per partition inside the
// process; races with other processes surface as create conflicts that the
// caller retries.
package idgen

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"

	"familytree/config"
	"familytree/internal/domain/repository"
	"familytree/internal/domain/service"
	"familytree/internal/errors"
)

const (
	prefixLength  = 3
	unknownPrefix = "UNK"
	padRune       = 'X'
	dateLayout    = "060102"
)

// Clock returns the current time.
type Clock func() time.Time

// Generator implements service.IDGenerator.
type Generator struct {
	now      Clock
	location *time.Location

	mu    sync.Mutex
	locks map[string]*partitionLock
}

type partitionLock struct {
	mu   sync.Mutex
	refs int
}

// New creates a generator that reads dates from now in location.
func New(now Clock, location *time.Location) *Generator {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.UTC
	}

	return &Generator{
		now:      now,
		location: location,
		locks:    make(map[string]*partitionLock),
	}
}

// NewFromConfig creates the generator used by the service.
func NewFromConfig(cfg *config.Config) (service.IDGenerator, error) {
	location := time.UTC
	if cfg.IDs != nil && cfg.IDs.Timezone != "" {
		loc, err := time.LoadLocation(cfg.IDs.Timezone)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid ids.timezone %q", cfg.IDs.Timezone)
		}
		location = loc
	}

	return New(time.Now, location), nil
}

// Prefix returns the three-letter partition prefix of a surname: its first
// three letters uppercased, padded with X, or UNK when it has no letters.
// Punctuation and digits are skipped, so O'BRIEN gives OBR. Combining marks
// stay with the letter they follow.
func Prefix(surname string) string {
	out := make([]rune, 0, prefixLength)
	letters := 0
scan:
	for _, r := range strings.ToUpper(surname) {
		switch {
		case unicode.IsLetter(r):
			if letters == prefixLength {
				break scan
			}
			out = append(out, r)
			letters++
		case unicode.IsMark(r) && letters > 0:
			out = append(out, r)
		}
	}
	if letters == 0 {
		return unknownPrefix
	}
	for ; letters < prefixLength; letters++ {
		out = append(out, padRune)
	}

	return string(out)
}

// Partition returns the PREFIX-YYMMDD partition of surname on date.
func Partition(surname string, date time.Time) string {
	return Prefix(surname) + "-" + date.Format(dateLayout)
}

// Format builds the ID for the given sequence number of a partition.
func Format(partition string, seq int) string {
	return fmt.Sprintf("%s-%03d", partition, seq)
}

// PartitionRange returns the ID range [lo, hi) covering a partition.
func PartitionRange(partition string) (lo, hi string) {
	return partition, partition + "z"
}

// Reserve locks the partitions of the given surnames for today.
func (g *Generator) Reserve(surnames ...string) service.IDAllocation {
	date := g.now().In(g.location)

	partitions := make([]string, 0, len(surnames))
	for _, surname := range surnames {
		partitions = append(partitions, Partition(surname, date))
	}
	slices.Sort(partitions)
	partitions = slices.Compact(partitions)

	// Sorted acquisition keeps concurrent multi-partition reservations deadlock free.
	for _, partition := range partitions {
		g.lock(partition)
	}

	return &allocation{
		gen:        g,
		date:       date,
		partitions: partitions,
		next:       make(map[string]int, len(partitions)),
	}
}

func (g *Generator) lock(partition string) {
	g.mu.Lock()
	l, ok := g.locks[partition]
	if !ok {
		l = &partitionLock{}
		g.locks[partition] = l
	}
	l.refs++
	g.mu.Unlock()

	l.mu.Lock()
}

func (g *Generator) unlock(partition string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	l := g.locks[partition]
	l.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(g.locks, partition)
	}
}

type allocation struct {
	gen        *Generator
	date       time.Time
	partitions []string
	repo       repository.PersonRepository
	next       map[string]int
	released   bool
}

// Next returns the next free ID for surname within the reserved partitions.
func (a *allocation) Next(ctx context.Context, repo repository.PersonRepository, surname string) (string, error) {
	if a.released {
		return "", errors.New("id allocation already released")
	}
	partition := Partition(surname, a.date)
	if _, ok := slices.BinarySearch(a.partitions, partition); !ok {
		return "", errors.Errorf("partition %s was not reserved", partition)
	}

	if a.repo != repo {
		a.repo = repo
		clear(a.next)
	}

	seq, counted := a.next[partition]
	if !counted {
		lo, hi := PartitionRange(partition)
		count, err := repo.CountIDRange(ctx, lo, hi)
		if err != nil {
			return "", errors.Wrapf(err, "failed to count ids in partition %s", partition)
		}
		seq = count + 1
	}

	// Purged records leave gaps, so the count can land on a taken ID.
	for {
		id := Format(partition, seq)
		_, err := repo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrPersonNotFound) {
			a.next[partition] = seq + 1

			return id, nil
		}
		if err != nil {
			return "", errors.Wrapf(err, "failed to probe id %s", id)
		}
		seq++
	}
}

// Release unlocks every reserved partition.
func (a *allocation) Release() {
	if a.released {
		return
	}
	a.released = true
	for _, partition := range a.partitions {
		a.gen.unlock(partition)
	}
}
