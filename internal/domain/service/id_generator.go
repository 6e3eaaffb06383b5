package service

import (
	"context"

	"familytree/internal/domain/repository"
)

// IDGenerator mints human-readable person IDs of the form PREFIX-YYMMDD-SEQ.
type IDGenerator interface {
	// Reserve locks the partitions the given surnames fall into for the
	// current date. The caller must Release the allocation after the
	// transaction that stores the minted IDs has finished.
	Reserve(surnames ...string) IDAllocation
}

// IDAllocation mints IDs inside one store transaction.
type IDAllocation interface {
	// Next returns the next free ID for surname. The first call for a
	// partition counts existing IDs through repo; later calls continue the
	// sequence locally. Passing a different repo restarts the count.
	Next(ctx context.Context, repo repository.PersonRepository, surname string) (string, error)

	// Release unlocks the reserved partitions. It is safe to call twice.
	Release()
}
