package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("customer not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Customer is a client of the accounting service. Receipts, summaries and
// open items all belong to exactly one customer.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Email     string
	VATID     *string // USt-IdNr., optional
	CreatedAt time.Time
}
