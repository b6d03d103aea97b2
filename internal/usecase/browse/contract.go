package browse

import (
	"context"

	"github.com/nwongx/hatchways-assessment/internal/domain/student"
)

// RosterSource fetches the whole roster in one call.
type RosterSource interface {
	Fetch(ctx context.Context) ([]student.Raw, error)
}
