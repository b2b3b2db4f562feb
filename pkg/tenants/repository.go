package tenants

import "context"

// Repository lists tenant records.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
}

// NewStaticRepository returns a repository that always serves the provided
// records. A nil slice serves the built-in seed.
func NewStaticRepository(records []Record) Repository {
	if records == nil {
		records = Seed()
	}
	return staticRepository{records: append([]Record(nil), records...)}
}

type staticRepository struct {
	records []Record
}

func (s staticRepository) List(context.Context) ([]Record, error) {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}
