package tenants

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

var seedRecords = mustDecodeSeed(seedYAML)

type seedDocument struct {
	Tenants []Record `yaml:"tenants"`
}

// Seed returns a fresh copy of the built-in tenant list.
func Seed() []Record {
	return append([]Record(nil), seedRecords...)
}

// DecodeSeed parses and validates a YAML tenant seed.
func DecodeSeed(r io.Reader) ([]Record, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc seedDocument
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("tenants: seed is empty")
		}
		return nil, fmt.Errorf("tenants: parse seed: %w", err)
	}
	if err := Validate(doc.Tenants); err != nil {
		return nil, err
	}
	return doc.Tenants, nil
}

// Validate checks the record invariants across a collection.
func Validate(records []Record) error {
	var errs error
	seen := make(map[int]struct{}, len(records))
	for idx, r := range records {
		if r.ID <= 0 {
			errs = errors.Join(errs, fmt.Errorf("tenants: record at index %d has non-positive id %d", idx, r.ID))
		}
		if _, dup := seen[r.ID]; dup {
			errs = errors.Join(errs, fmt.Errorf("tenants: duplicate id %d", r.ID))
		}
		seen[r.ID] = struct{}{}
		if r.BusinessName == "" {
			errs = errors.Join(errs, fmt.Errorf("tenants: record %d missing business_name", r.ID))
		}
		if plan, ok := ParsePlan(string(r.Plan)); !ok || plan != r.Plan {
			errs = errors.Join(errs, fmt.Errorf("tenants: record %d has unknown plan %q", r.ID, r.Plan))
		}
		if status, ok := ParseStatus(string(r.Status)); !ok || status != r.Status {
			errs = errors.Join(errs, fmt.Errorf("tenants: record %d has unknown status %q", r.ID, r.Status))
		}
		if r.ChatsToday < 0 || r.ChatsMonth < 0 || r.Images < 0 || r.MRR < 0 {
			errs = errors.Join(errs, fmt.Errorf("tenants: record %d has negative counters", r.ID))
		}
		if r.ChatsMonth < r.ChatsToday {
			errs = errors.Join(errs, fmt.Errorf("tenants: record %d has chats_month %d below chats_today %d", r.ID, r.ChatsMonth, r.ChatsToday))
		}
	}
	return errs
}

func mustDecodeSeed(data []byte) []Record {
	records, err := DecodeSeed(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Errorf("tenants: embedded seed is invalid: %w", err))
	}
	return records
}
