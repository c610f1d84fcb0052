// Package seed provides the fixed example list every store starts from.
//
// The built-in list is returned as a fresh slice on each call so no caller can
// mutate what another one sees. A replacement list may be supplied as a JSON
// array, either from a local file or from an object in storage.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"

	"exampleapi/internal/model"
	"exampleapi/internal/storage"
)

var (
	// ErrDuplicateID is returned when a seed document repeats an id.
	ErrDuplicateID = errors.New("duplicate seed id")
	// ErrInvalidSeed is returned for a record that Create would reject or
	// that carries a negative id.
	ErrInvalidSeed = errors.New("invalid seed record")
)

var validate = validator.New()

// Default returns the built-in seed list in its fixed order.
func Default() []model.Example {
	return []model.Example{
		{
			ID:          0,
			Title:       "Docs",
			URL:         "https://turborepo.com/docs",
			Description: "Find in-depth information about Turborepo features and API.",
		},
		{
			ID:          1,
			Title:       "Learn",
			URL:         "https://turborepo.com/docs/handbook",
			Description: "Learn more about monorepos with our handbook.",
		},
		{
			ID:          2,
			Title:       "Templates",
			URL:         "https://turborepo.com/docs/getting-started/from-example",
			Description: "Choose from over 15 examples and deploy with a single click.",
		},
		{
			ID:          3,
			Title:       "Deploy",
			URL:         "https://vercel.com/new",
			Description: "Instantly deploy your Turborepo to a shareable URL with Vercel.",
		},
	}
}

// Decode reads a JSON array of examples. Every record must pass the
// CreateExampleDto rules with a non-negative, unique id. The result is sorted
// by id, the order every store lists in.
func Decode(r io.Reader) ([]model.Example, error) {
	var items []model.Example
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		if it.ID < 0 {
			return nil, fmt.Errorf("%w: id %d is negative", ErrInvalidSeed, it.ID)
		}
		if _, ok := seen[it.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = struct{}{}

		dto := model.CreateExampleDto{Title: it.Title, URL: it.URL, Description: it.Description}
		if err := validate.Struct(dto); err != nil {
			return nil, fmt.Errorf("%w: id %d: %v", ErrInvalidSeed, it.ID, err)
		}
	}
	slices.SortFunc(items, func(a, b model.Example) int { return a.ID - b.ID })
	return items, nil
}

// FromFile loads a seed list from a JSON file on disk.
func FromFile(path string) ([]model.Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// FromObject loads a seed list stored under key in object storage.
func FromObject(ctx context.Context, store storage.Storage, key string) ([]model.Example, error) {
	rc, _, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get seed object: %w", err)
	}
	defer rc.Close()
	return Decode(rc)
}
