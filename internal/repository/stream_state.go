// Package repository persists the identifier of the last notified broadcast
// to a single text file so that a restart does not re-notify the same stream.
package repository

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
)

type StreamStateRepository struct {
	path string
}

func NewStreamStateRepository(path string) *StreamStateRepository {
	return &StreamStateRepository{
		path: path,
	}
}

// Load returns the persisted broadcast id, trimmed of surrounding
// whitespace. A missing file yields an empty id and no error.
func (r *StreamStateRepository) Load(ctx context.Context) (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrap(err, "ReadFile")
	}

	return strings.TrimSpace(string(data)), nil
}

// Save overwrites the file with exactly the given id.
func (r *StreamStateRepository) Save(ctx context.Context, streamID string) error {
	err := os.WriteFile(r.path, []byte(streamID), 0o644)
	if err != nil {
		return errors.Wrap(err, "WriteFile")
	}

	return nil
}
