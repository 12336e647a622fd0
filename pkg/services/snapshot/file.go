package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/de-tools/rightsize/pkg/adapters"
	"github.com/de-tools/rightsize/pkg/models/api"
	"github.com/de-tools/rightsize/pkg/models/domain"
)

type fileSource struct {
	path string
}

// FileSourceFactory builds a Source reading a JSON snapshot file, the shape
// produced by the collection tooling: {"resources": [...]}.
func FileSourceFactory(location string) (Source, error) {
	if location == "" {
		return nil, fmt.Errorf("snapshot file path cannot be empty")
	}
	return &fileSource{path: location}, nil
}

func (s *fileSource) Name() string {
	return "file"
}

func (s *fileSource) Resources(_ context.Context) ([]domain.ResourceUsage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var payload struct {
		Resources []api.ResourceUsage `json:"resources"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file %s: %w", s.path, err)
	}

	usages := make([]domain.ResourceUsage, 0, len(payload.Resources))
	for _, r := range payload.Resources {
		usages = append(usages, adapters.MapResourceUsageApiToDomain(r))
	}
	return usages, nil
}
