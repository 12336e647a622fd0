package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/rightsize/pkg/models/domain"
)

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource_ReadsSnapshot(t *testing.T) {
	path := writeSnapshot(t, `{
  "resources": [
    {
      "id": "pool-1",
      "name": "orders-pool",
      "tier": "Premium",
      "sku": "P3",
      "capacity": 4,
      "location": "westeurope",
      "workloads": 6,
      "utilization": {"cpu_avg": 20, "cpu_max": 35, "mem_avg": 40, "mem_max": 55}
    }
  ]
}`)

	source, err := FileSourceFactory(path)
	require.NoError(t, err)
	assert.Equal(t, "file", source.Name())

	usages, err := source.Resources(context.Background())
	require.NoError(t, err)
	require.Len(t, usages, 1)

	assert.Equal(t, domain.ResourceConfiguration{
		ID: "pool-1", Name: "orders-pool", Tier: "Premium", SKU: "P3",
		Capacity: 4, Location: "westeurope", Workloads: 6,
	}, usages[0].Config)
	assert.Equal(t, domain.UtilizationSample{CPUAvg: 20, CPUMax: 35, MemAvg: 40, MemMax: 55}, usages[0].Utilization)
}

func TestFileSource_MalformedSnapshot(t *testing.T) {
	path := writeSnapshot(t, `{"resources": [`)

	source, err := FileSourceFactory(path)
	require.NoError(t, err)

	_, err = source.Resources(context.Background())
	assert.Error(t, err)
}

func TestFileSource_EmptyPath(t *testing.T) {
	_, err := FileSourceFactory("")
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry(map[string]SourceFactory{"file": FileSourceFactory})

	t.Run("create registered source", func(t *testing.T) {
		source, err := registry.Create("file", writeSnapshot(t, `{"resources": []}`))
		require.NoError(t, err)
		assert.Equal(t, "file", source.Name())
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := registry.Create("azure", "whatever")
		assert.Error(t, err)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		err := registry.Register("file", FileSourceFactory)
		assert.Error(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		err := registry.Register("", FileSourceFactory)
		assert.Error(t, err)
	})

	t.Run("list sources", func(t *testing.T) {
		assert.Contains(t, registry.ListSources(), "file")
	})
}
