package config

import (
	"path/filepath"
	"testing"

	"github.com/gonewx/scrapshot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippedLevelTableMatchesDefaults(t *testing.T) {
	table, err := LoadLevelTable(filepath.Join("..", "..", "data", "levels.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultLevelTable(), table)
}

func TestDefaultLevelTableCoversFirstFourLevels(t *testing.T) {
	table := DefaultLevelTable()
	require.NoError(t, validateLevelTable(table))

	for level := 1; level <= 4; level++ {
		schedule, ok := table.Lookup(level)
		require.True(t, ok, "level %d", level)
		require.NotEmpty(t, schedule.Entries)
		assert.Equal(t, 30, schedule.Entries[0].Time, "first enemy spawns promptly")
	}

	_, ok := table.Lookup(5)
	assert.False(t, ok)

	var nilTable *LevelTable
	_, ok = nilTable.Lookup(1)
	assert.False(t, ok)

	level4, _ := table.Lookup(4)
	var bigs int
	for _, e := range level4.Entries {
		if e.Type == types.EnemyBig {
			bigs++
		}
	}
	assert.Equal(t, 1, bigs, "level 4 introduces exactly one big ship")
}

func TestLoadLevelTableRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"未排序", `
levels:
  - level: 1
    totalTime: 100
    entries:
      - { time: 50, type: small }
      - { time: 10, type: small }
`},
		{"超出时间预算", `
levels:
  - level: 1
    totalTime: 100
    entries:
      - { time: 100, type: small }
`},
		{"重复关卡", `
levels:
  - { level: 2, totalTime: 100 }
  - { level: 2, totalTime: 100 }
`},
		{"未知类型", `
levels:
  - level: 1
    totalTime: 100
    entries:
      - { time: 10, type: giant }
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLevelTable(writeTemp(t, "levels.yaml", tt.content))
			assert.Error(t, err)
		})
	}
}
