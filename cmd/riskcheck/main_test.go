package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/furfindr/internal/config"
	"github.com/furfindr/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testConfig() *config.Config {
	return &config.Config{
		Risk: config.RiskConfig{
			MaxBatchSize:    10,
			DisplayScoreCap: 100,
		},
	}
}

func TestLoadProfile(t *testing.T) {
	p, err := loadProfile("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfile(), p)

	p, err = loadProfile(domain.PresetIdealMatch)
	require.NoError(t, err)
	assert.Equal(t, domain.ExperienceExpert, p.ExperienceLevel)

	path := writeFile(t, "profile.yaml", "home_type: house\nhas_other_pets: true\n")
	p, err = loadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.HomeHouse, p.HomeType)
	assert.True(t, p.HasOtherPets)
	assert.Equal(t, domain.ExperienceFirstTime, p.ExperienceLevel)

	_, err = loadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither a preset")
}

func TestDecodeAnimals(t *testing.T) {
	single, err := decodeAnimals([]byte("name: Luna\nbreed: Siberian Husky\nage: Baby\nsize: Large\n"))
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, "Siberian Husky", single[0].BreedText())

	list, err := decodeAnimals([]byte("- name: Luna\n- name: Rex\n  description: only pet\n"))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Nil(t, list[0].Breed)
	assert.Equal(t, "only pet", list[1].DescriptionText())

	_, err = decodeAnimals([]byte("[]"))
	assert.True(t, errors.Is(err, domain.ErrEmptyBatch))

	_, err = decodeAnimals([]byte(""))
	assert.True(t, errors.Is(err, domain.ErrEmptyBatch))

	_, err = decodeAnimals([]byte("just a string"))
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
}

const animalsYAML = `
- id: "1"
  name: Luna
  breed: Siberian Husky
  age: Young
  size: Large
  description: Loves to run.
- id: "2"
  name: Biscuit
  breed: Mixed Breed
  age: Adult
  size: Medium
`

func TestRun_TextReports(t *testing.T) {
	path := writeFile(t, "animals.yaml", animalsYAML)

	var out bytes.Buffer
	err := run(context.Background(), &out, testConfig(), domain.PresetHighRisk, path, false, true, zap.NewNop())
	require.NoError(t, err)

	text := out.String()
	biscuit := strings.Index(text, "REPORT: Biscuit")
	luna := strings.Index(text, "REPORT: Luna")
	require.NotEqual(t, -1, biscuit)
	require.NotEqual(t, -1, luna)
	assert.Less(t, biscuit, luna, "lower risk is printed first")

	assert.Contains(t, text, "Note: medium data confidence, missing [description]")
	assert.Contains(t, text, "Rule triggers: 6 total, 6 unique")
}

func TestRun_JSON(t *testing.T) {
	path := writeFile(t, "animals.yaml", animalsYAML)

	var out bytes.Buffer
	err := run(context.Background(), &out, testConfig(), "", path, true, false, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "["))
	assert.Contains(t, out.String(), `"assessment_id"`)
}

func TestRun_BadProfile(t *testing.T) {
	path := writeFile(t, "animals.yaml", animalsYAML)

	var out bytes.Buffer
	err := run(context.Background(), &out, testConfig(), "no_such_preset", path, false, false, zap.NewNop())
	require.Error(t, err)
	assert.Empty(t, out.String())
}
