package main

import (
	"fmt"
	"os"

	"github.com/furfindr/internal/domain"
	"gopkg.in/yaml.v3"
)

// loadProfile resolves -profile: empty means the default household, a preset
// name selects a sample household, anything else is read as a YAML file
// whose fields override the defaults.
func loadProfile(arg string) (domain.HouseholdProfile, error) {
	if arg == "" {
		return domain.DefaultProfile(), nil
	}

	if p, err := domain.PresetProfile(arg); err == nil {
		return p, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return domain.HouseholdProfile{}, domain.WrapError("load_profile",
			fmt.Errorf("%q is neither a preset %v nor a readable file: %w", arg, domain.PresetNames(), err))
	}

	return decodeProfile(data)
}

func decodeProfile(data []byte) (domain.HouseholdProfile, error) {
	p := domain.DefaultProfile()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return domain.HouseholdProfile{}, domain.WrapError("decode_profile", err)
	}
	return p, nil
}

// loadAnimals reads a YAML file holding one animal or a list of animals.
func loadAnimals(path string) ([]domain.AnimalRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.WrapError("load_animals", err)
	}
	return decodeAnimals(data)
}

func decodeAnimals(data []byte) ([]domain.AnimalRecord, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, domain.WrapError("decode_animals", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, domain.WrapError("decode_animals", domain.ErrEmptyBatch)
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var animals []domain.AnimalRecord
		if err := root.Decode(&animals); err != nil {
			return nil, domain.WrapError("decode_animals", err)
		}
		if len(animals) == 0 {
			return nil, domain.WrapError("decode_animals", domain.ErrEmptyBatch)
		}
		return animals, nil
	case yaml.MappingNode:
		var animal domain.AnimalRecord
		if err := root.Decode(&animal); err != nil {
			return nil, domain.WrapError("decode_animals", err)
		}
		return []domain.AnimalRecord{animal}, nil
	default:
		return nil, domain.WrapError("decode_animals",
			fmt.Errorf("%w: expected a mapping or a list at line %d", domain.ErrInvalidRequest, root.Line))
	}
}
