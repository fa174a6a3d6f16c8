// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cracktime

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"strings"
)

type catalogueFile struct {
	Scenarios []Scenario `yaml:"scenarios" validate:"unique=ID,dive"`
}

// Defaults returns the canonical scenarios, slowest attacker first.
func Defaults() []Scenario {
	return []Scenario{Online, OfflineModerate}
}

// Lookup finds a scenario by id.
func Lookup(scenarios []Scenario, id string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// LoadCatalogue reads a YAML list of scenarios and merges it over the
// defaults. Ids must be unique within the file. An entry with the id of a
// default scenario replaces it; any other entry is appended in file order.
func LoadCatalogue(r io.Reader) ([]Scenario, error) {
	var file catalogueFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decoding scenarios: %w", err)
	}

	if err := validator.New().Struct(&file); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
			}
			return nil, fmt.Errorf("invalid scenarios: %s", strings.Join(msgs, ", "))
		}
		return nil, err
	}

	scenarios := Defaults()
	for _, s := range file.Scenarios {
		replaced := false
		for i := range scenarios {
			if scenarios[i].ID == s.ID {
				scenarios[i] = s
				replaced = true
				break
			}
		}
		if !replaced {
			scenarios = append(scenarios, s)
		}
	}

	return scenarios, nil
}

// LoadCatalogueFile is LoadCatalogue over a file. An empty path returns the
// defaults.
func LoadCatalogueFile(fileName string) ([]Scenario, error) {
	if fileName == "" {
		return Defaults(), nil
	}

	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCatalogue(file)
}
