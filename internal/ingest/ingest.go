// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest parses the harvested input tables and static mapping
// files into typed records. Parsing happens once, at this boundary; the
// pipeline only ever sees validated, typed records.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/attribution-engine/pkg/types"
)

// LoadPublications reads a JSON array of publication records.
func LoadPublications(path string) ([]types.Publication, error) {
	var pubs []types.Publication
	if err := readJSON(path, &pubs); err != nil {
		return nil, fmt.Errorf("loading publications: %w", err)
	}
	return pubs, nil
}

// LoadAuthors reads a JSON array of author records.
func LoadAuthors(path string) ([]types.Author, error) {
	var authors []types.Author
	if err := readJSON(path, &authors); err != nil {
		return nil, fmt.Errorf("loading authors: %w", err)
	}
	return authors, nil
}

// LoadOrganizations reads a JSON array of organization records.
func LoadOrganizations(path string) ([]types.Organization, error) {
	var orgs []types.Organization
	if err := readJSON(path, &orgs); err != nil {
		return nil, fmt.Errorf("loading organizations: %w", err)
	}
	return orgs, nil
}

// LoadFacultyMapping reads the static faculty mapping YAML file.
func LoadFacultyMapping(path string) (types.FacultyMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.FacultyMapping{}, fmt.Errorf("reading faculty mapping: %w", err)
	}
	var mapping types.FacultyMapping
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return types.FacultyMapping{}, fmt.Errorf("parsing faculty mapping: %w", err)
	}
	if len(mapping.Codes) == 0 {
		return types.FacultyMapping{}, fmt.Errorf("faculty mapping %s lists no codes", path)
	}
	return mapping, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Validate fails fast on structurally invalid input: every required
// field of every row is checked before any row is processed.
func Validate(pubs []types.Publication, authors []types.Author, organizations []types.Organization) error {
	for _, p := range pubs {
		if p.ID == "" {
			return &types.MissingFieldError{Table: "publications", Field: "id"}
		}
		if p.Title == "" {
			return &types.MissingFieldError{Table: "publications", Field: "title", RowID: p.ID}
		}
	}
	for _, a := range authors {
		if a.ID == "" {
			return &types.MissingFieldError{Table: "authors", Field: "id"}
		}
		if a.Name == "" {
			return &types.MissingFieldError{Table: "authors", Field: "name", RowID: a.ID}
		}
	}
	for _, o := range organizations {
		if o.ID == "" {
			return &types.MissingFieldError{Table: "organizations", Field: "id"}
		}
		if o.Name == "" {
			return &types.MissingFieldError{Table: "organizations", Field: "name", RowID: o.ID}
		}
	}
	return nil
}
