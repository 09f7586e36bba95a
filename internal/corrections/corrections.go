// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corrections applies the ordered manual-override list to author
// records. Corrections fix attribution for people the organizational data
// gets wrong; the list is maintained by hand and applied in file order.
package corrections

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/attribution-engine/internal/normalize"
	"github.com/pdiddy/attribution-engine/internal/orgs"
	"github.com/pdiddy/attribution-engine/pkg/types"
)

// Load reads an ordered list of correction rules from a YAML file.
func Load(path string) ([]types.CorrectionRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corrections file: %w", err)
	}
	var rules []types.CorrectionRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing corrections file: %w", err)
	}
	return rules, nil
}

// Apply returns a copy of authors with matching correction rules applied.
// A rule matches by normalized display name, narrowed by author id when
// the rule carries a qualifier. A match fully replaces the author's
// derived faculty attributes with what the rule's payloads say: flags are
// reset, then each payload sets either a faculty (with department and
// group strings) or a bare institute code. Rules apply in list order;
// when several match the same author the last applied wins.
//
// A malformed payload is structurally invalid input and fails the whole
// batch before any author is returned.
func Apply(authors []types.Author, rules []types.CorrectionRule, mapping types.FacultyMapping) ([]types.Author, error) {
	out := make([]types.Author, len(authors))
	copy(out, authors)

	for _, rule := range rules {
		want := normalize.Title(rule.Name)
		if want == "" {
			return nil, fmt.Errorf("correction rule with empty name")
		}
		for i := range out {
			if normalize.Title(out[i].Name) != want {
				continue
			}
			if rule.Qualifier != "" && rule.Qualifier != out[i].ID {
				continue
			}
			corrected, err := applyRule(out[i], rule, mapping)
			if err != nil {
				return nil, err
			}
			out[i] = corrected
		}
	}
	return out, nil
}

func applyRule(author types.Author, rule types.CorrectionRule, mapping types.FacultyMapping) (types.Author, error) {
	// Full replacement, not a merge: prior derived attributes go.
	author.FacultyFlags = orgs.NewFlagMap(mapping.Codes)
	author.Departments = nil
	author.Groups = nil
	author.Institutes = nil

	for _, payload := range rule.Affiliations {
		if strings.Contains(payload, "-") {
			faculty, department, group, err := parseOverride(payload)
			if err != nil {
				return author, fmt.Errorf("correction rule %q: %w", rule.Name, err)
			}
			if _, known := author.FacultyFlags[faculty]; !known {
				return author, fmt.Errorf("correction rule %q: unknown faculty code %q", rule.Name, faculty)
			}
			author.FacultyFlags[faculty] = true
			author.Departments = append(author.Departments, department)
			author.Groups = append(author.Groups, group)
			continue
		}

		code := strings.ToLower(strings.TrimSpace(payload))
		if _, known := author.FacultyFlags[code]; !known {
			return author, fmt.Errorf("correction rule %q: unknown institute code %q", rule.Name, payload)
		}
		author.FacultyFlags[code] = true
		author.Institutes = append(author.Institutes, strings.TrimSpace(payload))
	}
	return author, nil
}

// parseOverride splits a FACULTY-DEPARTMENT-GROUP payload. All three
// parts must be present and non-empty.
func parseOverride(payload string) (faculty, department, group string, err error) {
	parts := strings.SplitN(payload, "-", 3)
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("malformed affiliation %q: want FACULTY-DEPARTMENT-GROUP", payload)
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return "", "", "", fmt.Errorf("malformed affiliation %q: empty segment", payload)
		}
	}
	return strings.ToLower(parts[0]), parts[1], parts[2], nil
}
