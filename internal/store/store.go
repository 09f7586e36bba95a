// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the enriched publication and author tables in a
// local SQLite database so a run's output can be re-read without
// re-running the pipeline.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/attribution-engine/pkg/types"
)

// Store manages the result SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the result database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS publications (
			id TEXT PRIMARY KEY,
			doi TEXT,
			openalex_id TEXT,
			title TEXT NOT NULL,
			year INTEGER,
			author_ids TEXT,
			from_repository INTEGER NOT NULL DEFAULT 0,
			from_openalex INTEGER NOT NULL DEFAULT 0,
			faculty_flags TEXT,
			institution_authored INTEGER NOT NULL DEFAULT 0,
			departments TEXT,
			groups_ TEXT,
			orcids TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_publications_doi ON publications(doi)`,
		`CREATE TABLE IF NOT EXISTS authors (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			orcid TEXT,
			affiliation_ids TEXT,
			faculty_flags TEXT,
			is_institution_member INTEGER NOT NULL DEFAULT 0,
			departments TEXT,
			groups_ TEXT,
			institutes TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveResults replaces the stored tables with the given run output in
// one transaction.
func (s *Store) SaveResults(ctx context.Context, pubs []types.EnrichedPublication, authors []types.Author) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"publications", "authors"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	pubStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO publications (id, doi, openalex_id, title, year, author_ids,
			from_repository, from_openalex, faculty_flags, institution_authored,
			departments, groups_, orcids)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing publication insert: %w", err)
	}
	defer pubStmt.Close()

	for _, p := range pubs {
		_, err := pubStmt.ExecContext(ctx,
			p.ID, p.DOI, p.OpenAlexID, p.Title, p.Year, marshalJSON(p.AuthorIDs),
			p.FromRepository, p.FromOpenAlex, marshalJSON(p.FacultyFlags), p.InstitutionAuthored,
			marshalJSON(p.Departments), marshalJSON(p.Groups), marshalJSON(p.ORCIDs),
		)
		if err != nil {
			return fmt.Errorf("inserting publication %s: %w", p.ID, err)
		}
	}

	authorStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO authors (id, name, orcid, affiliation_ids, faculty_flags,
			is_institution_member, departments, groups_, institutes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing author insert: %w", err)
	}
	defer authorStmt.Close()

	for _, a := range authors {
		_, err := authorStmt.ExecContext(ctx,
			a.ID, a.Name, a.ORCID, marshalJSON(a.AffiliationIDs), marshalJSON(a.FacultyFlags),
			a.IsInstitutionMember, marshalJSON(a.Departments), marshalJSON(a.Groups),
			marshalJSON(a.Institutes),
		)
		if err != nil {
			return fmt.Errorf("inserting author %s: %w", a.ID, err)
		}
	}

	return tx.Commit()
}

// Publications returns the stored enriched publication rows in insertion
// order.
func (s *Store) Publications(ctx context.Context) ([]types.EnrichedPublication, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, doi, openalex_id, title, year, author_ids,
			from_repository, from_openalex, faculty_flags, institution_authored,
			departments, groups_, orcids
		 FROM publications ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying publications: %w", err)
	}
	defer rows.Close()

	var pubs []types.EnrichedPublication
	for rows.Next() {
		var p types.EnrichedPublication
		var authorIDs, flags, departments, groups, orcids string
		if err := rows.Scan(
			&p.ID, &p.DOI, &p.OpenAlexID, &p.Title, &p.Year, &authorIDs,
			&p.FromRepository, &p.FromOpenAlex, &flags, &p.InstitutionAuthored,
			&departments, &groups, &orcids,
		); err != nil {
			return nil, fmt.Errorf("scanning publication: %w", err)
		}
		unmarshalJSON(authorIDs, &p.AuthorIDs)
		unmarshalJSON(flags, &p.FacultyFlags)
		unmarshalJSON(departments, &p.Departments)
		unmarshalJSON(groups, &p.Groups)
		unmarshalJSON(orcids, &p.ORCIDs)
		pubs = append(pubs, p)
	}
	return pubs, rows.Err()
}

// Authors returns the stored enriched author rows in insertion order.
func (s *Store) Authors(ctx context.Context) ([]types.Author, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, orcid, affiliation_ids, faculty_flags,
			is_institution_member, departments, groups_, institutes
		 FROM authors ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying authors: %w", err)
	}
	defer rows.Close()

	var authors []types.Author
	for rows.Next() {
		var a types.Author
		var affiliationIDs, flags, departments, groups, institutes string
		if err := rows.Scan(
			&a.ID, &a.Name, &a.ORCID, &affiliationIDs, &flags,
			&a.IsInstitutionMember, &departments, &groups, &institutes,
		); err != nil {
			return nil, fmt.Errorf("scanning author: %w", err)
		}
		unmarshalJSON(affiliationIDs, &a.AffiliationIDs)
		unmarshalJSON(flags, &a.FacultyFlags)
		unmarshalJSON(departments, &a.Departments)
		unmarshalJSON(groups, &a.Groups)
		unmarshalJSON(institutes, &a.Institutes)
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func marshalJSON(v any) string {
	data, _ := json.Marshal(v)
	return string(data)
}

func unmarshalJSON[T any](data string, v *T) {
	if data == "" || data == "null" {
		return
	}
	_ = json.Unmarshal([]byte(data), v)
}
