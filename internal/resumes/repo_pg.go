package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo on Postgres. Sub-record sequences are stored as
// JSONB columns so the document shape stays schema-flexible.
type PGRepo struct {
	DB *sql.DB
}

type resumeDocs struct {
	personalInfo   []byte
	experience     []byte
	education      []byte
	skills         []byte
	projects       []byte
	certifications []byte
	languages      []byte
}

func marshalDocs(rec Resume) (resumeDocs, error) {
	var docs resumeDocs
	var err error
	if docs.personalInfo, err = json.Marshal(rec.PersonalInfo); err != nil {
		return docs, fmt.Errorf("marshal personal_info: %w", err)
	}
	if docs.experience, err = json.Marshal(rec.Experience); err != nil {
		return docs, fmt.Errorf("marshal experience: %w", err)
	}
	if docs.education, err = json.Marshal(rec.Education); err != nil {
		return docs, fmt.Errorf("marshal education: %w", err)
	}
	if docs.skills, err = json.Marshal(rec.Skills); err != nil {
		return docs, fmt.Errorf("marshal skills: %w", err)
	}
	if docs.projects, err = json.Marshal(rec.Projects); err != nil {
		return docs, fmt.Errorf("marshal projects: %w", err)
	}
	if docs.certifications, err = json.Marshal(rec.Certifications); err != nil {
		return docs, fmt.Errorf("marshal certifications: %w", err)
	}
	if docs.languages, err = json.Marshal(rec.Languages); err != nil {
		return docs, fmt.Errorf("marshal languages: %w", err)
	}
	return docs, nil
}

// Create inserts a new record.
func (r *PGRepo) Create(ctx context.Context, rec Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    personal_info,
    summary,
    experience,
    education,
    skills,
    projects,
    certifications,
    languages,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	docs, err := marshalDocs(rec)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		docs.personalInfo,
		rec.Summary,
		docs.experience,
		docs.education,
		docs.skills,
		docs.projects,
		docs.certifications,
		docs.languages,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

// GetByID fetches a record by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	const query = `
SELECT id, personal_info, summary, experience, education, skills, projects, certifications, languages, created_at, updated_at
FROM resumes
WHERE id = $1`

	var rec Resume
	var docs resumeDocs
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&docs.personalInfo,
		&rec.Summary,
		&docs.experience,
		&docs.education,
		&docs.skills,
		&docs.projects,
		&docs.certifications,
		&docs.languages,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	if err := unmarshalDocs(docs, &rec); err != nil {
		return Resume{}, err
	}
	return rec, nil
}

// Update overwrites an existing record.
func (r *PGRepo) Update(ctx context.Context, rec Resume) error {
	const query = `
UPDATE resumes
SET personal_info = $2,
    summary = $3,
    experience = $4,
    education = $5,
    skills = $6,
    projects = $7,
    certifications = $8,
    languages = $9,
    updated_at = $10
WHERE id = $1`

	docs, err := marshalDocs(rec)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		docs.personalInfo,
		rec.Summary,
		docs.experience,
		docs.education,
		docs.skills,
		docs.projects,
		docs.certifications,
		docs.languages,
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a record by ID.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM resumes WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns record summaries newest-first. A non-positive limit means
// no limit; the caller decides whether to cap it.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Summary, error) {
	if offset < 0 {
		offset = 0
	}

	query := `
SELECT id, personal_info->>'fullName', personal_info->>'email', created_at, updated_at
FROM resumes
ORDER BY created_at DESC`
	args := []any{offset}
	if limit > 0 {
		query += `
LIMIT $2 OFFSET $1`
		args = append(args, limit)
	} else {
		query += `
OFFSET $1`
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var s Summary
		var fullName, email sql.NullString
		if err := rows.Scan(&s.ID, &fullName, &email, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.FullName = fullName.String
		s.Email = email.String
		out = append(out, s)
	}
	return out, rows.Err()
}

// Count returns the number of stored records.
func (r *PGRepo) Count(ctx context.Context) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM resumes`).Scan(&total)
	return total, err
}

func unmarshalDocs(docs resumeDocs, rec *Resume) error {
	if err := json.Unmarshal(docs.personalInfo, &rec.PersonalInfo); err != nil {
		return fmt.Errorf("unmarshal personal_info: %w", err)
	}
	if err := json.Unmarshal(docs.experience, &rec.Experience); err != nil {
		return fmt.Errorf("unmarshal experience: %w", err)
	}
	if err := json.Unmarshal(docs.education, &rec.Education); err != nil {
		return fmt.Errorf("unmarshal education: %w", err)
	}
	if err := json.Unmarshal(docs.skills, &rec.Skills); err != nil {
		return fmt.Errorf("unmarshal skills: %w", err)
	}
	if err := json.Unmarshal(docs.projects, &rec.Projects); err != nil {
		return fmt.Errorf("unmarshal projects: %w", err)
	}
	if err := json.Unmarshal(docs.certifications, &rec.Certifications); err != nil {
		return fmt.Errorf("unmarshal certifications: %w", err)
	}
	if err := json.Unmarshal(docs.languages, &rec.Languages); err != nil {
		return fmt.Errorf("unmarshal languages: %w", err)
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
