package resumes

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for resume records.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service backed by the given repository.
func NewService(repo Repo) *Service {
	return &Service{
		Repo: repo,
		Now:  func() time.Time { return time.Now().UTC() },
	}
}

// Create validates the required fields, assigns an ID and timestamps, and
// persists the record.
func (s *Service) Create(ctx context.Context, rec Resume) (Resume, error) {
	if err := ValidateNew(rec); err != nil {
		return Resume{}, err
	}

	now := s.Now()
	rec.ID = uuid.NewString()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.normalize()

	if err := s.Repo.Create(ctx, rec); err != nil {
		return Resume{}, err
	}
	return rec, nil
}

// Get returns a record by ID.
func (s *Service) Get(ctx context.Context, id string) (Resume, error) {
	return s.Repo.GetByID(ctx, id)
}

// Patch carries the fields of an update request. Nil fields are left
// untouched; provided sequences replace the stored ones wholesale.
type Patch struct {
	PersonalInfo   *PersonalInfo    `json:"personalInfo"`
	Summary        *string          `json:"summary"`
	Experience     *[]Experience    `json:"experience"`
	Education      *[]Education     `json:"education"`
	Skills         *[]SkillGroup    `json:"skills"`
	Projects       *[]Project       `json:"projects"`
	Certifications *[]Certification `json:"certifications"`
	Languages      *[]Language      `json:"languages"`
}

func (p Patch) apply(rec *Resume) {
	if p.PersonalInfo != nil {
		rec.PersonalInfo = *p.PersonalInfo
	}
	if p.Summary != nil {
		rec.Summary = *p.Summary
	}
	if p.Experience != nil {
		rec.Experience = *p.Experience
	}
	if p.Education != nil {
		rec.Education = *p.Education
	}
	if p.Skills != nil {
		rec.Skills = *p.Skills
	}
	if p.Projects != nil {
		rec.Projects = *p.Projects
	}
	if p.Certifications != nil {
		rec.Certifications = *p.Certifications
	}
	if p.Languages != nil {
		rec.Languages = *p.Languages
	}
}

// Update merges the patch into the stored record and refreshes updatedAt.
// Required fields are deliberately not re-checked here: an update can
// clear them.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Resume, error) {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Resume{}, err
	}

	patch.apply(&rec)
	rec.UpdatedAt = s.Now()
	rec.normalize()

	if err := s.Repo.Update(ctx, rec); err != nil {
		return Resume{}, err
	}
	return rec, nil
}

// Delete removes a record by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// List returns one page of record summaries, newest-first, plus the total
// record count.
func (s *Service) List(ctx context.Context, page, limit int) ([]Summary, int, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	items, err := s.Repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
