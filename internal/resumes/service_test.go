package resumes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(now time.Time) (*Service, *clock) {
	clk := &clock{now: now}
	svc := NewService(NewMemoryRepo())
	svc.Now = clk.Now
	return svc, clk
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func validRecord() Resume {
	return Resume{
		PersonalInfo: PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"},
		Summary:      "Analyst",
		Skills:       []SkillGroup{{Category: "Math", Items: []string{"calculus"}}},
	}
}

func TestServiceCreateAssignsIDAndTimestamps(t *testing.T) {
	start := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(start)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRecord())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, start, created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "Analyst", got.Summary)
	// Sequences the client omitted come back as explicit empty arrays.
	assert.NotNil(t, got.Experience)
	assert.Empty(t, got.Experience)
	assert.NotNil(t, got.Languages)
}

func TestServiceCreateRejectsMissingRequiredFields(t *testing.T) {
	svc, _ := newTestService(time.Now().UTC())

	_, err := svc.Create(context.Background(), Resume{Summary: "no identity"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"personalInfo.fullName", "personalInfo.email"}, verr.Fields)
}

func TestServiceUpdateMergesShallowly(t *testing.T) {
	start := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc, clk := newTestService(start)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRecord())
	require.NoError(t, err)

	clk.Advance(time.Minute)
	summary := "new"
	updated, err := svc.Update(ctx, created.ID, Patch{Summary: &summary})
	require.NoError(t, err)

	assert.Equal(t, "new", updated.Summary)
	assert.Equal(t, created.PersonalInfo, updated.PersonalInfo)
	assert.Equal(t, created.Skills, updated.Skills)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestServiceUpdateReplacesSequencesWholesale(t *testing.T) {
	svc, clk := newTestService(time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	created, err := svc.Create(ctx, validRecord())
	require.NoError(t, err)

	clk.Advance(time.Second)
	newSkills := []SkillGroup{{Category: "Engineering", Items: []string{"go"}}}
	updated, err := svc.Update(ctx, created.ID, Patch{Skills: &newSkills})
	require.NoError(t, err)
	assert.Equal(t, newSkills, updated.Skills)
}

func TestServiceUpdateIsIdempotentExceptUpdatedAt(t *testing.T) {
	svc, clk := newTestService(time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	created, err := svc.Create(ctx, validRecord())
	require.NoError(t, err)

	summary := "same payload"
	clk.Advance(time.Second)
	first, err := svc.Update(ctx, created.ID, Patch{Summary: &summary})
	require.NoError(t, err)

	clk.Advance(time.Second)
	second, err := svc.Update(ctx, created.ID, Patch{Summary: &summary})
	require.NoError(t, err)

	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
	second.UpdatedAt = first.UpdatedAt
	assert.Equal(t, first, second)
}

func TestServiceUpdateDoesNotRevalidate(t *testing.T) {
	// An update may clear required fields without error.
	svc, clk := newTestService(time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	created, err := svc.Create(ctx, validRecord())
	require.NoError(t, err)

	clk.Advance(time.Second)
	cleared := PersonalInfo{}
	updated, err := svc.Update(ctx, created.ID, Patch{PersonalInfo: &cleared})
	require.NoError(t, err)
	assert.Empty(t, updated.PersonalInfo.FullName)
}

func TestServiceOperationsOnUnknownID(t *testing.T) {
	svc, _ := newTestService(time.Now().UTC())
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	summary := "x"
	_, err = svc.Update(ctx, "missing", Patch{Summary: &summary})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
}

func TestServiceDeleteRemovesRecord(t *testing.T) {
	svc, _ := newTestService(time.Now().UTC())
	ctx := context.Background()

	created, err := svc.Create(ctx, validRecord())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceListPagination(t *testing.T) {
	start := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc, clk := newTestService(start)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		clk.Advance(time.Second)
		_, err := svc.Create(ctx, validRecord())
		require.NoError(t, err)
	}

	items, total, err := svc.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Len(t, items, 10)

	items, _, err = svc.List(ctx, 3, 10)
	require.NoError(t, err)
	assert.Len(t, items, 5)

	items, _, err = svc.List(ctx, 4, 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestServiceListNewestFirst(t *testing.T) {
	start := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc, clk := newTestService(start)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		clk.Advance(time.Minute)
		created, err := svc.Create(ctx, validRecord())
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	items, total, err := svc.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 3)
	assert.Equal(t, ids[2], items[0].ID)
	assert.Equal(t, ids[1], items[1].ID)
	assert.Equal(t, ids[0], items[2].ID)
	for _, item := range items {
		assert.Equal(t, "Ada Lovelace", item.FullName)
		assert.Equal(t, "ada@example.com", item.Email)
	}
}
