package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

// fakeMasteryRepo is an in-memory MasteryRepository with optional write
// failure injection.
type fakeMasteryRepo struct {
	records map[string]entities.MasteryRecord
	failAll bool
	upserts int
	deletes int
}

func newFakeMasteryRepo() *fakeMasteryRepo {
	return &fakeMasteryRepo{records: make(map[string]entities.MasteryRecord)}
}

func (f *fakeMasteryRepo) GetAll(context.Context) (map[string]entities.MasteryRecord, error) {
	if f.failAll {
		return nil, errors.New("backend unavailable")
	}
	out := make(map[string]entities.MasteryRecord, len(f.records))
	for k, v := range f.records {
		out[k] = v
	}
	return out, nil
}

func (f *fakeMasteryRepo) Upsert(_ context.Context, id string, rec entities.MasteryRecord) error {
	f.upserts++
	if f.failAll {
		return errors.New("backend unavailable")
	}
	f.records[id] = rec
	return nil
}

func (f *fakeMasteryRepo) Delete(_ context.Context, id string) error {
	f.deletes++
	if f.failAll {
		return errors.New("backend unavailable")
	}
	delete(f.records, id)
	return nil
}

type fakeStarredRepo struct {
	stars   map[string]bool
	failAll bool
}

func newFakeStarredRepo() *fakeStarredRepo {
	return &fakeStarredRepo{stars: make(map[string]bool)}
}

func (f *fakeStarredRepo) GetAll(context.Context) (map[string]bool, error) {
	if f.failAll {
		return nil, errors.New("backend unavailable")
	}
	out := make(map[string]bool, len(f.stars))
	for k := range f.stars {
		out[k] = true
	}
	return out, nil
}

func (f *fakeStarredRepo) Add(_ context.Context, id string) error {
	if f.failAll {
		return errors.New("backend unavailable")
	}
	f.stars[id] = true
	return nil
}

func (f *fakeStarredRepo) Delete(_ context.Context, id string) error {
	if f.failAll {
		return errors.New("backend unavailable")
	}
	delete(f.stars, id)
	return nil
}

func newProgress(mastery *fakeMasteryRepo, starred *fakeStarredRepo) *ProgressService {
	return NewProgressService(mastery, starred, zap.NewNop())
}

func TestProgressInitLoadsBothCollections(t *testing.T) {
	mastery := newFakeMasteryRepo()
	mastery.records["a"] = entities.MasteryRecord{Count: 2, CorrectStreak: 1}
	starred := newFakeStarredRepo()
	starred.stars["b"] = true

	p := newProgress(mastery, starred)
	p.Init(context.Background())

	assert.Equal(t, 2, p.WrongCount("a"))
	assert.True(t, p.IsStarred("b"))
	assert.False(t, p.IsStarred("a"))
	assert.Equal(t, 0, p.WrongCount("unknown"))
}

func TestProgressInitToleratesLoadFailure(t *testing.T) {
	mastery := newFakeMasteryRepo()
	mastery.failAll = true
	starred := newFakeStarredRepo()
	starred.stars["b"] = true

	p := newProgress(mastery, starred)
	p.Init(context.Background())

	assert.Equal(t, 0, p.TrackedCount(), "unreadable collection starts empty")
	assert.True(t, p.IsStarred("b"), "readable collection still loads")
}

func TestRecordWrongCreatesThenIncrements(t *testing.T) {
	ctx := context.Background()
	mastery := newFakeMasteryRepo()
	p := newProgress(mastery, newFakeStarredRepo())

	p.RecordWrong(ctx, "a")
	assert.Equal(t, 1, p.WrongCount("a"))

	p.RecordWrong(ctx, "a")
	assert.Equal(t, 2, p.WrongCount("a"))
	assert.Equal(t, entities.MasteryRecord{Count: 2, CorrectStreak: 0}, mastery.records["a"])
}

func TestThreeCorrectInARowRetiresRecord(t *testing.T) {
	ctx := context.Background()
	mastery := newFakeMasteryRepo()
	p := newProgress(mastery, newFakeStarredRepo())

	p.RecordWrong(ctx, "a")
	p.RecordWrong(ctx, "a")
	p.RecordCorrect(ctx, "a")
	p.RecordCorrect(ctx, "a")
	assert.Equal(t, 2, p.WrongCount("a"), "still tracked before the third correct")

	p.RecordCorrect(ctx, "a")

	assert.Equal(t, 0, p.WrongCount("a"), "record gone after 3rd consecutive correct")
	assert.Equal(t, 0, p.TrackedCount())
	_, exists := mastery.records["a"]
	assert.False(t, exists, "remote record deleted too")
	assert.Equal(t, 1, mastery.deletes)
}

func TestWrongAnswerResetsStreak(t *testing.T) {
	ctx := context.Background()
	mastery := newFakeMasteryRepo()
	p := newProgress(mastery, newFakeStarredRepo())

	p.RecordWrong(ctx, "a")
	p.RecordCorrect(ctx, "a")
	require.Equal(t, entities.MasteryRecord{Count: 1, CorrectStreak: 1}, mastery.records["a"])

	p.RecordWrong(ctx, "a")
	assert.Equal(t, entities.MasteryRecord{Count: 2, CorrectStreak: 0}, mastery.records["a"])

	// The streak restarts from zero, so two corrects are not enough.
	p.RecordCorrect(ctx, "a")
	p.RecordCorrect(ctx, "a")
	assert.Equal(t, 2, p.WrongCount("a"))
}

func TestRecordCorrectForUntrackedWordIsNoop(t *testing.T) {
	ctx := context.Background()
	mastery := newFakeMasteryRepo()
	p := newProgress(mastery, newFakeStarredRepo())

	p.RecordCorrect(ctx, "never-missed")

	assert.Equal(t, 0, p.TrackedCount())
	assert.Zero(t, mastery.upserts)
	assert.Zero(t, mastery.deletes)
}

func TestToggleStarRoundTrips(t *testing.T) {
	ctx := context.Background()
	starred := newFakeStarredRepo()
	p := newProgress(newFakeMasteryRepo(), starred)

	assert.True(t, p.ToggleStar(ctx, "a"))
	assert.True(t, p.IsStarred("a"))
	assert.True(t, starred.stars["a"])

	assert.False(t, p.ToggleStar(ctx, "a"))
	assert.False(t, p.IsStarred("a"))
	assert.False(t, starred.stars["a"])
}

func TestWriteFailuresKeepMemoryAuthoritative(t *testing.T) {
	ctx := context.Background()
	mastery := newFakeMasteryRepo()
	starred := newFakeStarredRepo()
	p := newProgress(mastery, starred)
	p.Init(ctx)

	mastery.failAll = true
	starred.failAll = true

	p.RecordWrong(ctx, "a")
	assert.Equal(t, 1, p.WrongCount("a"), "in-memory state is not rolled back")

	assert.True(t, p.ToggleStar(ctx, "b"))
	assert.True(t, p.IsStarred("b"))
}

func TestHardestWords(t *testing.T) {
	ctx := context.Background()
	p := newProgress(newFakeMasteryRepo(), newFakeStarredRepo())

	for i := 0; i < 3; i++ {
		p.RecordWrong(ctx, "hard")
	}
	p.RecordWrong(ctx, "easy")
	p.RecordWrong(ctx, "medium")
	p.RecordWrong(ctx, "medium")

	top := p.HardestWords(2)
	require.Len(t, top, 2)
	assert.Equal(t, WordDifficulty{WordID: "hard", WrongCount: 3}, top[0])
	assert.Equal(t, WordDifficulty{WordID: "medium", WrongCount: 2}, top[1])
}
