package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

func words(ids ...string) []entities.WordEntry {
	out := make([]entities.WordEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, entities.WordEntry{ID: id, CorrectWord: "w-" + id, Meaning: "m-" + id})
	}
	return out
}

func ids(ws []entities.WordEntry) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.ID)
	}
	return out
}

func TestApplyWordFilterAll(t *testing.T) {
	in := words("a", "b", "c")
	p := newProgress(newFakeMasteryRepo(), newFakeStarredRepo())

	got := ApplyWordFilter(in, entities.WordAll, p)

	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestApplyWordFilterWrongSortsByDescendingCount(t *testing.T) {
	ctx := context.Background()
	p := NewProgressService(newFakeMasteryRepo(), newFakeStarredRepo(), zap.NewNop())
	p.RecordWrong(ctx, "c")
	p.RecordWrong(ctx, "c")
	p.RecordWrong(ctx, "b")

	got := ApplyWordFilter(words("a", "b", "c"), entities.WordWrong, p)

	assert.Equal(t, []string{"c", "b", "a"}, ids(got))
}

func TestApplyWordFilterStarredKeepsOrder(t *testing.T) {
	ctx := context.Background()
	p := newProgress(newFakeMasteryRepo(), newFakeStarredRepo())
	p.ToggleStar(ctx, "a")
	p.ToggleStar(ctx, "c")

	got := ApplyWordFilter(words("a", "b", "c", "d"), entities.WordStarred, p)

	assert.Equal(t, []string{"a", "c"}, ids(got))
}

func TestApplyWordFilterStarredNoneMatch(t *testing.T) {
	p := newProgress(newFakeMasteryRepo(), newFakeStarredRepo())

	got := ApplyWordFilter(words("a", "b"), entities.WordStarred, p)

	assert.Empty(t, got)
}

func TestApplyWordFilterRandomIsPermutation(t *testing.T) {
	in := words("a", "b", "c", "d", "e", "f", "g", "h")
	p := newProgress(newFakeMasteryRepo(), newFakeStarredRepo())

	got := ApplyWordFilter(append([]entities.WordEntry(nil), in...), entities.WordRandom, p)

	require.Len(t, got, len(in))
	assert.ElementsMatch(t, ids(in), ids(got), "same elements, possibly reordered")
}
