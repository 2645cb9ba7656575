package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeforeUpdateStampsUpdatedAt(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	orig := now
	now = func() time.Time { return fixed }
	defer func() { now = orig }()

	t.Run("overwrites a forged timestamp", func(t *testing.T) {
		c := &Candidate{UpdatedAt: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)}
		assert.NoError(t, c.BeforeUpdate(nil))
		assert.Equal(t, fixed, c.UpdatedAt)
	})

	t.Run("advances past the previous value", func(t *testing.T) {
		prev := fixed.Add(-time.Hour)
		tpl := &Template{UpdatedAt: prev}
		assert.NoError(t, tpl.BeforeUpdate(nil))
		assert.True(t, !tpl.UpdatedAt.Before(prev))
	})

	t.Run("leaves created_at alone", func(t *testing.T) {
		created := time.Date(2020, 3, 4, 5, 6, 7, 0, time.UTC)
		tag := &Tag{CreatedAt: created}
		assert.NoError(t, tag.BeforeUpdate(nil))
		assert.Equal(t, created, tag.CreatedAt)
		assert.Equal(t, fixed, tag.UpdatedAt)
	})
}

func TestRelationshipTypeValid(t *testing.T) {
	assert.True(t, RelationshipCandidate.Valid())
	assert.True(t, RelationshipClient.Valid())
	assert.True(t, RelationshipBoth.Valid())
	assert.False(t, RelationshipType("prospect").Valid())
	assert.False(t, RelationshipType("").Valid())
}
