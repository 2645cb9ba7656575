package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSameOrganization(t *testing.T) {
	org := uuid.New()
	other := uuid.New()

	t.Run("matching organization", func(t *testing.T) {
		p := Principal{UserID: uuid.New(), OrganizationID: &org}
		assert.True(t, p.SameOrganization(org))
	})

	t.Run("different organization", func(t *testing.T) {
		p := Principal{UserID: uuid.New(), OrganizationID: &org}
		assert.False(t, p.SameOrganization(other))
	})

	t.Run("unprovisioned profile matches nothing", func(t *testing.T) {
		p := Principal{UserID: uuid.New()}
		assert.False(t, p.SameOrganization(org))
		assert.False(t, p.SameOrganization(uuid.Nil))
	})
}

func TestCan(t *testing.T) {
	org := uuid.New()
	other := uuid.New()
	member := Principal{UserID: uuid.New(), OrganizationID: &org}

	resources := []Resource{ResourceCandidate, ResourceActivity, ResourceTag, ResourceTemplate}

	t.Run("read insert update within organization", func(t *testing.T) {
		for _, res := range resources {
			assert.True(t, Can(member, ActionRead, res, org), "read %s", res)
			assert.True(t, Can(member, ActionInsert, res, org), "insert %s", res)
		}
		assert.True(t, Can(member, ActionUpdate, ResourceCandidate, org))
		assert.True(t, Can(member, ActionUpdate, ResourceTemplate, org))
	})

	t.Run("everything denied across organizations", func(t *testing.T) {
		for _, res := range resources {
			for _, act := range []Action{ActionRead, ActionInsert, ActionUpdate, ActionDelete} {
				assert.False(t, Can(member, act, res, other), "%s %s", act, res)
			}
		}
	})

	t.Run("delete is deny-by-default", func(t *testing.T) {
		assert.True(t, Can(member, ActionDelete, ResourceCandidate, org))
		assert.True(t, Can(member, ActionDelete, ResourceTemplate, org))
		assert.True(t, Can(member, ActionDelete, ResourceTag, org))
		assert.False(t, Can(member, ActionDelete, ResourceActivity, org))
	})

	t.Run("activities are immutable", func(t *testing.T) {
		assert.False(t, Can(member, ActionUpdate, ResourceActivity, org))
	})

	t.Run("unknown action denied", func(t *testing.T) {
		assert.False(t, Can(member, Action("share"), ResourceCandidate, org))
	})

	t.Run("nil organization denied everywhere", func(t *testing.T) {
		p := Principal{UserID: uuid.New()}
		for _, res := range resources {
			assert.False(t, Can(p, ActionRead, res, org))
			assert.False(t, Can(p, ActionInsert, res, org))
		}
	})
}
