// internal/model/hooks.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// now is swapped out in tests.
var now = func() time.Time { return time.Now().UTC() }

// The BeforeUpdate hooks below mirror the original schema's updated_at
// trigger: every update statement stamps updated_at server-side, so a
// caller-supplied value is always overwritten. created_at is written once
// at insert (gorm's autoCreateTime) and never touched again.

func (c *Candidate) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = now()
	return nil
}

func (t *Template) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = now()
	return nil
}

func (t *Tag) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = now()
	return nil
}

func (p *Profile) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = now()
	return nil
}

func (o *Organization) BeforeUpdate(tx *gorm.DB) error {
	o.UpdatedAt = now()
	return nil
}
