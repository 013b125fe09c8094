package story

import (
	"time"

	"github.com/livante/growthlab/core"
)

// Story is a member success story shown on the landing page.
type Story struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Story     string    `json:"story"`
	Skill     string    `json:"skill"`
	Outcome   string    `json:"outcome"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// NewStory is the submission payload.
type NewStory struct {
	Name    string `json:"name" validate:"required"`
	Story   string `json:"story" validate:"required"`
	Skill   string `json:"skill" validate:"required"`
	Outcome string `json:"outcome" validate:"required"`
}

func (ns *NewStory) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.Story = core.CleanString(ns.Story)
	ns.Skill = core.CleanString(ns.Skill)
	ns.Outcome = core.CleanString(ns.Outcome)
	return core.Validate.Struct(ns)
}
