// Package domain contains the core types of the reputation widget client.
package domain

import "time"

// Profile is the identity record of an account.
type Profile struct {
	Address     string            `json:"address"`
	DisplayName string            `json:"displayName"`
	Username    string            `json:"username,omitempty"`
	Bio         string            `json:"bio,omitempty"`
	AvatarURL   string            `json:"avatarUrl,omitempty"`
	Links       map[string]string `json:"links,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// Name returns the best human-readable label for the profile.
func (p *Profile) Name() string {
	switch {
	case p == nil:
		return ""
	case p.DisplayName != "":
		return p.DisplayName
	case p.Username != "":
		return p.Username
	default:
		return ShortAddress(p.Address)
	}
}

// CategoryScore is the score of an account within one category.
type CategoryScore struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
	MaxScore int    `json:"maxScore"`
}

// Percent returns the score as a percentage of the category maximum.
func (c CategoryScore) Percent() int {
	if c.MaxScore <= 0 {
		return 0
	}
	return c.Score * 100 / c.MaxScore
}

// Scores holds the total and per-category reputation of an account.
type Scores struct {
	Address    string          `json:"address"`
	Total      int             `json:"total"`
	MaxTotal   int             `json:"maxTotal"`
	Categories []CategoryScore `json:"categories"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// CategoryDefinition describes a reputation category.
type CategoryDefinition struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxScore    int    `json:"maxScore"`
}

// CategoryDetail is one category score of an account together with its definition.
type CategoryDetail struct {
	Address    string             `json:"address"`
	Score      CategoryScore      `json:"score"`
	Definition CategoryDefinition `json:"definition"`
}

// BadgeLevel is one ordered level of a badge.
type BadgeLevel struct {
	Level       int    `json:"level"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Threshold   int    `json:"threshold"`
}

// BadgeDefinition describes a badge and all of its levels.
type BadgeDefinition struct {
	Key         string       `json:"key"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Levels      []BadgeLevel `json:"levels"`
}

// MaxLevel returns the highest level of the badge.
func (d BadgeDefinition) MaxLevel() int {
	highest := 0
	for _, l := range d.Levels {
		if l.Level > highest {
			highest = l.Level
		}
	}
	return highest
}

// EarnedBadge is a badge as earned by a specific account.
type EarnedBadge struct {
	Key      string     `json:"key"`
	Name     string     `json:"name"`
	Level    int        `json:"level"`
	MaxLevel int        `json:"maxLevel"`
	ImageURL string     `json:"imageUrl,omitempty"`
	EarnedAt *time.Time `json:"earnedAt,omitempty"`
}

// Badges is the collection of badges earned by an account.
type Badges struct {
	Address string        `json:"address"`
	Badges  []EarnedBadge `json:"badges"`
}

// BadgeDetail is a single badge for an account, earned or not, with its definition.
type BadgeDetail struct {
	Address    string          `json:"address"`
	Earned     bool            `json:"earned"`
	Level      int             `json:"level"`
	EarnedAt   *time.Time      `json:"earnedAt,omitempty"`
	Definition BadgeDefinition `json:"definition"`
}

// ShortAddress abbreviates a long account address for display.
func ShortAddress(address string) string {
	const head, tail = 6, 4
	if len(address) <= head+tail+1 {
		return address
	}
	return address[:head] + "…" + address[len(address)-tail:]
}
