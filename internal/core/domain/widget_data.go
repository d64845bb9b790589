package domain

// WidgetReputation is the consolidated payload behind the reputation widget.
type WidgetReputation struct {
	Address     string          `json:"address"`
	DisplayName string          `json:"displayName"`
	AvatarURL   string          `json:"avatarUrl,omitempty"`
	Total       int             `json:"total"`
	MaxTotal    int             `json:"maxTotal"`
	Categories  []CategoryScore `json:"categories"`
	BadgeCount  int             `json:"badgeCount"`
}

// WidgetProfile is the consolidated payload behind the profile widget.
type WidgetProfile struct {
	Profile   Profile       `json:"profile"`
	Total     int           `json:"total"`
	MaxTotal  int           `json:"maxTotal"`
	TopBadges []EarnedBadge `json:"topBadges"`
}

// WidgetCategory is the consolidated payload behind the category widget.
type WidgetCategory struct {
	Address    string             `json:"address"`
	Score      CategoryScore      `json:"score"`
	Definition CategoryDefinition `json:"definition"`
	Rank       int                `json:"rank,omitempty"`
}

// BadgeResultKind discriminates the two shapes of a badge widget payload.
type BadgeResultKind string

const (
	// BadgeResultSingle marks a result holding one badge looked up by key.
	BadgeResultSingle BadgeResultKind = "single"
	// BadgeResultCollection marks a result holding every badge of an account.
	BadgeResultCollection BadgeResultKind = "collection"
)

// BadgeResult is the payload behind the badge widget.
// Exactly one of Single or Collection is set, as indicated by Kind.
type BadgeResult struct {
	Kind       BadgeResultKind
	Single     *BadgeDetail
	Collection *Badges
}

// NewSingleBadgeResult wraps one badge lookup.
func NewSingleBadgeResult(detail *BadgeDetail) *BadgeResult {
	return &BadgeResult{Kind: BadgeResultSingle, Single: detail}
}

// NewBadgeCollectionResult wraps an account's badge collection.
func NewBadgeCollectionResult(badges *Badges) *BadgeResult {
	return &BadgeResult{Kind: BadgeResultCollection, Collection: badges}
}
