package model

// EventInfo describes the running promotion. It is server-authoritative.
type EventInfo struct {
	ID          int    `json:"id"`
	Period      string `json:"period"`
	Target      string `json:"target"`
	Description string `json:"description"`
}

// Reward is one benefit offered by the event. Lists of rewards keep the
// order the backend returned them in.
type Reward struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Image     string `json:"image"`
	ValidDate string `json:"validDate"`
}

// FortuneItem is one segment of the fortune wheel. Segment order is the
// order of the backend response and is significant.
type FortuneItem struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// UserInfo is the form a participant submits once.
type UserInfo struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	AgreedTerms bool   `json:"agreedTerms"`
}
