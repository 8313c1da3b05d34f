package domain

// PlayerState is the per-member view inside room updates and summaries.
// ID is the connection id; Name is the chosen display name, which is also
// the scoring key. Two connections that pick the same name share one score
// bucket.
type PlayerState struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsReady  bool   `json:"isReady"`
	Score    int    `json:"score"`
	IsActive bool   `json:"isActive"`
}
