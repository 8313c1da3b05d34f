package domain

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultMaxRounds is the number of rounds a game runs unless configured otherwise
const DefaultMaxRounds = 10

// Game tracks one word-chain game inside a room: the round counter, the
// active letter constraint, the words already accepted this round and the
// cumulative scores. Scores are keyed by display name rather than connection
// id, so the same name on a later connection picks the bucket back up.
type Game struct {
	Round       int
	MaxRounds   int
	Started     bool
	FirstLetter string
	LastLetter  string
	UsedWords   map[string]struct{}
	Scores      map[string]int
}

// NewGame creates a fresh, not-yet-started game
func NewGame(maxRounds int) *Game {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &Game{
		MaxRounds: maxRounds,
		UsedWords: make(map[string]struct{}),
		Scores:    make(map[string]int),
	}
}

// Start begins round 1 with a fresh letter pair and an empty used-word set
func (g *Game) Start() error {
	if g.Started {
		return ErrGameAlreadyStarted
	}
	g.Started = true
	g.Round = 1
	g.rollRound()
	return nil
}

// AdvanceRound moves to the next round: new letters, cleared used-word set,
// round counter incremented by exactly one. The counter never moves past
// MaxRounds.
func (g *Game) AdvanceRound() error {
	if !g.Started {
		return ErrGameNotStarted
	}
	if g.Round >= g.MaxRounds {
		return ErrGameFinished
	}
	g.Round++
	g.rollRound()
	return nil
}

func (g *Game) rollRound() {
	g.UsedWords = make(map[string]struct{})
	g.FirstLetter = RandomLetter()
	g.LastLetter = RandomLetter()
}

// Over reports whether the final round has been reached
func (g *Game) Over() bool {
	return g.Round >= g.MaxRounds
}

// Normalize lowercases a submission. Scoring and the used-word set only
// ever see normalized words.
func Normalize(word string) string {
	return strings.ToLower(word)
}

// CheckStructure reports whether a normalized word satisfies the current
// letter constraint and has not already been played this round. It performs
// no dictionary lookup.
func (g *Game) CheckStructure(word string) bool {
	if word == "" {
		return false
	}
	if !strings.HasPrefix(word, g.FirstLetter) || !strings.HasSuffix(word, g.LastLetter) {
		return false
	}
	_, used := g.UsedWords[word]
	return !used
}

// EnsureScore creates the player's score bucket if missing. Buckets are
// created on first submission even when the submission fails.
func (g *Game) EnsureScore(username string) {
	if _, ok := g.Scores[username]; !ok {
		g.Scores[username] = 0
	}
}

// CommitWord records a fully validated word and returns the points awarded:
// the character count of the normalized word.
func (g *Game) CommitWord(username, word string) int {
	points := utf8.RuneCountInString(word)
	g.UsedWords[word] = struct{}{}
	g.Scores[username] += points
	return points
}

// ScoresCopy returns a copy of the score map safe to hand to broadcasts
func (g *Game) ScoresCopy() map[string]int {
	scores := make(map[string]int, len(g.Scores))
	for name, score := range g.Scores {
		scores[name] = score
	}
	return scores
}

// UsedWordList returns this round's accepted words in sorted order
func (g *Game) UsedWordList() []string {
	words := make([]string, 0, len(g.UsedWords))
	for w := range g.UsedWords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// State builds the broadcastable view of the game
func (g *Game) State() GameStatePayload {
	return GameStatePayload{
		Round:       g.Round,
		MaxRounds:   g.MaxRounds,
		Scores:      g.ScoresCopy(),
		UsedWords:   g.UsedWordList(),
		FirstLetter: g.FirstLetter,
		LastLetter:  g.LastLetter,
	}
}
