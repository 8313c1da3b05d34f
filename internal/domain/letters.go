package domain

import "math/rand"

// Alphabet is the fixed set of letters a round constraint can be drawn from.
// Note it carries ç, ı and ü but no q, w or x, and never deals ğ, ö or ş.
const Alphabet = "abcçdefghıijklmnoprstuüvyz"

var alphabetRunes = []rune(Alphabet)

// RandomLetter draws one letter uniformly from the game alphabet. Letters
// beyond ASCII are returned as full UTF-8 strings. The two letters of a
// round are drawn independently, so they may coincide.
func RandomLetter() string {
	return string(alphabetRunes[rand.Intn(len(alphabetRunes))])
}
