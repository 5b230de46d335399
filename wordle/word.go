package wordle

import "unicode"

// WordLen is the fixed word length of the game.
const WordLen = 5

// Word is a fixed-length lowercase word. Words are value types; two Words
// with the same letters are interchangeable.
type Word [WordLen]rune

// NewWord builds a Word from s, lowercasing its letters. s must be exactly
// five alphabetic characters, otherwise a MalformedWordError is returned.
func NewWord(s string) (Word, error) {
	var w Word
	runes := []rune(s)
	if len(runes) != WordLen {
		return w, &MalformedWordError{Word: s}
	}
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			return w, &MalformedWordError{Word: s}
		}
		w[i] = unicode.ToLower(r)
	}
	return w, nil
}

// MustWord is NewWord for literals known to be valid.
func MustWord(s string) Word {
	w, err := NewWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Word) String() string {
	return string(w[:])
}

// find returns the index of the first occurrence of r in w.
func (w Word) find(r rune) (int, bool) {
	for i, l := range w {
		if l == r {
			return i, true
		}
	}
	return 0, false
}
