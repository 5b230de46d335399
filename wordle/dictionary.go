package wordle

import (
	"bufio"
	"os"

	"github.com/bits-and-blooms/bitset"
	mapset "github.com/deckarep/golang-set"
)

// ReadWordList reads a newline-delimited word list. Any line that is not a
// 5 letter word, blank lines included, is a MalformedWordError carrying the
// line number.
func ReadWordList(path string) ([]Word, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	words := []Word{}
	scanner := bufio.NewScanner(file)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		word, err := NewWord(text)
		if err != nil {
			return nil, &MalformedWordError{Word: text, Line: line}
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Dictionary is the immutable universe of legal guesses plus the subset of
// words that can be hidden answers. A word is identified by its index into
// the guess list; WordSets are bitsets over those indices, so set iteration
// always runs in dictionary order.
type Dictionary struct {
	words   []Word
	index   map[Word]int
	legal   mapset.Set
	answers []int
}

// NewDictionary builds a Dictionary from the guess and answer word lists.
// Answers missing from the guess list are appended to it so that every
// answer is indexable and legal to guess.
func NewDictionary(guesses, answers []Word) *Dictionary {
	d := &Dictionary{
		index: make(map[Word]int, len(guesses)),
		legal: mapset.NewSet(),
	}
	for _, w := range guesses {
		d.add(w)
	}
	for _, w := range answers {
		d.answers = append(d.answers, d.add(w))
	}
	return d
}

func (d *Dictionary) add(w Word) int {
	if i, ok := d.index[w]; ok {
		return i
	}
	i := len(d.words)
	d.words = append(d.words, w)
	d.index[w] = i
	d.legal.Add(w.String())
	return i
}

// Len is the number of distinct legal guesses.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns the guess dictionary in order. Callers must not mutate it.
func (d *Dictionary) Words() []Word {
	return d.words
}

// Contains reports whether s is a legal guess.
func (d *Dictionary) Contains(s string) bool {
	return d.legal.Contains(s)
}

// Word looks up a dictionary word by its string form.
func (d *Dictionary) Word(s string) (Word, bool) {
	w, err := NewWord(s)
	if err != nil {
		return Word{}, false
	}
	_, ok := d.index[w]
	return w, ok
}

// All returns a WordSet holding every legal guess.
func (d *Dictionary) All() *WordSet {
	ws := d.Empty()
	for i := range d.words {
		ws.bs.Set(uint(i))
	}
	return ws
}

// Answers returns a WordSet holding the answer dictionary.
func (d *Dictionary) Answers() *WordSet {
	ws := d.Empty()
	for _, i := range d.answers {
		ws.bs.Set(uint(i))
	}
	return ws
}

// Empty returns an empty WordSet over d.
func (d *Dictionary) Empty() *WordSet {
	return &WordSet{d: d, bs: bitset.New(uint(len(d.words)))}
}

// WordSet is a mutable set of dictionary words. The game loop owns one per
// game and only mutates it between turns; the solver reads snapshots.
type WordSet struct {
	d  *Dictionary
	bs *bitset.BitSet
}

// Len is the number of words in the set.
func (ws *WordSet) Len() int {
	return int(ws.bs.Count())
}

// Insert adds w and reports whether w is a dictionary word.
func (ws *WordSet) Insert(w Word) bool {
	i, ok := ws.d.index[w]
	if !ok {
		return false
	}
	ws.bs.Set(uint(i))
	return true
}

// Contains reports whether w is in the set.
func (ws *WordSet) Contains(w Word) bool {
	i, ok := ws.d.index[w]
	return ok && ws.bs.Test(uint(i))
}

// Range iterates the set in dictionary order.
// for _, word := range ws.Range { ... }
func (ws *WordSet) Range(yield func(i int, w Word) bool) {
	n := 0
	for i, ok := ws.bs.NextSet(0); ok; i, ok = ws.bs.NextSet(i + 1) {
		if !yield(n, ws.d.words[i]) {
			return
		}
		n++
	}
}

// First returns the first word in dictionary order.
func (ws *WordSet) First() (Word, bool) {
	i, ok := ws.bs.NextSet(0)
	if !ok {
		return Word{}, false
	}
	return ws.d.words[i], true
}

// Words materializes the set as a slice, in dictionary order.
func (ws *WordSet) Words() []Word {
	ret := make([]Word, 0, ws.Len())
	for _, w := range ws.Range {
		ret = append(ret, w)
	}
	return ret
}

// Strings is Words as strings.
func (ws *WordSet) Strings() []string {
	ret := make([]string, 0, ws.Len())
	for _, w := range ws.Range {
		ret = append(ret, w.String())
	}
	return ret
}

// Filter removes every word inconsistent with fb and returns the remaining
// size. Filter only ever shrinks the set.
func (ws *WordSet) Filter(fb Feedback) int {
	for i, ok := ws.bs.NextSet(0); ok; i, ok = ws.bs.NextSet(i + 1) {
		if !fb.Consistent(ws.d.words[i]) {
			ws.bs.Clear(i)
		}
	}
	return ws.Len()
}
