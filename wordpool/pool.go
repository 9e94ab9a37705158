// Package wordpool loads the embedded Cyrillic dictionaries and serves them
// as an immutable word pool: the valid-guess set plus a curated answer pool
// per word length. Lengths missing from the curated answers fall back to the
// full guess set.
package wordpool

import (
	"bufio"
	"embed"
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"slovli/domain/entities"
	"slovli/domain/interfaces"
)

//go:embed words/*.txt
var wordFiles embed.FS

// Pool is the in-memory dictionary. Immutable after Load; safe for
// concurrent use.
type Pool struct {
	guesses map[string]struct{}
	answers map[int][]string
	byLen   map[int][]string
}

// Load parses the embedded word lists and builds the pool
func Load() (*Pool, error) {
	guesses, err := readWordFile("words/guesses.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to load guess dictionary: %w", err)
	}
	answers, err := readWordFile("words/answers.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to load answer dictionary: %w", err)
	}

	p := &Pool{
		guesses: make(map[string]struct{}, len(guesses)),
		answers: make(map[int][]string),
		byLen:   make(map[int][]string),
	}

	for _, w := range guesses {
		if _, ok := p.guesses[w]; ok {
			continue
		}
		p.guesses[w] = struct{}{}
		n := len([]rune(w))
		p.byLen[n] = append(p.byLen[n], w)
	}

	for _, w := range answers {
		if _, ok := p.guesses[w]; !ok {
			// An answer the guess set does not know would be unguessable
			return nil, fmt.Errorf("answer %q is missing from the guess dictionary", w)
		}
		n := len([]rune(w))
		p.answers[n] = append(p.answers[n], w)
	}

	for _, words := range p.byLen {
		sort.Strings(words)
	}
	for _, words := range p.answers {
		sort.Strings(words)
	}

	for length := entities.MinWordLength; length <= entities.MaxWordLength; length++ {
		log.WithFields(log.Fields{
			"length":  length,
			"guesses": len(p.byLen[length]),
			"answers": len(p.AnswerCandidates(length)),
		}).Debug("Dictionary length loaded")
	}

	return p, nil
}

// readWordFile parses one embedded list: comment and blank lines skipped,
// every word normalized and length-filtered.
func readWordFile(name string) ([]string, error) {
	f, err := wordFiles.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word := normalize(line)
		n := len([]rune(word))
		if n < entities.MinWordLength || n > entities.MaxWordLength {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return words, nil
}

// normalize mirrors the engine's canonical form: uppercase, Ё folded to Е,
// non-alphabet runes dropped.
func normalize(raw string) string {
	upper := strings.ToUpper(raw)
	upper = strings.ReplaceAll(upper, "Ё", "Е")
	var b strings.Builder
	for _, r := range upper {
		if r >= 'А' && r <= 'Я' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Contains reports whether the normalized word is a valid guess
func (p *Pool) Contains(word string) bool {
	_, ok := p.guesses[word]
	return ok
}

// AnswerCandidates returns the answer pool for a length. The curated list
// wins when it covers the length; otherwise all valid guesses qualify.
func (p *Pool) AnswerCandidates(length int) []string {
	if candidates := p.answers[length]; len(candidates) > 0 {
		return candidates
	}
	return p.byLen[length]
}

// HasLength reports whether the base dictionary covers a length
func (p *Pool) HasLength(length int) bool {
	return len(p.byLen[length]) > 0
}

var _ interfaces.WordPool = (*Pool)(nil)
