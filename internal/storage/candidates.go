package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Candidate is one input line. Candidates are never copied after loading;
// match lists refer to them by their index in the store.
type Candidate struct {
	Text string

	// folded is Text under case folding, filled in by FoldWith.
	folded string
}

// Folded returns the case-folded text, or Text when folding is off.
func (c *Candidate) Folded() string {
	if c.folded == "" {
		return c.Text
	}
	return c.folded
}

// CandidateStore is the ordered arena of candidates read at startup.
type CandidateStore struct {
	items  []Candidate
	widest int // display width of the widest line, sizes the query field
}

// NewCandidateStore builds a store from already split lines.
func NewCandidateStore(lines []string) *CandidateStore {
	s := &CandidateStore{items: make([]Candidate, 0, len(lines))}
	for _, l := range lines {
		s.add(l)
	}
	return s
}

// ReadCandidates reads newline separated candidates from r until EOF.
// Lines have no length limit; a trailing CR is dropped with the LF.
func ReadCandidates(r io.Reader) (*CandidateStore, error) {
	s := &CandidateStore{}
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			s.add(line)
		}
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read candidates: %w", err)
		}
	}
}

func (s *CandidateStore) add(text string) {
	s.items = append(s.items, Candidate{Text: text})
	s.widest = max(s.widest, runewidth.StringWidth(text))
}

// FoldWith precomputes the folded form of every candidate.
func (s *CandidateStore) FoldWith(fold func(string) string) {
	for i := range s.items {
		s.items[i].folded = fold(s.items[i].Text)
	}
}

// Len returns the number of candidates.
func (s *CandidateStore) Len() int {
	return len(s.items)
}

// At returns the candidate at index i.
func (s *CandidateStore) At(i int) *Candidate {
	return &s.items[i]
}

// Text returns the text of candidate i.
func (s *CandidateStore) Text(i int) string {
	return s.items[i].Text
}

// MaxWidth returns the display width of the widest line.
func (s *CandidateStore) MaxWidth() int {
	return s.widest
}
