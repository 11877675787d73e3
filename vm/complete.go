package vm

import "strings"

// Candidate is a word that matched a completion prefix.
type Candidate struct {
	Word string
	// PriorityAddr is the program offset of the word's priority byte.
	PriorityAddr int
	Priority     byte
}

// Complete resets the machine and returns the words that start with prefix,
// in program order. A limit of zero or less returns every match. Matches are
// not ranked; Priority is reported as stored.
func (m *Machine) Complete(prefix string, limit int) ([]Candidate, error) {
	m.Reset()
	var out []Candidate
	for word, err := range m.All() {
		if err != nil {
			return out, err
		}
		if !strings.HasPrefix(word, prefix) {
			continue
		}
		addrs := m.PriorityAddrs()
		addr := addrs[len(addrs)-1]
		out = append(out, Candidate{
			Word:         word,
			PriorityAddr: addr,
			Priority:     m.program[addr],
		})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
