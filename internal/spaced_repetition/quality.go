package spaced_repetition

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strings"
)

// RecallQuality is the coarse grade a learner gives after seeing a word
type RecallQuality int

const (
	// Again means the word was forgotten
	Again RecallQuality = iota + 1
	// Good means a correct answer with normal effort
	Good
	// Easy means the answer was trivial
	Easy
)

var qualityNames = [...]string{Again: "again", Good: "good", Easy: "easy"}

var (
	_ fmt.Stringer             = RecallQuality(0)
	_ json.Marshaler           = RecallQuality(0)
	_ json.Unmarshaler         = (*RecallQuality)(nil)
	_ encoding.TextMarshaler   = RecallQuality(0)
	_ encoding.TextUnmarshaler = (*RecallQuality)(nil)
)

// IsValid reports whether q is Again, Good or Easy
func (q RecallQuality) IsValid() bool {
	return q >= Again && q <= Easy
}

func (q RecallQuality) String() string {
	if q.IsValid() {
		return qualityNames[q]
	}
	return fmt.Sprintf("RecallQuality(%d)", int(q))
}

// ParseRecallQuality parses "again", "good" or "easy" (case-insensitive).
// The digits 1-3 are accepted as well.
func ParseRecallQuality(s string) (RecallQuality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "again", "1":
		return Again, nil
	case "good", "2":
		return Good, nil
	case "easy", "3":
		return Easy, nil
	}
	return 0, fmt.Errorf("%w: unknown recall quality %q", ErrInvalidInput, s)
}

// MarshalText implements encoding.TextMarshaler
func (q RecallQuality) MarshalText() ([]byte, error) {
	if !q.IsValid() {
		return nil, fmt.Errorf("%w: recall quality %d", ErrInvalidInput, int(q))
	}
	return []byte(qualityNames[q]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (q *RecallQuality) UnmarshalText(text []byte) error {
	v, err := ParseRecallQuality(string(text))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

// MarshalJSON encodes the quality as a JSON string
func (q RecallQuality) MarshalJSON() ([]byte, error) {
	text, err := q.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON expects a JSON string
func (q *RecallQuality) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: recall quality %s", ErrInvalidInput, data)
	}
	return q.UnmarshalText([]byte(s))
}
