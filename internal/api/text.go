package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/course-questions/backend/internal/grader"
)

// Text is a request field stored as text. Clients may send a JSON string,
// number or boolean. Numbers are stored in their canonical printed form
// (2.0 becomes "2", 1e3 becomes "1000") and booleans become "1" or "0",
// the way a VARCHAR column would store them. Set is false when
// the field was absent or null.
type Text struct {
	Value string
	Set   bool
}

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*t = Text{}
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text{Value: s, Set: true}
		return nil
	case bytes.Equal(b, []byte("true")):
		*t = Text{Value: "1", Set: true}
		return nil
	case bytes.Equal(b, []byte("false")):
		*t = Text{Value: "0", Set: true}
		return nil
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		// Out-of-range literals parse to ±Inf along with ErrRange.
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return err
		}
		*t = Text{Value: grader.NumberText(f), Set: true}
		return nil
	default:
		return errors.New("expected a string, number or boolean")
	}
}
