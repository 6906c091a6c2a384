package question

import (
	"math"
	"strconv"
	"strings"
)

// Question is a multiple-choice item tied to a course owned by the
// external course service.
type Question struct {
	ID       int64
	CourseID string
	Question string
	Opt1     string
	Opt2     string
	Opt3     string
	Opt4     string
	Ans      string // compared loosely, see grader.Loose
}

func New(courseID, text, opt1, opt2, opt3, opt4, ans string) *Question {
	return &Question{
		CourseID: courseID,
		Question: text,
		Opt1:     opt1,
		Opt2:     opt2,
		Opt3:     opt3,
		Opt4:     opt4,
		Ans:      ans,
	}
}

// ParseID converts a client supplied identifier into a question ID.
// Integral floats such as "3.0" are accepted; anything else reports false.
func ParseID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	// float64(math.MaxInt64) rounds up to 2^63, which does not fit.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}
