package grader

// Grader decides whether a submitted answer matches the stored one.
// The stored answer is always text; submitted is any decoded JSON value
// (nil, string, float64, json.Number, bool, []any or map[string]any).
type Grader interface {
	Grade(stored string, submitted any) bool
}
