package engine

// VisualizeRequest represents a request to visualize one expression.
type VisualizeRequest struct {
	// Expression is the raw user input, e.g. "1/4 + 2/3"
	Expression string
}
