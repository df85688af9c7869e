package routing

// RequestDescriptor is a fully compiled, expression-free request ready for
// an external HTTP transport to dispatch. The compiler never sends it.
type RequestDescriptor struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Query   map[string]string `json:"query,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    map[string]any    `json:"body,omitempty"`
}
