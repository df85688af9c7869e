package schema

// RoutingSpec is the declarative HTTP request template attached to a
// property, an option, or the node's request defaults. String-valued fields
// may embed expressions evaluated against the resolved parameter tree.
type RoutingSpec struct {
	Method  string            `json:"method,omitempty"  mapstructure:"method"`
	URL     string            `json:"url,omitempty"     mapstructure:"url"`
	Query   map[string]string `json:"query,omitempty"   mapstructure:"query"`
	Headers map[string]string `json:"headers,omitempty" mapstructure:"headers"`
	Body    map[string]any    `json:"body,omitempty"    mapstructure:"body"`
}

// HTTPMethods lists the methods a routing spec may declare.
var HTTPMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}

// ValidMethod reports whether m is an accepted HTTP method. The empty string
// is accepted: partial specs omit the method and rely on merging.
func ValidMethod(m string) bool {
	if m == "" {
		return true
	}

	for _, known := range HTTPMethods {
		if m == known {
			return true
		}
	}

	return false
}

// Merge overlays other on top of s field by field: a field set on other wins,
// an absent field keeps the receiver's value. Neither input is mutated.
func (s *RoutingSpec) Merge(other *RoutingSpec) *RoutingSpec {
	merged := &RoutingSpec{}
	if s != nil {
		*merged = *s
	}

	if other == nil {
		return merged
	}

	if other.Method != "" {
		merged.Method = other.Method
	}

	if other.URL != "" {
		merged.URL = other.URL
	}

	if other.Query != nil {
		merged.Query = other.Query
	}

	if other.Headers != nil {
		merged.Headers = other.Headers
	}

	if other.Body != nil {
		merged.Body = other.Body
	}

	return merged
}
