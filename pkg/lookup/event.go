package lookup

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Event is an inbound lookup request. Any subset of the term sources
// may be present; API Gateway fills the first three, the top level
// Term supports direct invocation.
type Event struct {
	QueryStringParameters map[string]string `json:"queryStringParameters,omitempty"`
	PathParameters        map[string]string `json:"pathParameters,omitempty"`
	Body                  string            `json:"body,omitempty"`
	Term                  string            `json:"term,omitempty"`
}

// extractTerm resolves the search term, first non-empty source wins:
// query string, then path, then request body, then the event itself.
func (e *Event) extractTerm() (string, error) {

	if t := e.QueryStringParameters["term"]; t != "" {
		return t, nil
	}

	if t := e.PathParameters["term"]; t != "" {
		return t, nil
	}

	if e.Body != "" {
		if !gjson.Valid(e.Body) {
			return "", fmt.Errorf("could not parse request body")
		}
		if t := gjson.Get(e.Body, "term").Str; t != "" {
			return t, nil
		}
	}

	return e.Term, nil
}
