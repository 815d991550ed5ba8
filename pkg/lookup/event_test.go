package lookup

import (
	"strings"
	"testing"
)

func TestExtractTerm(t *testing.T) {

	tt := []struct {
		name  string
		event Event
		term  string
		err   string
	}{
		{name: "query", event: Event{QueryStringParameters: map[string]string{"term": "S3"}}, term: "S3"},
		{name: "path", event: Event{PathParameters: map[string]string{"term": "EC2"}}, term: "EC2"},
		{name: "body", event: Event{Body: `{"term":"IAM"}`}, term: "IAM"},
		{name: "direct", event: Event{Term: "VPC"}, term: "VPC"},
		{name: "query_beats_path", event: Event{
			QueryStringParameters: map[string]string{"term": "S3"},
			PathParameters:        map[string]string{"term": "EC2"},
		}, term: "S3"},
		{name: "path_beats_body", event: Event{
			PathParameters: map[string]string{"term": "EC2"},
			Body:           `{"term":"IAM"}`,
		}, term: "EC2"},
		{name: "body_beats_direct", event: Event{
			Body: `{"term":"IAM"}`,
			Term: "VPC",
		}, term: "IAM"},
		{name: "empty_query_falls_through", event: Event{
			QueryStringParameters: map[string]string{"term": ""},
			Term:                  "VPC",
		}, term: "VPC"},
		{name: "body_without_term_falls_through", event: Event{
			Body: `{"word":"IAM"}`,
			Term: "VPC",
		}, term: "VPC"},
		{name: "nothing", event: Event{}, term: ""},
		{name: "malformed_body", event: Event{Body: `{"term":"IAM"`}, err: "could not parse request body"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {

			term, err := tc.event.extractTerm()
			if err != nil {
				if msg := err.Error(); !strings.Contains(msg, tc.err) {
					t.Errorf("expected error %q, got: %q", tc.err, msg)
				}
				return
			}
			if tc.err != "" {
				t.Fatalf("expected error %q, got none", tc.err)
			}

			if term != tc.term {
				t.Errorf("expected %q, got %q", tc.term, term)
			}
		})
	}
}
