package catalog

import (
	"testing"

	"github.com/kbukum/endpointkit/endpoint"
	"github.com/kbukum/endpointkit/errors"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []endpoint.QueryItem
	}{
		{"none", nil, nil},
		{"ordered", []string{"region=en-US", "page=1"}, []endpoint.QueryItem{{Name: "region", Value: "en-US"}, {Name: "page", Value: "1"}}},
		{"duplicates", []string{"tag=a", "tag=b"}, []endpoint.QueryItem{{Name: "tag", Value: "a"}, {Name: "tag", Value: "b"}}},
		{"bare name", []string{"debug"}, []endpoint.QueryItem{{Name: "debug", Value: ""}}},
		{"value with equals", []string{"q=a=b"}, []endpoint.QueryItem{{Name: "q", Value: "a=b"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts, err := ParseOptions(tc.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(opts) != len(tc.want) {
				t.Fatalf("expected %d options, got %d", len(tc.want), len(opts))
			}
			for i, opt := range opts {
				if got := opt.QueryParameter(); got != tc.want[i] {
					t.Errorf("option %d: expected %+v, got %+v", i, tc.want[i], got)
				}
			}
		})
	}
}

func TestParseOptionsEmptyName(t *testing.T) {
	_, err := ParseOptions([]string{"page=1", "=x"})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestParseParams(t *testing.T) {
	params, err := ParseParams([]string{"id=1", "id=2", "slug=a b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params["id"] != "2" || params["slug"] != "a b" {
		t.Errorf("unexpected params %v", params)
	}
	if _, err := ParseParams([]string{"="}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}
