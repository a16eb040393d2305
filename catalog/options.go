package catalog

import (
	"fmt"
	"strings"

	"github.com/kbukum/endpointkit/endpoint"
	"github.com/kbukum/endpointkit/errors"
)

// ParseOptions turns "name=value" arguments into query options, keeping
// their order and duplicates. An argument without "=" yields an empty
// value.
func ParseOptions(args []string) ([]endpoint.Option, error) {
	if len(args) == 0 {
		return nil, nil
	}
	opts := make([]endpoint.Option, 0, len(args))
	for _, arg := range args {
		name, value, err := splitPair("option", arg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, endpoint.Param(name, value))
	}
	return opts, nil
}

// ParseParams turns "name=value" arguments into path template parameters
// for endpoint.ExpandPath. A repeated name keeps the last value.
func ParseParams(args []string) (map[string]string, error) {
	params := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, err := splitPair("template", arg)
		if err != nil {
			return nil, err
		}
		params[name] = value
	}
	return params, nil
}

func splitPair(field, arg string) (string, string, error) {
	name, value, _ := strings.Cut(arg, "=")
	if name == "" {
		return "", "", errors.InvalidInput(field, fmt.Sprintf("%q has an empty name", arg))
	}
	return name, value, nil
}
