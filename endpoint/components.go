package endpoint

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/idna"

	"github.com/kbukum/endpointkit/errors"
)

const maxPort = 65535

// Components is the structured form of a URL before serialization.
// Every build starts from a fresh value; finishers receive and return
// copies.
type Components struct {
	Scheme string
	Host   string
	Port   *int
	Path   string
	Query  []QueryItem
}

// URL serializes the components. The path is used verbatim apart from
// percent-encoding characters that cannot appear in a path; escapes already
// present are kept. Query items keep their order and duplicates.
func (c Components) URL() (*url.URL, error) {
	host, err := normalizeHost(c.Host)
	if err != nil {
		return nil, err
	}
	if c.Port != nil {
		if *c.Port < 0 || *c.Port > maxPort {
			return nil, errors.InvalidPort(*c.Port)
		}
		host = net.JoinHostPort(host, strconv.Itoa(*c.Port))
	} else if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}

	if c.Path != "" && !strings.HasPrefix(c.Path, "/") {
		return nil, errors.InvalidPath(c.Path, `must start with "/" when a host is present`)
	}

	u := &url.URL{
		Scheme:   c.Scheme,
		Host:     host,
		Path:     c.Path,
		RawQuery: encodeQuery(c.Query),
	}
	// Keep escapes that are already present, such as those written by
	// ExpandPath; a path that does not unescape is taken literally.
	if decoded, err := url.PathUnescape(c.Path); err == nil && decoded != c.Path {
		u.Path, u.RawPath = decoded, c.Path
	}
	return u, nil
}

// hostProfile maps names like idna.Lookup but without the strict
// domain-name rules, so "_" passes as RFC 3986 allows in a reg-name.
// Characters those rules would have rejected are caught by validHostName.
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.StrictDomainName(false),
	idna.Transitional(false),
	idna.BidiRule(),
)

// normalizeHost maps host to the ASCII form used in URLs. IP literals are
// returned unchanged (without brackets); names are IDNA-mapped, which
// lowercases them and converts non-ASCII labels to punycode.
func normalizeHost(host string) (string, error) {
	if host == "" {
		return "", errors.MissingField("host")
	}
	if trimmed := strings.TrimSuffix(strings.TrimPrefix(host, "["), "]"); net.ParseIP(trimmed) != nil {
		return trimmed, nil
	}
	ascii, err := hostProfile.ToASCII(host)
	if err != nil {
		return "", errors.InvalidHost(host, err)
	}
	if !validHostName(ascii) {
		return "", errors.InvalidHost(host, nil)
	}
	return ascii, nil
}

// validHostName reports whether s uses only letters, digits and "-._~".
func validHostName(s string) bool {
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		case b == '-', b == '.', b == '_', b == '~':
		default:
			return false
		}
	}
	return true
}

// encodeQuery joins items as name=value pairs with "&" in input order.
// url.Values is not used because its Encode sorts by key.
func encodeQuery(items []QueryItem) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escapeQuery(item.Name))
		b.WriteByte('=')
		b.WriteString(escapeQuery(item.Value))
	}
	return b.String()
}

// escapeQuery percent-encodes s for a query component, spaces as %20.
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
