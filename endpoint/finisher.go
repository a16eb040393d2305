package endpoint

import (
	"net/url"
	"strings"
)

// AppendPath concatenates the variant path to the base path verbatim.
// It is what URL does, expressed as a Finisher.
func AppendPath(c Components, path string) Components {
	c.Path += path
	return c
}

// JoinPath joins base and variant path with exactly one "/" between them.
// An empty variant path leaves the base path unchanged.
func JoinPath(c Components, path string) Components {
	if path == "" {
		return c
	}
	c.Path = strings.TrimRight(c.Path, "/") + "/" + strings.TrimLeft(path, "/")
	return c
}

// TrailingSlash appends the variant path verbatim and makes sure the
// result ends with "/".
func TrailingSlash(c Components, path string) Components {
	c.Path += path
	if !strings.HasSuffix(c.Path, "/") {
		c.Path += "/"
	}
	return c
}

// ExpandPath returns a Finisher that appends the variant path and replaces
// {name} placeholders anywhere in the resulting path with path-escaped
// values, so placeholders in the base path or left by an earlier finisher
// in a Chain are expanded too. Placeholders without a value are left as
// they are.
func ExpandPath(params map[string]string) Finisher {
	return func(c Components, path string) Components {
		c.Path = expandPlaceholders(c.Path+path, params)
		return c
	}
}

func expandPlaceholders(path string, params map[string]string) string {
	var b strings.Builder
	for {
		open := strings.IndexByte(path, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(path[open:], '}')
		if end < 0 {
			break
		}
		end += open
		b.WriteString(path[:open])
		if v, ok := params[path[open+1:end]]; ok {
			b.WriteString(url.PathEscape(v))
		} else {
			b.WriteString(path[open : end+1])
		}
		path = path[end+1:]
	}
	b.WriteString(path)
	return b.String()
}

// Chain runs finishers left to right. The first receives the variant
// path; later ones receive an empty path and refine the components.
func Chain(finishers ...Finisher) Finisher {
	return func(c Components, path string) Components {
		for i, f := range finishers {
			if i > 0 {
				path = ""
			}
			c = f(c, path)
		}
		return c
	}
}
