package endpoint

// QueryItem is one name/value pair of a URL query.
type QueryItem struct {
	Name  string
	Value string
}

// Option is a typed value that renders itself as a query parameter.
// QueryParameter must be pure: the same option always yields the same item.
type Option interface {
	QueryParameter() QueryItem
}

// OptionFunc adapts a function to Option.
type OptionFunc func() QueryItem

// QueryParameter calls f.
func (f OptionFunc) QueryParameter() QueryItem { return f() }

// Param returns an Option rendering the literal name=value pair.
func Param(name, value string) Option {
	return QueryItem{Name: name, Value: value}
}

// QueryParameter returns the item itself, so a QueryItem is an Option.
func (q QueryItem) QueryParameter() QueryItem { return q }

// queryItems converts options in order, keeping duplicates. Nil entries
// are skipped; a list with nothing left yields nil.
func queryItems(opts []Option) []QueryItem {
	var items []QueryItem
	for _, o := range opts {
		if o == nil {
			continue
		}
		items = append(items, o.QueryParameter())
	}
	return items
}
