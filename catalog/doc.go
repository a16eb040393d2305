// Package catalog declares endpoint families in a configuration file
// instead of Go types. A catalog file maps family names to a connection
// configuration, a base path and named endpoint paths:
//
//	name: public-apis
//	logging:
//	  level: debug
//	families:
//	  movies:
//	    host: api.example.com
//	    base_path: /api/v2
//	    endpoints:
//	      most_popular: /most_popular
//	      top_rated: /top_rated
//
// Files are read with the config package, so YAML, JSON and TOML work and
// values can be overridden from the environment. Family and endpoint
// names read from a file are lower case.
package catalog
