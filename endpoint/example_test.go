package endpoint_test

import (
	"fmt"

	"github.com/kbukum/endpointkit/endpoint"
	"github.com/kbukum/endpointkit/logger"
	"github.com/kbukum/endpointkit/util"
)

type Repos int

const (
	ListRepos Repos = iota
	GetRepo
)

func (r Repos) Path() string {
	switch r {
	case ListRepos:
		return "/repos"
	case GetRepo:
		return "/repos/{owner}/{repo}"
	default:
		panic(fmt.Sprintf("unknown repos endpoint %d", int(r)))
	}
}

type page int

func (p page) QueryParameter() endpoint.QueryItem {
	return endpoint.QueryItem{Name: "page", Value: fmt.Sprint(int(p))}
}

func ExampleFamily_URL() {
	repos := endpoint.NewFamily[Repos](
		endpoint.Config{Host: "git.example.com", Port: util.Ptr(8443)},
		"/api/v1",
		endpoint.WithLogger(logger.NewNop()),
	)

	fmt.Println(repos.URL(ListRepos))
	fmt.Println(repos.URL(ListRepos, page(2), endpoint.Param("sort", "updated")))
	fmt.Println(repos.BaseURL())
	// Output:
	// https://git.example.com:8443/api/v1/repos
	// https://git.example.com:8443/api/v1/repos?page=2&sort=updated
	// https://git.example.com:8443/api/v1
}

func ExampleFamily_CustomURL() {
	repos := endpoint.NewFamily[Repos](
		endpoint.Config{Host: "git.example.com"},
		"/api/v1",
		endpoint.WithLogger(logger.NewNop()),
	)

	expand := endpoint.ExpandPath(map[string]string{"owner": "kbukum", "repo": "endpointkit"})
	fmt.Println(repos.CustomURL(GetRepo, expand))
	// Output:
	// https://git.example.com/api/v1/repos/kbukum/endpointkit
}

func ExampleConfig_embedding() {
	type ServiceConfig struct {
		endpoint.Config `mapstructure:",squash"`
		Token           string
	}

	cfg := ServiceConfig{Config: endpoint.Config{Host: "localhost", DisableSecureConnection: true}}
	repos := endpoint.NewFamily[Repos](cfg, "", endpoint.WithLogger(logger.NewNop()))
	fmt.Println(repos.URL(ListRepos))
	// Output:
	// http://localhost/repos
}
