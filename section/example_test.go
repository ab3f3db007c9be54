package section_test

import (
	"fmt"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/section"
	"github.com/0xalexb/hjarta-conf/tree"
)

// APIConfig is the "services.api" section.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
	Retries int    `yaml:"retries"`
}

func ExampleProvider() {
	cfg := conf.NewConfig(tree.MustFromAny(map[string]any{
		"services": map[string]any{
			"api": map[string]any{"base_url": "https://api.example.com", "timeout": 5},
		},
	}))

	provide := section.Provider(new(APIConfig), "services.api",
		section.WithDefaults(APIConfig{Timeout: 30, Retries: 3}),
	)

	api, err := provide(cfg)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(api.BaseURL, api.Timeout, api.Retries)
	// Output:
	// https://api.example.com 5 3
}
