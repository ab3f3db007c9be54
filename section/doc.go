// Package section decodes one part of a merged configuration into a typed struct.
//
// A section is addressed by a dotted key ("database", "services.api",
// "servers.0"); the empty key selects the whole document. Fields are matched
// through `yaml` struct tags. After decoding, Provider applies in order:
//   - WithDefaults: zero fields are filled from a defaults value (dario.cat/mergo)
//   - WithEnv: fields tagged `env:"..."` are overridden from the environment
//     (github.com/caarlos0/env/v11)
//   - Defaulter.SetDefaults when the target implements it
//   - Validator.Validate when the target implements it
//
// Provider returns a plain constructor, so it can be passed to fx.Provide next to
// conf.Module:
//
//	type APIConfig struct {
//	    Timeout int    `yaml:"timeout" env:"TIMEOUT"`
//	    BaseURL string `yaml:"base_url"`
//	}
//
//	fx.Provide(section.Provider(new(APIConfig), "services.api", section.WithEnv("API_")))
package section
