package conf

import (
	"log/slog"

	"github.com/0xalexb/hjarta-conf/pathspec"

	"go.uber.org/fx"
)

// ModuleName is the Fx module name used by Module.
const ModuleName = "conf"

type moduleParams struct {
	fx.In

	Logger *slog.Logger `optional:"true"`
}

// Module creates an Fx module that loads spec once and provides the merged *Config.
// A *slog.Logger from the container is used unless opts set one explicitly.
// A failed load fails application construction.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(spec pathspec.Spec, opts ...Option) fx.Option {
	return fx.Module(ModuleName,
		fx.Provide(func(params moduleParams) (*Config, error) {
			loaderOpts := make([]Option, 0, len(opts)+1)
			if params.Logger != nil {
				loaderOpts = append(loaderOpts, WithLogger(params.Logger.With(slog.String("module", ModuleName))))
			}

			loaderOpts = append(loaderOpts, opts...)

			return New(loaderOpts...).Load(spec)
		}),
	)
}
