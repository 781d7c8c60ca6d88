// Package config provides configuration infrastructure and Fx modules.
package config

import (
	"go.uber.org/fx"
)

// Module provides configuration dependencies. It expects the config file
// path to be supplied as a string.
var Module = fx.Module("config",
	fx.Provide(LoadConfig),
)
