package codec

import "go.uber.org/fx"

// Module provides the codec Service.
var Module = fx.Module("codec",
	fx.Provide(NewService),
)
