package bwprovider

import (
	"github.com/basewarphq/bwsls/bwhost"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

// Params are the dependencies Module resolves from the fx graph.
type Params struct {
	fx.In

	Framework      *bwhost.Framework
	Logger         Logger               `optional:"true"`
	TracerProvider trace.TracerProvider `optional:"true"`
}

// NewFromParams creates a Provider from injected dependencies.
func NewFromParams(params Params) (*Provider, error) {
	var opts []Option
	if params.Logger != nil {
		opts = append(opts, WithLogger(params.Logger))
	}
	if params.TracerProvider != nil {
		opts = append(opts, WithSDKOptions(WithTracerProvider(params.TracerProvider)))
	}
	return New(params.Framework, opts...)
}

// Module provides *Provider to an fx application. The provider is
// constructed eagerly so that it is registered with the framework on start.
var Module = fx.Module("bwprovider",
	fx.Provide(NewFromParams),
	fx.Invoke(func(*Provider) {}),
)
