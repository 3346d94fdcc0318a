package server

import (
	"fmt"

	"ark-lookup-api/internal/config"
	"ark-lookup-api/internal/handlers"
	"ark-lookup-api/internal/providers"
	"ark-lookup-api/internal/providers/dynamo"
	"ark-lookup-api/internal/providers/rediskv"
	"ark-lookup-api/internal/providers/sqlite"
)

// NewLookupHandler binds a provider for kind to the container's store client
// and returns the handler serving route. The lookup context is built once
// here and shared by every invocation.
func NewLookupHandler[E any](c *Container, kind providers.Kind[E], route handlers.Route) (handlers.RequestHandler, error) {
	if len(route.Params) != kind.Arity {
		return nil, fmt.Errorf("%w: %s route declares %d parameters, kind expects %d",
			providers.ErrInvalidKey, kind.Name, len(route.Params), kind.Arity)
	}

	store := c.Config.Store
	specs := route.Specs(c.ParamSource)
	opts := []handlers.Option{
		handlers.WithTimeout(store.Timeout),
		handlers.WithMetrics(c.Metrics),
		handlers.WithLogger(c.Logger),
	}

	switch {
	case c.dynamo != nil:
		lookup := &handlers.LookupContext[dynamo.API, E]{
			Client:   c.dynamo,
			Provider: dynamo.New(store.TableName, kind, dynamo.WithConsistentRead(store.DynamoDB.ConsistentRead)),
		}
		return handlers.NewLookupHandler(lookup, kind.Name, specs, opts...), nil
	case c.sqlite != nil:
		lookup := &handlers.LookupContext[sqlite.Querier, E]{
			Client:   c.sqlite.GetDB(),
			Provider: sqlite.New(store.TableName, kind),
		}
		return handlers.NewLookupHandler(lookup, kind.Name, specs, opts...), nil
	case c.redis != nil:
		lookup := &handlers.LookupContext[rediskv.Getter, E]{
			Client:   c.redis,
			Provider: rediskv.New(store.TableName, kind),
		}
		return handlers.NewLookupHandler(lookup, kind.Name, specs, opts...), nil
	}

	return nil, &config.Error{Setting: "ARK_STORE_BACKEND", Reason: "no store client open"}
}
