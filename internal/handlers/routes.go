package handlers

import (
	"ark-lookup-api/pkg/lambda"
)

// Route declares the parameters of one lookup endpoint, in extraction order
type Route struct {
	Base   string
	Params []string
}

// Lookup routes
var (
	ContractRoute = Route{Base: "/contracts", Params: []string{"contract_address"}}
	TokenRoute    = Route{Base: "/tokens", Params: []string{"contract_address", "token_id"}}
	BlockRoute    = Route{Base: "/blocks", Params: []string{"block_hash"}}
	EventRoute    = Route{Base: "/events", Params: []string{"transaction_hash", "event_id"}}
)

// Specs returns the route's parameter declarations read from source
func (r Route) Specs(source lambda.ParamSource) []lambda.ParamSpec {
	specs := make([]lambda.ParamSpec, 0, len(r.Params))
	for _, name := range r.Params {
		specs = append(specs, lambda.ParamSpec{Name: name, Source: source, Format: lambda.FormatHex})
	}
	return specs
}

// Pattern returns the gin path pattern of the route. Query-sourced routes
// take no path segments.
func (r Route) Pattern(source lambda.ParamSource) string {
	if source != lambda.SourcePath {
		return r.Base
	}
	pattern := r.Base
	for _, name := range r.Params {
		pattern += "/:" + name
	}
	return pattern
}
