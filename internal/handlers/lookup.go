package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"

	"ark-lookup-api/internal/metrics"
	"ark-lookup-api/internal/middleware"
	"ark-lookup-api/internal/providers"
	"ark-lookup-api/pkg/lambda"
)

// RequestHeaderID carries the request id set by the local server
const RequestHeaderID = middleware.RequestIDHeader

// RequestHandler turns one request into one response. It never fails.
type RequestHandler interface {
	Handle(ctx context.Context, req *lambda.Request) *lambda.Response
}

// LookupContext is the process-wide state shared by every invocation of a
// lookup handler. It is built once at startup and never mutated.
type LookupContext[C, E any] struct {
	Client   C
	Provider providers.Provider[C, E]
}

// Option configures a LookupHandler
type Option func(*handlerOptions)

type handlerOptions struct {
	timeout  time.Duration
	recorder metrics.Recorder
	logger   *logrus.Logger
}

// WithTimeout bounds each store lookup
func WithTimeout(d time.Duration) Option {
	return func(o *handlerOptions) {
		o.timeout = d
	}
}

// WithMetrics records lookup outcomes
func WithMetrics(r metrics.Recorder) Option {
	return func(o *handlerOptions) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *logrus.Logger) Option {
	return func(o *handlerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// LookupHandler extracts the route parameters, performs a single provider
// lookup and maps the result to a response.
type LookupHandler[C, E any] struct {
	lookup *LookupContext[C, E]
	entity string
	params []lambda.ParamSpec
	handlerOptions
}

// NewLookupHandler creates a handler for one entity kind
func NewLookupHandler[C, E any](lookup *LookupContext[C, E], entity string, params []lambda.ParamSpec, opts ...Option) *LookupHandler[C, E] {
	o := handlerOptions{
		recorder: metrics.Nop{},
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &LookupHandler[C, E]{
		lookup:         lookup,
		entity:         entity,
		params:         params,
		handlerOptions: o,
	}
}

// Handle implements RequestHandler
func (h *LookupHandler[C, E]) Handle(ctx context.Context, req *lambda.Request) *lambda.Response {
	log := h.logger.WithFields(logrus.Fields{
		"entity":     h.entity,
		"request_id": requestID(ctx, req),
	})

	values, err := lambda.RequireParams(req, h.params...)
	if err != nil {
		log.WithError(err).Warn("Rejected lookup request")
		h.recorder.ObserveLookup(h.entity, metrics.OutcomeBadRequest)
		return FromError(err)
	}

	key := providers.Key(values)
	entity, err := h.get(ctx, key)

	resp := Respond(entity, err)
	h.observe(log.WithField("key", key.String()), resp, err)
	return resp
}

func (h *LookupHandler[C, E]) get(ctx context.Context, key providers.Key) (*E, error) {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	start := time.Now()
	entity, err := h.lookup.Provider.Get(ctx, h.lookup.Client, key)
	h.recorder.ObserveStoreLatency(h.entity, time.Since(start))
	return entity, err
}

func (h *LookupHandler[C, E]) observe(log *logrus.Entry, resp *lambda.Response, err error) {
	switch resp.StatusCode {
	case http.StatusOK:
		log.Debug("Entity found")
		h.recorder.ObserveLookup(h.entity, metrics.OutcomeFound)
	case http.StatusNotFound:
		log.Debug("Entity not found")
		h.recorder.ObserveLookup(h.entity, metrics.OutcomeNotFound)
	case http.StatusBadGateway:
		log.WithError(err).Error("Store lookup failed")
		h.recorder.ObserveLookup(h.entity, metrics.OutcomeStoreError)
	default:
		if err != nil {
			log = log.WithError(err)
		}
		log.Error("Lookup failed")
		h.recorder.ObserveLookup(h.entity, metrics.OutcomeServerError)
	}
}

func requestID(ctx context.Context, req *lambda.Request) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	if id := req.Headers[RequestHeaderID]; id != "" {
		return id
	}
	return req.Headers["x-request-id"]
}
