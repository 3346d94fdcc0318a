package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"ark-lookup-api/internal/middleware"
	"ark-lookup-api/internal/models"
	"ark-lookup-api/pkg/lambda"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type captureHandler struct {
	req  *lambda.Request
	resp *lambda.Response
}

func (h *captureHandler) Handle(ctx context.Context, req *lambda.Request) *lambda.Response {
	h.req = req
	return h.resp
}

func TestGinHandlerConvertsRequest(t *testing.T) {
	h := &captureHandler{resp: NotFound()}
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET(TokenRoute.Pattern(lambda.SourcePath), GinHandler(h))

	req := httptest.NewRequest(http.MethodGet, "/tokens/0xAB/0x01?verbose=1", nil)
	req.Header.Set(middleware.RequestIDHeader, "gin-7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if h.req == nil {
		t.Fatal("handler was not called")
	}
	if h.req.PathParams["contract_address"] != "0xAB" || h.req.PathParams["token_id"] != "0x01" {
		t.Errorf("unexpected path params %v", h.req.PathParams)
	}
	if h.req.QueryParams["verbose"] != "1" {
		t.Errorf("unexpected query params %v", h.req.QueryParams)
	}
	if h.req.Headers[RequestHeaderID] != "gin-7" {
		t.Errorf("expected request id header, got %v", h.req.Headers)
	}
	if h.req.Method != http.MethodGet || h.req.Path != "/tokens/0xAB/0x01" {
		t.Errorf("unexpected method/path %s %s", h.req.Method, h.req.Path)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestGinHandlerEndToEnd(t *testing.T) {
	store := &fakeStore{contracts: map[string]models.Contract{"abcdef": everai}}
	h := newContractHandler(store)

	r := gin.New()
	r.GET(ContractRoute.Pattern(lambda.SourcePath), GinHandler(h))

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/contracts/0xABCDEF", http.StatusOK},
		{"/contracts/0x0123", http.StatusNotFound},
		{"/contracts/zz11", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d (%s)", tt.wantStatus, w.Code, w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected application/json, got %q", ct)
			}
		})
	}
}
