package lambda

import (
	"encoding/base64"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func TestFromAPIGateway(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod:            "GET",
		Path:                  "/contracts/0xabc",
		PathParameters:        map[string]string{"contract_address": "0xabc"},
		QueryStringParameters: map[string]string{"verbose": "1"},
		Body:                  base64.StdEncoding.EncodeToString([]byte("{}")),
		IsBase64Encoded:       true,
	}

	req := FromAPIGateway(event)
	if req.Method != "GET" || req.Path != "/contracts/0xabc" {
		t.Errorf("Unexpected method/path: %s %s", req.Method, req.Path)
	}
	if req.PathParams["contract_address"] != "0xabc" {
		t.Errorf("Path params not copied: %v", req.PathParams)
	}
	if string(req.Body) != "{}" {
		t.Errorf("Expected decoded body, got %q", req.Body)
	}
}

func TestFromAPIGatewayV2(t *testing.T) {
	event := events.APIGatewayV2HTTPRequest{
		RawPath:        "/blocks/0x01",
		PathParameters: map[string]string{"block_hash": "0x01"},
	}
	event.RequestContext.HTTP.Method = "GET"

	req := FromAPIGatewayV2(event)
	if req.Method != "GET" || req.PathParams["block_hash"] != "0x01" {
		t.Errorf("Unexpected request: %+v", req)
	}
}

func TestToAPIGateway(t *testing.T) {
	resp := &Response{StatusCode: 404, Headers: map[string]string{"Content-Type": "application/json"}, Body: []byte(`{"message":"not found"}`)}
	out := resp.ToAPIGateway()
	if out.StatusCode != 404 || out.Body != `{"message":"not found"}` || out.Headers["Content-Type"] != "application/json" {
		t.Errorf("Unexpected conversion: %+v", out)
	}
}
