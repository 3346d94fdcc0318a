package lambda

import (
	"errors"
	"testing"
)

func TestRequireParam(t *testing.T) {
	spec := ParamSpec{Name: "contract_address", Source: SourcePath, Format: FormatHex}

	tests := []struct {
		name    string
		params  map[string]string
		want    string
		wantErr error
	}{
		{name: "PrefixedUpperCase", params: map[string]string{"contract_address": "0xABCDEF"}, want: "abcdef"},
		{name: "UpperCasePrefix", params: map[string]string{"contract_address": "0XabC1"}, want: "abc1"},
		{name: "NoPrefix", params: map[string]string{"contract_address": "1234"}, want: "1234"},
		{name: "OddLengthAllowed", params: map[string]string{"contract_address": "0x123"}, want: "123"},
		{name: "Missing", params: map[string]string{}, wantErr: ErrMissingParameter},
		{name: "NilMap", params: nil, wantErr: ErrMissingParameter},
		{name: "Empty", params: map[string]string{"contract_address": "  "}, wantErr: ErrMissingParameter},
		{name: "NonHex", params: map[string]string{"contract_address": "zz11"}, wantErr: ErrInvalidParameter},
		{name: "BarePrefix", params: map[string]string{"contract_address": "0x"}, wantErr: ErrInvalidParameter},
		{name: "DoublePrefix", params: map[string]string{"contract_address": "0x0x12"}, wantErr: ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &Request{PathParams: tt.params}
			got, err := RequireParam(req, spec)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
				if !IsParamError(err) {
					t.Errorf("Expected a ParamError, got %T", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("RequireParam failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRequireParamHexBytes(t *testing.T) {
	spec := ParamSpec{Name: "token_id", Source: SourceQuery, Format: FormatHexBytes}

	if _, err := RequireParam(&Request{QueryParams: map[string]string{"token_id": "0xabc"}}, spec); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected odd-length value to be invalid, got %v", err)
	}

	got, err := RequireParam(&Request{QueryParams: map[string]string{"token_id": "0x0ABC"}}, spec)
	if err != nil {
		t.Fatalf("RequireParam failed: %v", err)
	}
	if got != "0abc" {
		t.Errorf("Expected 0abc, got %q", got)
	}
}

func TestRequireParamSource(t *testing.T) {
	req := &Request{
		PathParams:  map[string]string{"address": "aa"},
		QueryParams: map[string]string{"other": "bb"},
	}

	if _, err := RequireParam(req, ParamSpec{Name: "address", Source: SourceQuery}); !errors.Is(err, ErrMissingParameter) {
		t.Errorf("Query lookup must not read path params, got %v", err)
	}
	if _, err := RequireParam(req, ParamSpec{Name: "address", Source: SourcePath}); err != nil {
		t.Errorf("Path lookup failed: %v", err)
	}
}

func TestParamErrorMessage(t *testing.T) {
	_, err := RequireParam(&Request{}, ParamSpec{Name: "contract_address"})
	if err == nil {
		t.Fatal("Expected an error")
	}
	if err.Error() != "missing parameter: contract_address" {
		t.Errorf("Unexpected message %q", err.Error())
	}

	_, err = RequireParam(&Request{PathParams: map[string]string{"contract_address": "zz"}}, ParamSpec{Name: "contract_address"})
	if err.Error() != "invalid parameter: contract_address" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}

func TestRequireParamsShortCircuits(t *testing.T) {
	req := &Request{PathParams: map[string]string{"b": "zz"}}
	specs := []ParamSpec{{Name: "a"}, {Name: "b"}}

	_, err := RequireParams(req, specs...)
	var paramErr *ParamError
	if !errors.As(err, &paramErr) {
		t.Fatalf("Expected ParamError, got %v", err)
	}
	if paramErr.Name != "a" {
		t.Errorf("Expected first declared parameter to fail, got %s", paramErr.Name)
	}

	req.PathParams["a"] = "0x01"
	req.PathParams["b"] = "0X02"
	values, err := RequireParams(req, specs...)
	if err != nil {
		t.Fatalf("RequireParams failed: %v", err)
	}
	if len(values) != 2 || values[0] != "01" || values[1] != "02" {
		t.Errorf("Unexpected values %v", values)
	}
}

func TestParseParamSource(t *testing.T) {
	if s, err := ParseParamSource("Query"); err != nil || s != SourceQuery {
		t.Errorf("Expected query source, got %v, %v", s, err)
	}
	if s, err := ParseParamSource(""); err != nil || s != SourcePath {
		t.Errorf("Expected default path source, got %v, %v", s, err)
	}
	if _, err := ParseParamSource("header"); err == nil {
		t.Error("Expected error for unknown source")
	}
}
