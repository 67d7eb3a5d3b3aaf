package bridge

import (
	"reflect"
	"testing"
)

func TestNormalize_JSONObject(t *testing.T) {
	res := Result{StatusCode: 200, StatusText: "OK", RawBody: []byte(`{"id":1,"name":"A"}`)}

	v := Normalize(res)
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", v)
	}
	if m["name"] != "A" {
		t.Errorf("expected name A, got %v", m["name"])
	}
}

func TestNormalize_JSONArray(t *testing.T) {
	res := Result{StatusCode: 200, StatusText: "OK", RawBody: []byte(`[1,2,3]`)}

	v := Normalize(res)
	arr, ok := v.([]any)
	if !ok {
		t.Fatalf("expected slice, got %T", v)
	}
	if len(arr) != 3 {
		t.Errorf("expected 3 elements, got %d", len(arr))
	}
}

func TestNormalize_JSONScalar(t *testing.T) {
	res := Result{StatusCode: 200, StatusText: "OK", RawBody: []byte(`42`)}

	v := Normalize(res)
	if v != float64(42) {
		t.Errorf("expected 42, got %v (%T)", v, v)
	}
}

func TestNormalize_JSONNull(t *testing.T) {
	res := Result{StatusCode: 200, StatusText: "OK", RawBody: []byte(`null`)}

	if v := Normalize(res); v != nil {
		t.Errorf("expected nil, got %v", v)
	}
}

func TestNormalize_NonJSONText(t *testing.T) {
	res := Result{StatusCode: 503, StatusText: "Service Unavailable", RawBody: []byte("upstream exploded")}

	if v := Normalize(res); v != "upstream exploded" {
		t.Errorf("expected raw text, got %v", v)
	}
}

func TestNormalize_EmptyBodySynthesizesStatus(t *testing.T) {
	res := Result{StatusCode: 503, StatusText: "Service Unavailable", RawBody: nil}

	if v := Normalize(res); v != "503 Service Unavailable" {
		t.Errorf("expected synthesized status string, got %v", v)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	results := []Result{
		{StatusCode: 200, StatusText: "OK", RawBody: []byte(`{"a":[1,"x",null]}`)},
		{StatusCode: 500, StatusText: "Internal Server Error", RawBody: []byte("boom")},
		{StatusCode: 204, StatusText: "No Content", RawBody: nil},
	}

	for _, res := range results {
		first := Normalize(res)
		second := Normalize(res)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("normalize not idempotent for %q: %v vs %v", res.RawBody, first, second)
		}
	}
}
