package api

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFields_Access(t *testing.T) {
	fields := Fields{
		{Key: "first", Value: "a"},
		{Key: "second", Value: "b"},
	}

	if v, ok := fields.First(); !ok || v != "a" {
		t.Errorf("First() = %v, %v, want a, true", v, ok)
	}
	if v, ok := fields.Get("second"); !ok || v != "b" {
		t.Errorf("Get(second) = %v, %v, want b, true", v, ok)
	}
	if _, ok := fields.Get("missing"); ok {
		t.Error("Get(missing) found a value")
	}
	if fields.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fields.Len())
	}

	var empty Fields
	if _, ok := empty.First(); ok {
		t.Error("First() on empty fields found a value")
	}
}

func TestFields_Set(t *testing.T) {
	fields := Fields{{Key: "a", Value: 1}}

	fields = fields.Set("b", 2)
	fields = fields.Set("a", 3)

	if fields.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", fields.Len())
	}
	if v, _ := fields.Get("a"); v != 3 {
		t.Errorf("Get(a) = %v, want 3 after replace", v)
	}
	if v, ok := fields.First(); !ok || v != 3 {
		t.Errorf("First() = %v, want replaced entry to keep its position", v)
	}
}

func TestFields_MarshalJSON_PreservesOrder(t *testing.T) {
	fields := Fields{
		{Key: "zebra", Value: "z"},
		{Key: "alpha", Value: 1},
		{Key: "mid", Value: map[string]any{"nested": true}},
	}

	data, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"zebra":"z","alpha":1,"mid":{"nested":true}}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestFields_UnmarshalJSON_PreservesOrder(t *testing.T) {
	// Keys deliberately in non-alphabetical order; a plain map would lose it.
	doc := `{"zebra":"first","alpha":"second","mango":"third"}`

	var fields Fields
	if err := json.Unmarshal([]byte(doc), &fields); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	wantKeys := []string{"zebra", "alpha", "mango"}
	if fields.Len() != len(wantKeys) {
		t.Fatalf("Len() = %d, want %d", fields.Len(), len(wantKeys))
	}
	for i, key := range wantKeys {
		if fields[i].Key != key {
			t.Errorf("fields[%d].Key = %q, want %q", i, fields[i].Key, key)
		}
	}
	if v, _ := fields.First(); v != "first" {
		t.Errorf("First() = %v, want the document's first value", v)
	}
}

func TestFields_JSONRoundTrip(t *testing.T) {
	original := Fields{
		{Key: "text", Value: "hello"},
		{Key: "meta", Value: map[string]any{"lang": "en"}},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var decoded Fields
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Errorf("round trip mismatch (-original +decoded):\n%s", diff)
	}
}

func TestFields_UnmarshalJSON_RejectsNonObject(t *testing.T) {
	var fields Fields
	if err := json.Unmarshal([]byte(`["not", "an", "object"]`), &fields); err == nil {
		t.Error("Unmarshal() accepted a JSON array")
	}
}

func TestRun_JSON(t *testing.T) {
	run := NewRun(Fields{{Key: "output", Value: "Paris"}})
	if run.ID == "" {
		t.Fatal("NewRun() produced empty ID")
	}

	data, err := json.Marshal(run)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var decoded Run
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if decoded.ID != run.ID {
		t.Errorf("decoded ID = %q, want %q", decoded.ID, run.ID)
	}
	if v, _ := decoded.Outputs.First(); v != "Paris" {
		t.Errorf("decoded first output = %v, want Paris", v)
	}
}
