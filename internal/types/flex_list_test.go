package types

import (
	"encoding/json"
	"testing"
)

func TestFlexListArray(t *testing.T) {
	var f FlexList[string]
	if err := json.Unmarshal([]byte(`["a","b"]`), &f); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(f) != 2 || f[0] != "a" || f[1] != "b" {
		t.Errorf("Expected [a b], got %v", f)
	}
}

func TestFlexListSingleValue(t *testing.T) {
	var f FlexList[string]
	if err := json.Unmarshal([]byte(`"solo"`), &f); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(f) != 1 || f[0] != "solo" {
		t.Errorf("Expected [solo], got %v", f)
	}
}

func TestFlexListNull(t *testing.T) {
	var f FlexList[string]
	if err := json.Unmarshal([]byte(`null`), &f); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(f) != 0 {
		t.Errorf("Expected empty list, got %v", f)
	}
}

func TestFlexListInvalid(t *testing.T) {
	var f FlexList[int]
	if err := json.Unmarshal([]byte(`"not-an-int"`), &f); err == nil {
		t.Error("Expected an error for a type mismatch")
	}
}

func TestFlexListSlice(t *testing.T) {
	f := FlexList[string]{"a"}
	s := f.Slice()
	if len(s) != 1 || s[0] != "a" {
		t.Errorf("Expected [a], got %v", s)
	}
}
