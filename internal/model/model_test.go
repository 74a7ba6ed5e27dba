package model

import (
	"testing"
)

// TestNewID_Unique verifies that generated identifiers do not repeat.
func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID() returned empty string")
		}
		if seen[id] {
			t.Fatalf("NewID() returned duplicate id %q", id)
		}
		seen[id] = true
	}
}

// TestSanitizeName covers the lowercase/collapse/trim derivation rules.
func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "users", "users"},
		{"spaces", "Get Users", "get-users"},
		{"mixed punctuation", "POST /api/v2: Create User!", "post-api-v2-create-user"},
		{"collapse runs", "a  --  b", "a-b"},
		{"leading trailing", "  (draft)  ", "draft"},
		{"digits kept", "retry 3 times", "retry-3-times"},
		{"uppercase", "LIST", "list"},
		{"all symbols", "!!!", ""},
		{"empty", "", ""},
		{"unicode stripped", "caféménu", "caf-m-nu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.in); got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestSanitizeName_Deterministic verifies repeated calls agree.
func TestSanitizeName_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := SanitizeName("Get Users"); got != "get-users" {
			t.Fatalf("SanitizeName not deterministic, got %q", got)
		}
	}
}

// TestCollection_Validate verifies the name requirement.
func TestCollection_Validate(t *testing.T) {
	c := &Collection{ID: NewID()}
	if err := c.Validate(); err == nil {
		t.Error("Validate() should fail for unnamed collection")
	}

	c.Name = "Demo"
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() failed for named collection: %v", err)
	}
}

// TestItemVariants verifies the Item union accessors.
func TestItemVariants(t *testing.T) {
	folder := &Folder{ID: NewID(), Name: "Auth"}
	req := &RequestItem{
		ID:   NewID(),
		Name: "Login",
		Request: &HTTPRequest{
			ID:     NewID(),
			Method: "POST",
			URL:    "https://api.example.com/login",
		},
	}

	var items []Item = []Item{folder, req}

	if items[0].ItemName() != "Auth" || items[0].ItemID() != folder.ID {
		t.Error("Folder accessors returned wrong values")
	}
	if items[1].ItemName() != "Login" || items[1].ItemID() != req.ID {
		t.Error("RequestItem accessors returned wrong values")
	}

	var r Request = req.Request
	if r.RequestID() == "" {
		t.Error("RequestID() should not be empty")
	}
	if _, ok := r.(*HTTPRequest); !ok {
		t.Error("expected *HTTPRequest variant")
	}
}
