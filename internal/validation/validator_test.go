// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()
	v1 := GetValidator()
	v2 := GetValidator()
	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func TestSearchRequest(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		req       SearchRequest
		wantField string
		wantMsg   string
	}{
		{"valid", SearchRequest{Query: "avatar", Limit: 10}, "", ""},
		{"max length", SearchRequest{Query: strings.Repeat("a", 200), Limit: 50}, "", ""},
		{"missing query", SearchRequest{Limit: 10}, "q", "q is required"},
		{"blank query", SearchRequest{Query: "  \t", Limit: 10}, "q", "q must not be blank"},
		{"too long", SearchRequest{Query: strings.Repeat("a", 201), Limit: 10}, "q", "q must be at most 200 characters"},
		{"limit zero", SearchRequest{Query: "x", Limit: 0}, "limit", "limit must be at least 1"},
		{"limit too high", SearchRequest{Query: "x", Limit: 51}, "limit", "limit must be at most 50"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := ValidateStruct(&tt.req)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("expected validation error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestRecommendationsRequest(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		req     RecommendationsRequest
		wantErr bool
	}{
		{"default k", RecommendationsRequest{Title: "Avatar"}, false},
		{"k at max", RecommendationsRequest{Title: "Avatar", K: 100}, false},
		{"k too high", RecommendationsRequest{Title: "Avatar", K: 101}, true},
		{"negative k", RecommendationsRequest{Title: "Avatar", K: -1}, true},
		{"unicode title within limit", RecommendationsRequest{Title: strings.Repeat("é", 200)}, false},
		{"missing title", RecommendationsRequest{K: 5}, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := ValidateStruct(&tt.req)
			if (verr != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() = %v, wantErr %v", verr, tt.wantErr)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	t.Run("single", func(t *testing.T) {
		t.Parallel()
		verr := ValidateStruct(&TitleRequest{})
		if verr == nil {
			t.Fatal("expected error")
		}
		apiErr := verr.ToAPIError()
		if apiErr.Code != "VALIDATION_ERROR" {
			t.Errorf("Code = %q", apiErr.Code)
		}
		if apiErr.Message != "title is required" {
			t.Errorf("Message = %q", apiErr.Message)
		}
		if apiErr.Details["field"] != "title" {
			t.Errorf("Details = %v", apiErr.Details)
		}
	})

	t.Run("multiple", func(t *testing.T) {
		t.Parallel()
		verr := ValidateStruct(&SearchRequest{Limit: 99})
		if verr == nil {
			t.Fatal("expected error")
		}
		apiErr := verr.ToAPIError()
		if !strings.Contains(apiErr.Message, "q is required") || !strings.Contains(apiErr.Message, "limit must be at most 50") {
			t.Errorf("Message = %q", apiErr.Message)
		}
		fields, ok := apiErr.Details["fields"].([]map[string]any)
		if !ok || len(fields) != 2 {
			t.Errorf("Details[fields] = %v", apiErr.Details["fields"])
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})
}
