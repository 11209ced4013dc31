package shared_test

import (
	"reflect"
	"testing"
	"time"

	"salas/shared"
	"salas/shared/constant"
	"salas/shared/dto"
)

func boolPtr(v bool) *bool {
	return &v
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	result, err := shared.ConvertStringToInt("42")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if result != 42 {
		t.Errorf("expected 42, got %d", result)
	}

	if _, err := shared.ConvertStringToInt("not-a-number"); err == nil {
		t.Error("expected error for invalid input")
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder rounds up",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "total smaller than limit",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name     string `db:"name"`
		Capacity *int   `db:"capacity"`
		Ignored  string
	}

	capacity := 12
	req := updateRequest{
		Name:     "Aurora",
		Capacity: &capacity,
		Ignored:  "skipped",
	}

	fields := shared.TransformFields(req)

	if fields["name"] != "Aurora" {
		t.Errorf("expected name to be Aurora, got %v", fields["name"])
	}

	if fields["capacity"] != &capacity {
		t.Errorf("expected capacity pointer, got %v", fields["capacity"])
	}

	if _, ok := fields["Ignored"]; ok {
		t.Error("expected fields without db tag to be skipped")
	}

	modifiedAt, ok := fields[constant.FieldModifiedAt].(time.Time)
	if !ok || modifiedAt.IsZero() {
		t.Error("expected modified_at to be stamped")
	}
}

func TestTransformFields_SkipsZeroValues(t *testing.T) {
	type updateRequest struct {
		Name     string `db:"name"`
		Capacity *int   `db:"capacity"`
	}

	fields := shared.TransformFields(updateRequest{})

	if _, ok := fields["name"]; ok {
		t.Error("expected zero name to be skipped")
	}

	if _, ok := fields["capacity"]; ok {
		t.Error("expected nil capacity to be skipped")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("test-id", "id", "rooms")

	if len(group.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", group.Filters[0])
	}

	expected := dto.Filter{
		Field:    "id",
		Value:    "test-id",
		Operator: dto.FilterOperatorEq,
		Table:    "rooms",
	}

	if !reflect.DeepEqual(filter, expected) {
		t.Errorf("expected %+v, got %+v", expected, filter)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if key := shared.BuildCacheKey("room:get"); key != "room:get" {
		t.Errorf("expected prefix only, got %s", key)
	}

	if key := shared.BuildCacheKey("room:get", "test-id"); key != "room:get:test-id" {
		t.Errorf("expected joined key, got %s", key)
	}

	if key := shared.BuildCacheKey("limiter", "1.2.3.4", "agent"); key != "limiter:1.2.3.4:agent" {
		t.Errorf("expected joined key, got %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := shared.FilterByID("test-id", "id", "rooms")

	keyA := shared.BuildCacheKeyWithQuery("room:gets", params, filter)
	keyB := shared.BuildCacheKeyWithQuery("room:gets", params, filter)

	if keyA != keyB {
		t.Error("expected identical inputs to produce identical keys")
	}

	params.Page = 3
	keyC := shared.BuildCacheKeyWithQuery("room:gets", params, filter)

	if keyA == keyC {
		t.Error("expected different pages to produce different keys")
	}
}
