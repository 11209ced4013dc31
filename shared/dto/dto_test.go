package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"salas/shared/constant"
	"salas/shared/dto"
	"salas/shared/model"
	"salas/shared/timezone"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := timezone.Format(createdAt, constant.DateTimeFormat)
	expectedModifiedAt := timezone.Format(modifiedAt, constant.DateTimeFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative limit parameter",
			queryParams: map[string]string{
				"limit": "-10",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortDir: "DESC",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/test")
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest("GET", u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			if *queryParams != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, *queryParams)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name: "eq operator",
			filter: dto.Filter{
				Field:    "floor",
				Value:    3,
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
			expectedWhere: "rooms.floor = :floor",
			expectedArgs:  map[string]any{"floor": 3},
		},
		{
			name: "eq_fold operator compares case-insensitively",
			filter: dto.Filter{
				Field:    "name",
				Value:    "Aurora",
				Operator: dto.FilterOperatorEqFold,
				Table:    "rooms",
			},
			expectedWhere: "LOWER(rooms.name) = LOWER(:name)",
			expectedArgs:  map[string]any{"name": "Aurora"},
		},
		{
			name: "not_eq operator",
			filter: dto.Filter{
				Field:    "id",
				Value:    "test-id",
				Operator: dto.FilterOperatorNotEq,
				Table:    "rooms",
			},
			expectedWhere: "rooms.id != :id",
			expectedArgs:  map[string]any{"id": "test-id"},
		},
		{
			name: "less operator with custom arg name",
			filter: dto.Filter{
				ArgName:  "new_end",
				Field:    "start_time",
				Value:    "10:00",
				Operator: dto.FilterOperatorLess,
				Table:    "reservations",
			},
			expectedWhere: "reservations.start_time < :new_end",
			expectedArgs:  map[string]any{"new_end": "10:00"},
		},
		{
			name: "greater operator with custom arg name",
			filter: dto.Filter{
				ArgName:  "new_start",
				Field:    "end_time",
				Value:    "09:00",
				Operator: dto.FilterOperatorGreater,
				Table:    "reservations",
			},
			expectedWhere: "reservations.end_time > :new_start",
			expectedArgs:  map[string]any{"new_start": "09:00"},
		},
		{
			name: "without table prefix",
			filter: dto.Filter{
				Field:    "active",
				Value:    true,
				Operator: dto.FilterOperatorEq,
			},
			expectedWhere: "active = :active",
			expectedArgs:  map[string]any{"active": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expectedWhere {
				t.Errorf("expected where %q, got %q", tt.expectedWhere, where)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for key, value := range tt.expectedArgs {
				if args[key] != value {
					t.Errorf("expected arg %s to be %v, got %v", key, value, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "room_id",
				Value:    "room-id",
				Operator: dto.FilterOperatorEq,
				Table:    "reservations",
			},
			dto.Filter{
				Field:    "reservation_date",
				Value:    "2026-03-05",
				Operator: dto.FilterOperatorEq,
				Table:    "reservations",
			},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(reservations.room_id = :room_id AND reservations.reservation_date = :reservation_date)"
	if where != expected {
		t.Errorf("expected where %q, got %q", expected, where)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}
