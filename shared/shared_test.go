package shared_test

import (
	"context"
	"errors"
	"fmt"
	"frontdesk/shared"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "remainder rounds up", total: 101, limit: 10, expected: 11},
		{name: "total below limit", total: 3, limit: 10, expected: 1},
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
	type updateGuest struct {
		Name    string  `db:"name"`
		Phone   string  `db:"phone"`
		Email   string  `db:"email"`
		Address *string `db:"address"`
		Floor   *int    `db:"floor"`
		NoDBTag string
		Ignored string `db:"-"`
	}

	floor := 0
	address := "Jl. Merdeka 1"

	tests := []struct {
		name     string
		data     interface{}
		username string
		expected map[string]any
	}{
		{
			name: "populated fields only",
			data: updateGuest{
				Name:    "Budi",
				Phone:   "0812",
				NoDBTag: "ignored",
				Ignored: "ignored",
			},
			username: "reception-1",
			expected: map[string]any{
				"name":  "Budi",
				"phone": "0812",
			},
		},
		{
			name:     "all zero values",
			data:     updateGuest{},
			username: "reception-1",
			expected: map[string]any{},
		},
		{
			name: "pointers are dereferenced and zero pointees kept",
			data: updateGuest{
				Address: &address,
				Floor:   &floor,
			},
			username: "admin",
			expected: map[string]any{
				"address": "Jl. Merdeka 1",
				"floor":   0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, tt.username)

			if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
				t.Error("expected modified_at to be a time.Time")
			}

			if result[constant.FieldModifiedBy] != tt.username {
				t.Errorf("expected modified_by to be %s, got %v", tt.username, result[constant.FieldModifiedBy])
			}

			for key, expectedValue := range tt.expected {
				actualValue, exists := result[key]
				if !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			for key := range result {
				if key == constant.FieldModifiedAt || key == constant.FieldModifiedBy {
					continue
				}

				if _, expected := tt.expected[key]; !expected {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "id", "rooms")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "550e8400-e29b-41d4-a716-446655440000",
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}

	where, args := result.GetWhereClause()
	assert.Equal(t, "(rooms.id = :id)", where)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", args["id"])
}

func TestFilterByField(t *testing.T) {
	result := shared.FilterByField("phone", "08123", "guests")

	where, args := result.GetWhereClause()
	assert.Equal(t, "(guests.phone = :phone)", where)
	assert.Equal(t, "08123", args["phone"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get:abc", shared.BuildCacheKey("room:get", "abc"))
	assert.Equal(t, "room:get", shared.BuildCacheKey("room:get"))
	assert.Equal(t, "limiter:127.0.0.1:curl", shared.BuildCacheKey("limiter", "127.0.0.1", "curl"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filterA := shared.FilterByField("status", "available", "rooms")
	filterB := shared.FilterByField("status", "dirty", "rooms")

	keyA := shared.BuildCacheKeyWithQuery("room:gets", params, filterA)
	keyAgain := shared.BuildCacheKeyWithQuery("room:gets", params, filterA)
	keyB := shared.BuildCacheKeyWithQuery("room:gets", params, filterB)
	keyPage := shared.BuildCacheKeyWithQuery("room:gets", dto.QueryParams{Page: 2, Limit: 10}, filterA)

	assert.True(t, strings.HasPrefix(keyA, "room:gets:"))
	assert.Equal(t, keyA, keyAgain)
	assert.NotEqual(t, keyA, keyB)
	assert.NotEqual(t, keyA, keyPage)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "guest:gets*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "guest:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "guest:count*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "guest:count")
}

func TestIsPqError(t *testing.T) {
	unique := &pq.Error{Code: constant.PqErrorCodeUniqueViolation}
	wrapped := fmt.Errorf("failed to insert data (room): %w", unique)

	assert.True(t, shared.IsPqError(wrapped, constant.PqErrorCodeUniqueViolation))
	assert.False(t, shared.IsPqError(wrapped, constant.PqErrorCodeFkViolation))
	assert.False(t, shared.IsPqError(errors.New("plain"), constant.PqErrorCodeUniqueViolation))
}
