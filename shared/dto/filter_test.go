package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/dto"
)

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		group     dto.FilterGroup
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "empty group",
			group:     dto.FilterGroup{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name: "empty nested group is skipped",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.FilterGroup{},
					dto.Filter{Field: "status", Value: "dirty", Operator: dto.FilterOperatorEq, Table: "rooms"},
				},
			},
			wantWhere: "(rooms.status = :status)",
			wantArgs:  map[string]any{"status": "dirty"},
		},
		{
			name: "or group with named args",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "a", Field: "name", Value: "x", Operator: dto.FilterOperatorEq},
					dto.Filter{ArgName: "b", Field: "phone", Value: "y", Operator: dto.FilterOperatorEq},
				},
			},
			wantWhere: "(name = :a OR phone = :b)",
			wantArgs:  map[string]any{"a": "x", "b": "y"},
		},
		{
			name: "unset operator joins with and",
			group: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "room_id", Value: "r-1", Operator: dto.FilterOperatorEq},
				},
			},
			wantWhere: "(status = :status AND room_id = :room_id)",
			wantArgs:  map[string]any{"status": "confirmed", "room_id": "r-1"},
		},
		{
			name: "like escapes wildcards in user input",
			group: dto.FilterGroup{
				Filters: []any{
					dto.Filter{ArgName: "search", Field: "name", Value: "50%_off", Operator: dto.FilterOperatorLike, Table: "guests"},
				},
			},
			wantWhere: "(LOWER(guests.name) LIKE LOWER(:search))",
			wantArgs:  map[string]any{"search": `%50\%\_off%`},
		},
		{
			name: "in binds every element",
			group: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "id", Value: []string{"g-1", "g-2"}, Operator: dto.FilterOperatorIn},
				},
			},
			wantWhere: "(id IN (:id_0, :id_1))",
			wantArgs:  map[string]any{"id_0": "g-1", "id_1": "g-2"},
		},
		{
			name: "in with an empty slice matches nothing",
			group: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "id", Value: []string{}, Operator: dto.FilterOperatorIn},
				},
			},
			wantWhere: "(FALSE)",
			wantArgs:  map[string]any{},
		},
		{
			name: "in with a scalar binds a single value",
			group: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "id", Value: "g-1", Operator: dto.FilterOperatorIn},
				},
			},
			wantWhere: "(id = :id)",
			wantArgs:  map[string]any{"id": "g-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_AddEq(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	group.AddEq("status", "rooms", "")
	assert.Empty(t, group.Filters)

	group.AddEq("status", "rooms", "available")
	assert.Len(t, group.Filters, 1)
}
