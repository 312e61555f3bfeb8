package products

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMergeUpdateRetainsOmittedFields(t *testing.T) {
	existing := Product{
		ID:          7,
		Name:        "Laptop",
		Description: ptr("workstation"),
		Price:       1299.99,
		Stock:       15,
		CreatedAt:   time.Now(),
	}

	merged := MergeUpdate(existing, UpdateRequest{Price: ptr(999.99)})

	require.Equal(t, "Laptop", merged.Name)
	require.NotNil(t, merged.Description)
	require.Equal(t, "workstation", *merged.Description)
	require.Equal(t, 999.99, merged.Price)
	require.Equal(t, 15, merged.Stock)
}

func TestMergeUpdateOverwritesPresentFields(t *testing.T) {
	existing := Product{Name: "Old", Price: 10, Stock: 1}

	merged := MergeUpdate(existing, UpdateRequest{
		Name:        ptr("New"),
		Description: ptr("fresh"),
		Price:       ptr(20.0),
		Stock:       ptr(0),
	})

	require.Equal(t, "New", merged.Name)
	require.Equal(t, "fresh", *merged.Description)
	require.Equal(t, 20.0, merged.Price)
	require.Equal(t, 0, merged.Stock)
}

func TestToEntityLeavesStoreAssignedFieldsUnset(t *testing.T) {
	draft := ToEntity(CreateRequest{Name: "Mouse", Price: ptr(25.5), Stock: ptr(3)})

	require.Zero(t, draft.ID)
	require.True(t, draft.CreatedAt.IsZero())
	require.Nil(t, draft.UpdatedAt)
	require.Equal(t, "Mouse", draft.Name)
	require.Nil(t, draft.Description)
}

func TestViewSerialization(t *testing.T) {
	raw, err := json.Marshal(View{ID: 1, Name: "Mouse", Price: Price(10), Stock: 3})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":1,"name":"Mouse","description":null,"price":10.00,"stock":3}`, string(raw))
	require.Contains(t, string(raw), `"price":10.00`)

	raw, err = json.Marshal(View{ID: 2, Name: "Laptop", Description: ptr("thin"), Price: Price(1299.99), Stock: 1})
	require.NoError(t, err)
	require.Contains(t, string(raw), `"price":1299.99`)
	require.Contains(t, string(raw), `"description":"thin"`)
}
