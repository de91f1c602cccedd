package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"family_shopping/internal/api/dto"
)

func TestTemplates_Dashboard(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "dashboard.html", map[string]interface{}{
		"Dashboard": &dto.DashboardResp{
			Products: []dto.ProductResp{{ID: 1, Name: "Milk"}},
			Items:    []dto.ShoppingItemResp{{ID: 9, ProductID: 1, ProductName: "Milk", Quantity: 2}},
			Availability: []dto.StoreAvailabilityResp{
				{StoreID: 1, StoreName: "Corner shop", AvailableCount: 2, TotalCount: 3, CoveragePercentage: 66.7},
			},
			HasPurchased: true,
		},
		"Member": "",
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "/api/shopping/items/9/increment")
	assert.Contains(t, html, "66.7%")
	assert.Contains(t, html, "clear purchased")
	assert.Contains(t, html, "Corner shop")
}

func TestTemplates_EmptyDashboard(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "dashboard.html", map[string]interface{}{
		"Dashboard": &dto.DashboardResp{},
	}))
	assert.Contains(t, buf.String(), "Nothing to buy.")
	assert.NotContains(t, buf.String(), "clear purchased")
}
