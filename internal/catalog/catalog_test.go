package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c := Default()
	assert.Len(t, c.All(), 8)
}

func TestGet(t *testing.T) {
	t.Parallel()

	c := Default()

	p, ok := c.Get(3)
	require.True(t, ok)
	assert.Equal(t, "Straight Razor Kit", p.Name)
	assert.Equal(t, 45.50, p.Price)
	assert.Equal(t, "shaving", p.Category)

	_, ok = c.Get(999)
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	t.Parallel()

	c := Default()

	tests := []struct {
		category string
		want     int
	}{
		{category: "clippers", want: 2},
		{category: "styling", want: 2},
		{category: "shaving", want: 2},
		{category: "combs", want: 2},
		{category: "unknown", want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.category, func(t *testing.T) {
			t.Parallel()

			got := c.ByCategory(tt.category)
			assert.Len(t, got, tt.want)
			for _, p := range got {
				assert.Equal(t, tt.category, p.Category)
			}
		})
	}
}

func TestFeatured_FirstFourProducts(t *testing.T) {
	t.Parallel()

	featured := Default().Featured()
	require.Len(t, featured, 4)
	for i, p := range featured {
		assert.Equal(t, i+1, p.ID)
	}
}

func TestQuery(t *testing.T) {
	t.Parallel()

	c := Default()

	byName := c.Query("clipper")
	require.Len(t, byName, 1)
	assert.Equal(t, 1, byName[0].ID)

	byDescription := c.Query("aloe")
	require.Len(t, byDescription, 1)
	assert.Equal(t, 7, byDescription[0].ID)

	assert.Empty(t, c.Query("motor oil"))
	assert.Empty(t, c.Query("  "))
}

func TestCategoryName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Clippers & Trimmers", CategoryName("clippers"))
	assert.Equal(t, "Combs & Brushes", CategoryName("combs"))
	assert.Equal(t, "Products", CategoryName("nope"))
}

func TestAllReturnsACopy(t *testing.T) {
	t.Parallel()

	c := Default()
	all := c.All()
	all[0].Name = "tampered"

	fresh, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Professional Hair Clipper Pro X1", fresh.Name)
}
