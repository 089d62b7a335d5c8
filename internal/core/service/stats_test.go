package service_test

import (
	"testing"

	"github.com/hava-distribution/catalog/internal/core/domain"
	"github.com/hava-distribution/catalog/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	brands := []domain.Brand{
		{Slug: "yale", Name: "Yale"},
		{Slug: "vachette", Name: "Vachette"},
		{Slug: "hoppe", Name: "Hoppe"},
	}
	categories := service.BuildCategories(domain.DefaultHierarchy)

	t.Run("CountsAndDistributions", func(t *testing.T) {
		products := fixtureProducts()
		stats := service.ComputeStats(products, brands, categories)

		assert.Equal(t, 3, stats.TotalProducts)
		assert.Equal(t, 3, stats.TotalBrands)
		assert.Equal(t, len(categories), stats.TotalCategories)
		assert.Equal(t, 1, stats.ProductsWithAR)
		assert.Equal(t, 1, stats.ProductsWithDownloads)

		require.Len(t, stats.BrandDistribution, 3)
		for _, e := range stats.BrandDistribution {
			assert.Equal(t, 1, e.Count)
		}

		require.Len(t, stats.CategoryDistribution, 3)
		roots := []string{
			stats.CategoryDistribution[0].Name,
			stats.CategoryDistribution[1].Name,
			stats.CategoryDistribution[2].Name,
		}
		assert.ElementsMatch(t, []string{"serrures", "cylindres", "poignees"}, roots)
	})

	t.Run("DistributionSortedByCountDesc", func(t *testing.T) {
		products := service.AnnotateProducts([]domain.Product{
			{Slug: "a", Brand: "Hoppe", Category: "Cylindres"},
			{Slug: "b", Brand: "Yale", Category: "Cylindres"},
			{Slug: "c", Brand: "Yale", Category: "Serrures"},
			{Slug: "d", Brand: "Yale", Category: "Cylindres"},
		}, domain.DefaultHierarchy)

		stats := service.ComputeStats(products, brands, categories)

		require.Len(t, stats.BrandDistribution, 2)
		assert.Equal(t, domain.DistributionEntry{Name: "Yale", Count: 3},
			stats.BrandDistribution[0])
		assert.Equal(t, domain.DistributionEntry{Name: "Hoppe", Count: 1},
			stats.BrandDistribution[1])

		require.Len(t, stats.CategoryDistribution, 2)
		assert.Equal(t, domain.DistributionEntry{Name: "cylindres", Count: 3},
			stats.CategoryDistribution[0])
	})

	t.Run("TiesKeepEncounterOrder", func(t *testing.T) {
		products := service.AnnotateProducts([]domain.Product{
			{Slug: "a", Brand: "Vachette", Category: "Cylindres"},
			{Slug: "b", Brand: "Hoppe", Category: "Serrures"},
			{Slug: "c", Brand: "Yale", Category: "Cadenas"},
		}, domain.DefaultHierarchy)

		stats := service.ComputeStats(products, brands, categories)

		require.Len(t, stats.BrandDistribution, 3)
		assert.Equal(t, "Vachette", stats.BrandDistribution[0].Name)
		assert.Equal(t, "Hoppe", stats.BrandDistribution[1].Name)
		assert.Equal(t, "Yale", stats.BrandDistribution[2].Name)
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		stats := service.ComputeStats(nil, nil, nil)
		assert.Zero(t, stats.TotalProducts)
		assert.Empty(t, stats.BrandDistribution)
		assert.Empty(t, stats.CategoryDistribution)
	})
}
