package domain

type (
	// Stats is a read-only aggregate over one catalog snapshot.
	Stats struct {
		TotalProducts         int
		TotalBrands           int
		TotalCategories       int
		ProductsWithAR        int
		ProductsWithDownloads int
		BrandDistribution     []DistributionEntry
		CategoryDistribution  []DistributionEntry
	}

	// DistributionEntry counts products per brand name or per root
	// category slug.
	DistributionEntry struct {
		Name  string
		Count int
	}
)
