package domain

const (
	IntegrationAmazonAds = "amazon_ads"

	BrandStatusActive      = "active"
	CredentialStatusActive = "active"
)

type Brand struct {
	ID        string
	CompanyID string
	Name      string
	Status    string
}

type IntegrationCredential struct {
	ID              string
	BrandID         string
	IntegrationType string
	Status          string
}

type AdPortfolio struct {
	ID           string
	BrandID      string
	CredentialID string
	Name         string
}

type AdCampaign struct {
	ID            string
	BrandID       string
	PortfolioID   string
	Name          string
	TargetingType string
	DailyBudget   *float64
	Status        string
}

type BrandRepository interface {
	GetBrandByID(brandID string) (*Brand, error)
	GetActiveBrands() ([]*Brand, error)
	// GetActiveCampaigns resolves the campaigns reachable through the
	// brand's active amazon_ads credentials. Empty result means the brand
	// has nothing to analyze, not an error.
	GetActiveCampaigns(brandID string) ([]*AdCampaign, error)
}

type SettingsRepository interface {
	// GetThresholdOverrides returns (nil, nil) when the company has no
	// stored overrides.
	GetThresholdOverrides(companyID string) (*ThresholdOverrides, error)
	SaveThresholdOverrides(companyID string, overrides *ThresholdOverrides) error
}
