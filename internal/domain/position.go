package domain

// LPPosition suggested liquidity-provision price range.
type LPPosition struct {
	MinPrice float64 `yaml:"min_price"`
	MaxPrice float64 `yaml:"max_price"`
}

// Contains reports whether price lies within the range, bounds included.
func (p LPPosition) Contains(price float64) bool {
	return price >= p.MinPrice && price <= p.MaxPrice
}
