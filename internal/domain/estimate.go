package domain

// Estimate parsed input together with the computed range, ready to be reported.
type Estimate struct {
	Sentiment    Sentiment  `yaml:"sentiment"`
	Timeframe    Timeframe  `yaml:"timeframe"`
	CurrentPrice float64    `yaml:"current_price"`
	Multiplier   float64    `yaml:"multiplier"`
	Position     LPPosition `yaml:"position"`
}
