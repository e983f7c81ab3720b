package report

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

type Config struct {
	Format    string
	Precision int
	// Loss ratios above LossWarn are highlighted in table output.
	LossWarn float64
	Color    bool
}

func DefaultConfig() *Config {
	return &Config{
		Format:    FormatTable,
		Precision: 3,
		LossWarn:  0.05,
		Color:     true,
	}
}
