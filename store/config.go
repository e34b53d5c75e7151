package store

// DefaultScanLimit is the number of items read by a bulk listing.
const DefaultScanLimit = 20

// Config holds configuration for the Store.
type Config struct {
	// TableName is the name of the products table.
	// Default: "Products"
	TableName string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		TableName: "Products",
	}
}

// validate fills in missing config values.
func (c *Config) validate() {
	if c.TableName == "" {
		c.TableName = "Products"
	}
}
