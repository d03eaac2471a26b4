package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database: min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Forum.MaxTitleLength <= 0 {
		return fmt.Errorf("forum: max_title_length must be > 0 (got %d)", c.Forum.MaxTitleLength)
	}
	if c.Forum.MaxDescriptionLength <= 0 {
		return fmt.Errorf("forum: max_description_length must be > 0 (got %d)", c.Forum.MaxDescriptionLength)
	}

	return nil
}
