package manifest

import "fmt"

func (c *Config) validateRoutes() error {
	seen := make(map[string]int, len(c.Routes))
	for i := range c.Routes {
		if err := c.Routes[i].normalize(); err != nil {
			return fmt.Errorf("route %d: %w", i, err)
		}
		if err := c.Routes[i].validate(); err != nil {
			return fmt.Errorf("route %d (%s %s): %w", i, c.Routes[i].Method, c.Routes[i].Name, err)
		}
		if j, dup := seen[c.Routes[i].Name]; dup {
			return fmt.Errorf("route %d (%s): %w (first defined by route %d)", i, c.Routes[i].Name, ErrDuplicateName, j)
		}
		seen[c.Routes[i].Name] = i
	}
	return nil
}
