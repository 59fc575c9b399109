package dibox

// Provider registers a related group of bindings on a container.
// Providers are plain sugar over the Bind calls; the container exposes
// no other interface to them.
type Provider interface {
	Register(c *Container) error
}

// Install applies each provider in order and stops at the first error.
func (c *Container) Install(providers ...Provider) error {
	for _, p := range providers {
		if err := p.Register(c); err != nil {
			return err
		}
	}
	return nil
}
