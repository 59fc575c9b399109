package dibox

import "go.uber.org/zap"

// Option configures a container at construction time.
type Option func(*Container)

// WithLogger attaches a structured logger. The container logs binding
// registrations and resolutions at debug level and rejected operations
// at warn level. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Container) {
		if log != nil {
			c.log = log
		}
	}
}
