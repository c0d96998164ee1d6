package types

// Version is the application version, overwritten at build time via
// -ldflags "-X github.com/m-mizutani/relwatch/pkg/domain/types.Version=..."
var Version = "dev"

// ServiceName is used for health reporting and User-Agent strings
const ServiceName = "relwatch"
