package types

// Version is the application version, overridable at build time via
// -ldflags "-X github.com/kusaridev/skoot/pkg/domain/types.Version=..."
var Version = "0.1.0"

// AppName is used as the service identifier in health responses and logs
const AppName = "skoot"
