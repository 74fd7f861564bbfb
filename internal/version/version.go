package version

// Version is overridden at build time:
//
//	go build -ldflags "-X dbgwalk/internal/version.Version=v1.2.3" ./cmd/dbgwalk
var Version = "dev"
