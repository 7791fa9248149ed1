package config

// Version is overridden at build time with -ldflags "-X github.com/fs-over-http/fsh/cmd/fsh/config.Version=...".
var Version = "dev"
