package config

// Version is overridden at build time with -ldflags "-X pizzaops.io/admin-dashboard/config.Version=..."
var Version = "dev"
