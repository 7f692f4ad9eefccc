package app

// Version is set at build time via -ldflags "-X invoicer/internal/app.Version=...".
var Version = "dev"
