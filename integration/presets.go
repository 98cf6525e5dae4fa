// Package integration provides configuration presets and assembly helpers for
// building the certificate-store runtime. Presets bundle the database knobs
// (cache size, file handles, in-memory mode) into named profiles so operators
// can spin up nodes for different workloads without tweaking individual
// flags.
//
// Usage:
//
//	store, err := integration.MakeCertStore(datadir, integration.LitePreset())
package integration

import "fmt"

// PresetConfig captures the tunable database parameters that vary across
// profiles. Parameters that are always the same (table layout, key encoding)
// are fixed in the certstore package and deliberately excluded here.
type PresetConfig struct {
	// Name is the human-readable identifier, used in logs and config dumps.
	Name string
	// CacheMB is the memory allocated to the database cache.
	CacheMB int
	// Handles is the number of file handles the database may keep open.
	Handles int
	// InMemory backs the store with a volatile in-memory database. For
	// tests and throwaway networks only: nothing survives a restart.
	InMemory bool
}

// DefaultPreset returns the balanced production profile.
func DefaultPreset() PresetConfig {
	return PresetConfig{
		Name:    "default",
		CacheMB: 64, // the record set grows by two small records per stakeholder per epoch
		Handles: 256,
	}
}

// LitePreset returns a profile for development and CI: small cache, few
// handles, still durable.
func LitePreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "lite"
	cfg.CacheMB = 16
	cfg.Handles = 64
	return cfg
}

// InmemoryPreset returns a volatile profile for tests and fake networks.
func InmemoryPreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "inmemory"
	cfg.InMemory = true
	return cfg
}

// ArchivePreset returns a profile for long-lived archive nodes that serve
// historical epochs: bigger cache, more handles.
func ArchivePreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "archive"
	cfg.CacheMB = 256
	cfg.Handles = 1024
	return cfg
}

// GetPresetByName resolves a profile by its identifier.
func GetPresetByName(name string) (PresetConfig, error) {
	switch name {
	case "default", "":
		return DefaultPreset(), nil
	case "lite":
		return LitePreset(), nil
	case "inmemory":
		return InmemoryPreset(), nil
	case "archive":
		return ArchivePreset(), nil
	}
	return PresetConfig{}, fmt.Errorf("unknown preset %q", name)
}
