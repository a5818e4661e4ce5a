package cli

import "github.com/spf13/pflag"

// Flag-or-config resolution: an explicitly set flag wins over the config
// value, even when set to its zero value.

func stringFlagOr(flags *pflag.FlagSet, name, value, fallback string) string {
	if flags.Changed(name) || fallback == "" {
		return value
	}
	return fallback
}

func intFlagOr(flags *pflag.FlagSet, name string, value, fallback int) int {
	if flags.Changed(name) || fallback == 0 {
		return value
	}
	return fallback
}

func boolFlagOr(flags *pflag.FlagSet, name string, value, fallback bool) bool {
	if flags.Changed(name) {
		return value
	}
	return fallback
}
