package helpers

import (
	"fmt"
	"github.com/urfave/cli/v2"
	"os"
	"strconv"
)

// Settings resolve in flag > environment > fallback order, so conf.env
// supplies the usual values and a flag overrides them per invocation.

func StringSetting(c *cli.Context, flagName string, envKey string, fallback string) string {
	if v := c.String(flagName); v != "" {
		return v
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return fallback
}

func IntSetting(c *cli.Context, flagName string, envKey string, fallback int) int {
	raw := StringSetting(c, flagName, envKey, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		Logger.Warnln(fmt.Sprintf("settings: bad integer %q for %s, keeping %d", raw, flagName, fallback))
		return fallback
	}
	return v
}

func FloatSetting(c *cli.Context, flagName string, envKey string, fallback float64) float64 {
	raw := StringSetting(c, flagName, envKey, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		Logger.Warnln(fmt.Sprintf("settings: bad number %q for %s, keeping %f", raw, flagName, fallback))
		return fallback
	}
	return v
}

func BoolSetting(c *cli.Context, flagName string, envKey string) bool {
	raw := StringSetting(c, flagName, envKey, "")
	v, _ := strconv.ParseBool(raw)
	return v
}
