package dotenv

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads the given .env files into the process environment, defaulting
// to ".env" in the working directory. A missing file is not an error; running
// with only real environment variables is normal.
func Load(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// String returns the first non-blank value among the named variables.
func String(names ...string) string {
	for _, n := range names {
		if v := strings.TrimSpace(os.Getenv(n)); v != "" {
			return v
		}
	}
	return ""
}

// Int64 returns the first parseable integer among the named variables, or
// fallback when none is set.
func Int64(fallback int64, names ...string) int64 {
	for _, n := range names {
		v := strings.TrimSpace(os.Getenv(n))
		if v == "" {
			continue
		}
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
