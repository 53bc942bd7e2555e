// ABOUTME: Loads ASSETVIEW_* settings from .env files at startup.
// ABOUTME: Sets variables only when not already present in the environment (no clobber).
package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// loadDotEnv reads a .env file and sets any variables not already in the
// environment, returning how many it set. Missing files are ignored. Lines
// starting with # are comments. Supports KEY=VALUE, KEY="VALUE", KEY='VALUE',
// and export KEY=VALUE.
func loadDotEnv(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	set := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		// Values may contain '='.
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			if os.Setenv(key, value) == nil {
				set++
			}
		}
	}
	return set
}

// unquote strips one pair of matching single or double quotes.
func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// loadDotEnvAuto loads .env from the working directory, then from next to
// the executable. Earlier files win because later ones never clobber.
func loadDotEnvAuto() {
	seen := map[string]bool{}
	load := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		loadDotEnv(p)
	}

	if wd, err := os.Getwd(); err == nil {
		load(filepath.Join(wd, ".env"))
	}
	if exe, err := os.Executable(); err == nil {
		load(filepath.Join(filepath.Dir(exe), ".env"))
	}
}
