// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Unified argument parsing for the Study Buddy CLI commands.
package cli

import (
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser provides unified argument parsing for CLI commands.
// It handles multiple flag formats consistently:
//   - Long flags: --flag value or --flag=value
//   - Boolean flags: --flag (no value needed)
//   - Positional arguments: arguments without flags
type ArgParser struct {
	flags      map[string]string
	boolFlags  map[string]bool
	positional []string
	raw        []string
}

// NewArgParser creates a new argument parser from raw arguments.
//
// Example:
//
//	args := NewArgParser([]string{"What is mitosis?", "--doc", "bio.pdf", "--json"})
//	args.Flag("doc")      // "bio.pdf"
//	args.BoolFlag("json") // true
//	args.Positional()     // ["What is mitosis?"]
func NewArgParser(raw []string) *ArgParser {
	parser := &ArgParser{
		flags:      make(map[string]string),
		boolFlags:  make(map[string]bool),
		positional: make([]string, 0),
		raw:        raw,
	}

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if strings.HasPrefix(arg, "-") {
			// --flag=value format
			if strings.Contains(arg, "=") {
				parts := strings.SplitN(arg, "=", 2)
				name := strings.TrimLeft(parts[0], "-")
				value := parts[1]
				if value == "true" || value == "false" {
					parser.boolFlags[name] = value == "true"
				} else {
					parser.flags[name] = value
				}
				i++
				continue
			}

			name := strings.TrimLeft(arg, "-")

			// --flag value format when the next token is not a flag
			if i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") && flagTakesValue(name) {
				parser.flags[name] = raw[i+1]
				i += 2
				continue
			}

			parser.boolFlags[name] = true
			i++
			continue
		}

		parser.positional = append(parser.positional, arg)
		i++
	}

	return parser
}

// valueFlags are flags that consume the following token.
var valueFlags = map[string]bool{
	"doc":     true,
	"d":       true,
	"format":  true,
	"backend": true,
	"out":     true,
}

func flagTakesValue(name string) bool {
	return valueFlags[name]
}

// Flag returns a string flag value, or "" if unset.
func (a *ArgParser) Flag(names ...string) string {
	for _, name := range names {
		if v, ok := a.flags[name]; ok {
			return v
		}
	}
	return ""
}

// BoolFlag returns whether a boolean flag is set.
func (a *ArgParser) BoolFlag(names ...string) bool {
	for _, name := range names {
		if a.boolFlags[name] {
			return true
		}
	}
	return false
}

// Positional returns the non-flag arguments in order.
func (a *ArgParser) Positional() []string {
	return a.positional
}

// Question joins all positional arguments into one question string.
func (a *ArgParser) Question() string {
	return strings.TrimSpace(strings.Join(a.positional, " "))
}
