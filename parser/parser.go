// Package parser turns one command line of the form
//
//	--command --key=value --other=value
//
// into the command name and its parameters.
package parser

import "strings"

const flagPrefix = "--"

// Params maps a parameter name to its value. Keys are unique, a repeated
// key keeps the last value seen on the line.
type Params map[string]string

// Parse scans line from left to right. Tokens starting with "--" and
// holding a "=" become parameters, tokens starting with "--" without "="
// name the command (the last one wins). Anything else is ignored.
func Parse(line string) (command string, params Params) {

	params = Params{}

	for _, token := range strings.Fields(line) {
		if !strings.HasPrefix(token, flagPrefix) {
			continue
		}
		token = token[len(flagPrefix):]

		key, value, isParam := strings.Cut(token, "=")
		if isParam {
			params[key] = value
			continue
		}

		command = token
	}

	return
}

// Has reports whether key was present on the line, even with an empty value.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}
