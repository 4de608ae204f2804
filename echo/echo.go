// Package echo repeats input lines back. Lines carrying parameters are
// reduced to their values, ordered by parameter name.
package echo

import (
	"strings"

	"github.com/rkbarth/catalogdb/parser"
	"github.com/rkbarth/catalogdb/utils"
)

const DefaultPrefix = "input"

type Transformer struct {
	// Prefix is the parameter name prefix that switches a line into
	// parameter mode, "input" matches --input01=value.
	Prefix string
}

func NewTransformer(prefix string) *Transformer {
	return &Transformer{
		Prefix: prefix,
	}
}

func (t *Transformer) Marker() string {
	return "--" + t.Prefix
}

// Transform returns the values of every --key=value token joined by one
// space and sorted by key when the line holds the marker, otherwise the
// line itself.
func (t *Transformer) Transform(line string) string {
	if !strings.Contains(line, t.Marker()) {
		return line
	}

	_, params := parser.Parse(line)
	return strings.Join(utils.GetValues(params), " ")
}
