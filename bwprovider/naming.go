package bwprovider

import (
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
)

var (
	nonCanonicalRe    = regexp.MustCompile(`[^A-Za-z0-9-]+`)
	nonAlphanumericRe = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// Canonicalise replaces the first run of characters other than letters,
// digits and hyphens with a single hyphen. Later runs are left untouched:
// "a!!b!!c" becomes "a-b!!c".
func Canonicalise(s string) string {
	loc := nonCanonicalRe.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + "-" + s[loc[1]:]
}

// MakeAlphanumeric removes every character that is not a letter or a digit.
func MakeAlphanumeric(s string) string {
	return nonAlphanumericRe.ReplaceAllString(s, "")
}

// LogicalID joins the parts into a CamelCase CloudFormation logical id, e.g.
// LogicalID("orders", "create-fn", "Role") is "OrdersCreateFnRole".
func LogicalID(parts ...string) string {
	return MakeAlphanumeric(strcase.ToCamel(strings.Join(parts, "-")))
}

// StackName returns the configured stack name override, or
// "{service}-{stage}".
func (p *Provider) StackName() string {
	if name := p.fw.Service.Provider.StackName; name != "" {
		return name
	}
	return p.fw.Service.Service + "-" + p.Stage()
}
