package rule

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Registered rule names.
const (
	NameVariantFour = "variant4"
	NameStep        = "step"

	linearPrefix = "lin:"
)

// Sentinel errors for rule resolution.
var (
	// ErrUnknownRule is returned by Lookup and Parse for an unregistered name.
	ErrUnknownRule = errors.New("rule: unknown rule")

	// ErrBadSyntax is returned by Parse for a malformed linear rule.
	ErrBadSyntax = errors.New("rule: malformed rule text")
)

var registry = map[string]func() BranchRule{
	NameVariantFour: VariantFour,
	NameStep:        Step,
}

// Names returns the registered rule names in a stable order.
func Names() []string {
	return []string{NameVariantFour, NameStep}
}

// Lookup resolves a registered rule by name (case-insensitive).
func Lookup(name string) (BranchRule, error) {
	mk, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return BranchRule{}, errors.Wrapf(ErrUnknownRule, "%q", name)
	}

	return mk(), nil
}

// Parse resolves either a registered name or a linear rule "lin:lm,la,rm,ra".
func Parse(text string) (BranchRule, error) {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(strings.ToLower(t), linearPrefix) {
		return Lookup(t)
	}

	fields := strings.Split(t[len(linearPrefix):], ",")
	if len(fields) != 4 {
		return BranchRule{}, errors.Wrapf(ErrBadSyntax, "%q: want 4 coefficients, got %d", text, len(fields))
	}
	var k [4]int64
	for i, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return BranchRule{}, errors.Wrapf(ErrBadSyntax, "%q: coefficient %d: %v", text, i+1, err)
		}
		k[i] = n
	}

	return Linear(k[0], k[1], k[2], k[3]), nil
}
