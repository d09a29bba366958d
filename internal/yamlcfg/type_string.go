package yamlcfg

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// parseTypeString converts a YAML type keyword (e.g. "string", "list(number)")
// into its cty.Type equivalent, mirroring the HCL type-expression grammar.
// An empty string means the prop accepts anything.
func parseTypeString(s string) (cty.Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return cty.DynamicPseudoType, nil
	}

	if open := strings.IndexByte(s, '('); open >= 0 {
		if !strings.HasSuffix(s, ")") {
			return cty.DynamicPseudoType, fmt.Errorf("malformed type %q", s)
		}

		elementType, err := parseTypeString(s[open+1 : len(s)-1])
		if err != nil {
			return cty.DynamicPseudoType, err
		}
		if elementType == cty.DynamicPseudoType {
			return cty.DynamicPseudoType, fmt.Errorf("collection types cannot contain type 'any'")
		}

		switch s[:open] {
		case "list":
			return cty.List(elementType), nil
		case "map":
			return cty.Map(elementType), nil
		case "set":
			return cty.Set(elementType), nil
		default:
			return cty.DynamicPseudoType, fmt.Errorf("unknown type constructor %q", s[:open])
		}
	}

	switch s {
	case "string":
		return cty.String, nil
	case "number":
		return cty.Number, nil
	case "bool":
		return cty.Bool, nil
	case "any":
		return cty.DynamicPseudoType, nil
	}
	return cty.DynamicPseudoType, fmt.Errorf("unknown primitive type %q", s)
}
