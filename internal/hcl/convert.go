package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// countToken evaluates a count attribute into the textual token the count
// parser understands. A missing attribute yields nil. Numbers are rendered in
// their decimal form, so `-3` and `"-3"` are equivalent, while `"+3"` must be
// written as a string to keep its sign.
func countToken(expr hcl.Expression, name string) (*string, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	if val.Type() == cty.Number && !val.AsBigFloat().IsInt() {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid count",
			Detail:   fmt.Sprintf("The %q attribute must be a whole number.", name),
			Subject:  expr.Range().Ptr(),
		}}
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid count",
			Detail:   fmt.Sprintf("The %q attribute must be a number or a string: %s.", name, err),
			Subject:  expr.Range().Ptr(),
		}}
	}

	token := str.AsString()
	return &token, nil
}
