package generator

import (
	"fmt"
	"text/template"
)

// sizeDecl renders a size declaration either as a macro or as a named
// read-only constant.
func sizeDecl(macro bool, symbol, suffix string, value int) string {
	if macro {
		return fmt.Sprintf("#define %s%s %d", symbol, suffix, value)
	}
	return fmt.Sprintf("const unsigned int %s%s = %d;", symbol, suffix, value)
}

// GetCommonFuncMap returns the functions available to declaration templates.
func GetCommonFuncMap() template.FuncMap {
	return template.FuncMap{
		"sizeDecl": sizeDecl,
	}
}
