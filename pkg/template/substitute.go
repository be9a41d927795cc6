package template

import "fmt"

// Substitute replaces {{var}} placeholders in text with values from the
// variable map. Unknown placeholders are left untouched so authoring
// mistakes stay visible in the delivered message instead of silently
// vanishing.
func Substitute(text string, vars map[string]interface{}) string {
	return varPattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := varPattern.FindStringSubmatch(match)
		if v, ok := vars[sub[1]]; ok && v != nil {
			return fmt.Sprint(v)
		}
		return match
	})
}

// SubstituteStrings is Substitute over a string-valued map.
func SubstituteStrings(text string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := varPattern.FindStringSubmatch(match)
		if v, ok := vars[sub[1]]; ok {
			return v
		}
		return match
	})
}
