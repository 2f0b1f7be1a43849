// Package placeholder finds and substitutes ${name} markers in notification templates.
//
// # Syntax
//
// A placeholder opens with "${", closes with "}" and carries a name of one or
// more ASCII letters, digits or underscores in between. Names are case-sensitive:
// ${Name} and ${name} are different placeholders.
//
//	Alert ${monitor_name} fired on block ${block_number}
//
// Anything else is literal text. An opener without a closing brace, an empty
// name (${}) or a name with other characters (${a-b}) is not a placeholder and
// is copied to the output unchanged. Rendering never fails.
//
// # Usage
//
//	out := placeholder.Render("Hello ${name}, ${missing}!", map[string]string{
//		"name": "Alice",
//	})
//	// out == "Hello Alice, ${missing}!"
//
// Substituted values are inserted exactly as given and are never scanned again,
// so a value that itself contains "${x}" stays literal.
//
// Scan exposes the underlying matches as an iterator:
//
//	for m := range placeholder.Scan(tmpl) {
//		fmt.Println(m.Start, m.End, m.Name)
//	}
package placeholder
