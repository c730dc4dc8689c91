/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package naming

import "strings"

// kotlinKeywords are Kotlin's hard keywords, which need backticks when used
// as package segments.
var kotlinKeywords = map[string]struct{}{
	"as": {}, "break": {}, "class": {}, "continue": {}, "do": {},
	"else": {}, "false": {}, "for": {}, "fun": {}, "if": {},
	"in": {}, "interface": {}, "is": {}, "null": {}, "object": {},
	"package": {}, "return": {}, "super": {}, "this": {}, "throw": {},
	"true": {}, "try": {}, "typealias": {}, "typeof": {}, "val": {},
	"var": {}, "when": {}, "while": {},
}

// IsKotlinKeyword reports whether s is a Kotlin hard keyword.
func IsKotlinKeyword(s string) bool {
	_, ok := kotlinKeywords[s]
	return ok
}

// EscapeKotlinPackage backtick-quotes package segments that are Kotlin
// keywords, e.g. "com.example.in" -> "com.example.`in`".
func EscapeKotlinPackage(pkg string) string {
	if pkg == "" {
		return pkg
	}
	segments := strings.Split(pkg, ".")
	for i, segment := range segments {
		if IsKotlinKeyword(segment) {
			segments[i] = "`" + segment + "`"
		}
	}
	return strings.Join(segments, ".")
}
