// Package jsonpath extracts values from JSON documents with a small
// JSONPath subset ($, dotted fields, [n] indexes, ['quoted'] fields and the
// [*] wildcard).
package jsonpath

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	quotedField = regexp.MustCompile(`\[['"]([^'"]+)['"]\]`)
	indexField  = regexp.MustCompile(`\[(\d+|\*)\]`)
)

// Extract returns the value at path in json. Strings are returned unquoted;
// objects and arrays are returned as raw JSON.
func Extract(json string, path string) (string, error) {
	if json == "" {
		return "", fmt.Errorf("empty JSON document")
	}
	if path == "" {
		return "", fmt.Errorf("empty JSONPath expression")
	}
	if !gjson.Valid(json) {
		return "", fmt.Errorf("invalid JSON document")
	}

	result := gjson.Get(json, ToGjsonPath(path))
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// ToGjsonPath converts a JSONPath expression to gjson syntax:
//
//	$.databases[0].label  ->  databases.0.label
//	$.databases[*].id     ->  databases.#.id
func ToGjsonPath(path string) string {
	path = strings.TrimPrefix(strings.TrimSpace(path), "$")
	if path == "" {
		return "@this"
	}

	path = quotedField.ReplaceAllString(path, ".$1")
	path = indexField.ReplaceAllStringFunc(path, func(m string) string {
		if m == "[*]" {
			return ".#"
		}
		return "." + m[1:len(m)-1]
	})
	return strings.TrimPrefix(path, ".")
}
