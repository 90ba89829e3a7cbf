package reporter

import (
	"html/template"
	"strings"
	"unicode"
)

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func templateFunctions() template.FuncMap {
	return template.FuncMap{
		"title":   titleCase,
		"ToLower": strings.ToLower,
	}
}
