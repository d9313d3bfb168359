package homework

import (
	"strings"
	"unicode"
)

// PigLatin converts each whitespace-separated word: a leading consonant moves
// to the end with "ay" ("first" -> "irst-fay"), a leading vowel gets "-hay"
// ("apple" -> "apple-hay"). Punctuation around a word stays where it is.
func PigLatin(sentence string) string {
	words := strings.Fields(sentence)
	for i, w := range words {
		words[i] = pigLatinWord(w)
	}
	return strings.Join(words, " ")
}

func pigLatinWord(word string) string {
	runes := []rune(word)
	start := 0
	for start < len(runes) && !unicode.IsLetter(runes[start]) {
		start++
	}
	if start == len(runes) {
		return word
	}
	end := len(runes)
	for !unicode.IsLetter(runes[end-1]) {
		end--
	}

	prefix, core, suffix := string(runes[:start]), runes[start:end], string(runes[end:])
	if isVowel(core[0]) {
		return prefix + string(core) + "-hay" + suffix
	}
	return prefix + string(core[1:]) + "-" + string(core[0]) + "ay" + suffix
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiouAEIOU", r)
}
