package bip39

import (
	"github.com/tyler-smith/go-bip39/wordlists"
)

const (
	// WordlistSize is the number of words of a BIP39 wordlist. Each word
	// encodes wordBits bits of the mnemonic bit string.
	WordlistSize = 2048

	wordBits = 11
)

// Language identifies one of the reference wordlists.
type Language string

const (
	English            Language = "english"
	Japanese           Language = "japanese"
	Korean             Language = "korean"
	Spanish            Language = "spanish"
	ChineseSimplified  Language = "chinese_simplified"
	ChineseTraditional Language = "chinese_traditional"
	French             Language = "french"
	Italian            Language = "italian"
	Czech              Language = "czech"
)

var (
	// languageCodes maps a language to its index in the derivation scheme,
	// used as hardened path component by the mnemonic application.
	languageCodes = map[Language]uint32{
		English:            0,
		Japanese:           1,
		Korean:             2,
		Spanish:            3,
		ChineseSimplified:  4,
		ChineseTraditional: 5,
		French:             6,
		Italian:            7,
		Czech:              8,
	}

	referenceWordlists = map[Language][]string{
		English:            wordlists.English,
		Japanese:           wordlists.Japanese,
		Korean:             wordlists.Korean,
		Spanish:            wordlists.Spanish,
		ChineseSimplified:  wordlists.ChineseSimplified,
		ChineseTraditional: wordlists.ChineseTraditional,
		French:             wordlists.French,
		Italian:            wordlists.Italian,
		Czech:              wordlists.Czech,
	}
)

// Code returns the hardened-less path component index of the language.
func (l Language) Code() (uint32, error) {
	code, ok := languageCodes[l]
	if !ok {
		return 0, ErrUnsupportedLanguage
	}
	return code, nil
}

// Wordlist is an ordered, read-only 2048-word vocabulary for a language.
// The index→word mapping is bijective and safe for concurrent use.
type Wordlist struct {
	language Language
	words    []string
	indexes  map[string]int
}

// NewWordlist returns a Wordlist for the given language backed by the given
// ordered word sequence.
func NewWordlist(language Language, words []string) (*Wordlist, error) {
	if _, ok := languageCodes[language]; !ok {
		return nil, ErrUnsupportedLanguage
	}
	if len(words) != WordlistSize {
		return nil, ErrInvalidWordlist
	}

	indexes := make(map[string]int, len(words))
	for i, word := range words {
		if _, ok := indexes[word]; ok {
			return nil, ErrInvalidWordlist
		}
		indexes[word] = i
	}
	return &Wordlist{language, words, indexes}, nil
}

// ReferenceWordlist returns the Wordlist of the reference vocabulary for the
// given language.
func ReferenceWordlist(language Language) (*Wordlist, error) {
	words, ok := referenceWordlists[language]
	if !ok {
		return nil, ErrUnsupportedLanguage
	}
	return NewWordlist(language, words)
}

// Language returns the language tag of the wordlist.
func (w *Wordlist) Language() Language {
	return w.language
}

// Word returns the word at the given index.
func (w *Wordlist) Word(index int) string {
	return w.words[index]
}

// Index returns the index of the given word, or false if the word does not
// belong to the wordlist.
func (w *Wordlist) Index(word string) (int, bool) {
	index, ok := w.indexes[word]
	return index, ok
}
