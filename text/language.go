package text

import (
	"github.com/Rehan80221/adobe-structure-extractor/model"
)

// DetectLanguageType analyzes a string and returns its dominant script
// classification based on Unicode block membership. Classification is
// presence-based rather than majority-based: any Japanese kana makes the
// span Japanese, any Han character makes it Chinese, and so on, matching
// how multilingual documents mix scripts inside headings.
func DetectLanguageType(text string) model.LanguageType {
	if hasCJKCharacters(text) {
		for _, r := range text {
			if isKana(r) {
				return model.LanguageJapanese
			}
		}
		for _, r := range text {
			if isHan(r) {
				return model.LanguageChinese
			}
		}
		return model.LanguageCJK
	}

	for _, r := range text {
		switch {
		case r >= 0x0590 && r <= 0x05FF:
			return model.LanguageHebrew
		case r >= 0x0600 && r <= 0x06FF:
			return model.LanguageArabic
		case r >= 0x0900 && r <= 0x097F:
			return model.LanguageHindi
		}
	}

	return model.LanguageLatin
}

// hasCJKCharacters reports whether text contains any CJK character
func hasCJKCharacters(text string) bool {
	for _, r := range text {
		if isHan(r) || isKana(r) || isCJKCompat(r) {
			return true
		}
	}
	return false
}

// isKana reports whether r is hiragana or katakana
func isKana(r rune) bool {
	return (r >= 0x3040 && r <= 0x309F) || (r >= 0x30A0 && r <= 0x30FF)
}

// isHan reports whether r is in the unified CJK ideograph block
func isHan(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// isCJKCompat reports whether r is a CJK compatibility ideograph
func isCJKCompat(r rune) bool {
	return r >= 0xF900 && r <= 0xFAFF
}
