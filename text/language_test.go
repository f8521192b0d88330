package text

import (
	"testing"

	"github.com/Rehan80221/adobe-structure-extractor/model"
)

func TestDetectLanguageType(t *testing.T) {
	tests := []struct {
		text     string
		expected model.LanguageType
	}{
		{"Introduction", model.LanguageLatin},
		{"Résumé of Findings", model.LanguageLatin},
		{"第1章 はじめに", model.LanguageJapanese},
		{"カタカナ", model.LanguageJapanese},
		{"第一章 绪论", model.LanguageChinese},
		{"豈", model.LanguageCJK}, // compatibility ideograph only
		{"מבוא", model.LanguageHebrew},
		{"مقدمة", model.LanguageArabic},
		{"परिचय", model.LanguageHindi},
		{"", model.LanguageLatin},
		{"123 456", model.LanguageLatin},
	}

	for _, tt := range tests {
		if got := DetectLanguageType(tt.text); got != tt.expected {
			t.Errorf("DetectLanguageType(%q) = %s, want %s", tt.text, got, tt.expected)
		}
	}
}

func TestDetectLanguageTypeKanaBeatsHan(t *testing.T) {
	// Japanese text typically mixes kanji and kana; the kana decides.
	if got := DetectLanguageType("日本語の文書"); got != model.LanguageJapanese {
		t.Errorf("mixed kanji/kana = %s, want japanese", got)
	}
}
