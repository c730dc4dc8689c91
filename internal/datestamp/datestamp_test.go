/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package datestamp

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestFull(t *testing.T) {
	day := time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		locale   string
		expected string
	}{
		{"en-US", "Thursday, October 15, 2026"},
		{"ko-KR", "2026년 10월 15일 목요일"},
		{"ja", "2026年10月15日木曜日"},
		{"de-DE", "Donnerstag, 15. Oktober 2026"},
		{"fr", "jeudi 15 octobre 2026"},
		{"und", "Thursday, October 15, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got := Full(day, language.MustParse(tt.locale))
			if got != tt.expected {
				t.Errorf("Full(%s) = %q, expected %q", tt.locale, got, tt.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected language.Tag
	}{
		{"", language.Und},
		{"ko-KR", language.MustParse("ko-KR")},
		{"ko_KR.UTF-8", language.MustParse("ko-KR")},
		{"de_DE@euro", language.MustParse("de-DE")},
		{"!!", language.Und},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Parse(tt.input)
			if got.String() != tt.expected.String() {
				t.Errorf("Parse(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFull_RegionalAndOtherLocales(t *testing.T) {
	day := time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)
	american := Full(day, language.AmericanEnglish)

	tests := []struct {
		locale   string
		contains string
	}{
		{"en-GB", "15 October 2026"},
		{"es-ES", "octubre"},
		{"pt-BR", "outubro"},
		{"zh-CN", "2026"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got := Full(day, language.MustParse(tt.locale))
			if got == american {
				t.Errorf("Full(%s) fell back to US English: %q", tt.locale, got)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Full(%s) = %q, expected it to contain %q", tt.locale, got, tt.contains)
			}
		})
	}
}

func TestSupportedMatchesTranslators(t *testing.T) {
	if len(translators) != len(Supported) {
		t.Fatalf("expected %d tags, got %d", len(translators), len(Supported))
	}
	if Supported[0].String() != language.English.String() {
		t.Errorf("expected English fallback first, got %v", Supported[0])
	}
}
