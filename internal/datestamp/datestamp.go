/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package datestamp formats creation dates in a locale's full date style,
// e.g. "Thursday, October 15, 2026" or "2026년 10월 15일 목요일".
package datestamp

import (
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_AU"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ko"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/zh"
	"github.com/go-playground/locales/zh_Hant"
	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// translators provide the CLDR date patterns. The first entry is the fallback.
var translators = []locales.Translator{
	en.New(),
	en_GB.New(),
	en_AU.New(),
	ko.New(),
	ja.New(),
	zh.New(),
	zh_Hant.New(),
	de.New(),
	fr.New(),
	es.New(),
	it.New(),
	nl.New(),
	pt.New(),
	pt_BR.New(),
	ru.New(),
}

// Supported lists the locales with a full date style, in the same order as
// translators.
var Supported = supportedTags()

var matcher = language.NewMatcher(Supported)

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(translators))
	for i, trans := range translators {
		tags[i] = language.Make(strings.ReplaceAll(trans.Locale(), "_", "-"))
	}
	return tags
}

// Full formats t in the full date style of the closest supported locale,
// falling back to English.
func Full(t time.Time, tag language.Tag) string {
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		index = 0
	}
	return translators[index].FmtDateFull(t)
}

// Parse parses a BCP 47 tag, returning language.Und for empty or invalid input.
// POSIX forms like "ko_KR.UTF-8" are accepted.
func Parse(value string) language.Tag {
	if value == "" {
		return language.Und
	}
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

// Detect returns the user's locale as reported by the operating system.
func Detect() language.Tag {
	value, err := locale.GetLocale()
	if err != nil {
		return language.Und
	}
	return Parse(value)
}
