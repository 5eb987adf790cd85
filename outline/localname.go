package outline

import (
	"golang.org/x/text/language"
)

// Localized names for automatically titled outlines. English first, it
// doubles as the matcher fallback for unlisted languages.
var localizedTitles = []struct {
	tag  language.Tag
	name string
}{
	{language.English, "Contents"},
	{language.Arabic, "المحتويات"},
	{language.MustParse("nb"), "Innhold"},
	{language.TraditionalChinese, "目錄"},
	{language.Chinese, "目录"},
	{language.Czech, "Obsah"},
	{language.Danish, "Indhold"},
	{language.Dutch, "Inhoudsopgave"},
	{language.French, "Table des matières"},
	{language.German, "Inhaltsverzeichnis"},
	{language.Italian, "Indice"},
	{language.MustParse("nn"), "Innhald"},
	{language.Polish, "Spis treści"},
	{language.Portuguese, "Sumário"},
	{language.Russian, "Содержание"},
	{language.Slovenian, "Kazalo"},
	{language.Spanish, "Índice"},
	{language.Swedish, "Innehåll"},
	{language.Ukrainian, "Зміст"},
	{language.Vietnamese, "Mục lục"},
}

var titleMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(localizedTitles))
	for i, e := range localizedTitles {
		tags[i] = e.tag
	}
	return language.NewMatcher(tags)
}()

// localizedTitle resolves the automatic outline title for a BCP 47 language
// tag (with optional region, "zh-TW" picks the traditional form). Unknown or
// empty tags fall back to English.
func localizedTitle(lang string) string {
	if lang == "" {
		return localizedTitles[0].name
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return localizedTitles[0].name
	}
	_, index, _ := titleMatcher.Match(tag)
	return localizedTitles[index].name
}
