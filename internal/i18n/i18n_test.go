package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilgisen/uknews/internal/models"
)

func TestEmbeddedLocalesHaveSameKeys(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)
	assert.Equal(t, b.Keys(models.LangHindi), b.Keys(models.LangEnglish))
	assert.Equal(t, "आज का मौसम", b.T(models.LangHindi, "weather.title"))
	assert.Equal(t, "Today's Weather", b.T(models.LangEnglish, "weather.title"))
}

func TestTFallsBackToHindiThenKey(t *testing.T) {
	b, err := LoadFS(fstest.MapFS{
		"l/hi.yaml": {Data: []byte("nav:\n  home: होम\nonly: केवल\n")},
		"l/en.yaml": {Data: []byte("nav:\n  home: Home\n")},
	}, "l")
	require.NoError(t, err)

	assert.Equal(t, "Home", b.T(models.LangEnglish, "nav.home"))
	assert.Equal(t, "केवल", b.T(models.LangEnglish, "only"))
	assert.Equal(t, "missing.key", b.T(models.LangEnglish, "missing.key"))
}

func TestCondition(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "आंशिक बादल", b.Condition(models.LangHindi, "Partly cloudy"))
	assert.Equal(t, "Partly Cloudy", b.Condition(models.LangEnglish, "Partly cloudy"))
	assert.Equal(t, "Blizzard", b.Condition(models.LangHindi, "Blizzard"))
}

func TestMatch(t *testing.T) {
	cases := map[string]models.Lang{
		"hi":    models.LangHindi,
		"EN":    models.LangEnglish,
		"en-IN": models.LangEnglish,
		"hi-IN": models.LangHindi,
	}
	for in, want := range cases {
		got, ok := Match(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := Match("fr")
	assert.False(t, ok)
	_, ok = Match("!!")
	assert.False(t, ok)
}
