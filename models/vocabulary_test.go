package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularyRoundTrip(t *testing.T) {
	v := NewVocabulary()

	t.Run("campus", func(t *testing.T) {
		for _, code := range CampusValues() {
			display, err := v.DisplayCampus(code)
			require.NoError(t, err)
			require.NotEmpty(t, display)

			back, err := v.CampusCode(display)
			require.NoError(t, err)
			assert.Equal(t, code, back)

			again, err := v.DisplayCampus(back)
			require.NoError(t, err)
			assert.Equal(t, display, again)
		}
	})

	t.Run("career", func(t *testing.T) {
		for _, code := range CareerValues() {
			display, err := v.DisplayCareer(code)
			require.NoError(t, err)

			back, err := v.CareerCode(display)
			require.NoError(t, err)
			assert.Equal(t, code, back)
		}
	})

	t.Run("subject", func(t *testing.T) {
		for _, code := range SubjectValues() {
			display, err := v.DisplaySubject(code)
			require.NoError(t, err)

			back, err := v.SubjectCode(display)
			require.NoError(t, err)
			assert.Equal(t, code, back)
		}
	})

	t.Run("language", func(t *testing.T) {
		for _, code := range LanguageValues() {
			display, err := v.DisplayLanguage(code)
			require.NoError(t, err)

			back, err := v.LanguageCode(display)
			require.NoError(t, err)
			assert.Equal(t, code, back)
		}
	})

	t.Run("modality", func(t *testing.T) {
		for _, code := range ModalityValues() {
			display, err := v.DisplayModality(code)
			require.NoError(t, err)

			back, err := v.ModalityCode(display)
			require.NoError(t, err)
			assert.Equal(t, code, back)
		}
	})
}

func TestVocabularyDimensionSizes(t *testing.T) {
	assert.Len(t, CampusValues(), 3)
	assert.Len(t, CareerValues(), 4)
	assert.Len(t, SubjectValues(), 5)
	assert.Len(t, LanguageValues(), 3)
	assert.Len(t, ModalityValues(), 2)
}

func TestVocabularyRejectsUnknownValues(t *testing.T) {
	v := NewVocabulary()

	_, err := v.DisplayCampus("CAMPUS_MARTE")
	assert.Error(t, err)

	_, err = v.SubjectCode("Astrofísica")
	assert.Error(t, err)

	assert.False(t, v.ValidCampus("CAMPUS_MARTE"))
	assert.False(t, v.ValidCareer(""))
	assert.True(t, v.ValidSubject(SubjectProgramming))
	assert.True(t, v.ValidModality(ModalityOnline))
}

func TestVocabularyKnownDisplayStrings(t *testing.T) {
	v := NewVocabulary()

	tests := []struct {
		name string
		got  func() (string, error)
		want string
	}{
		{"vina del mar", func() (string, error) { return v.DisplayCampus(CampusVinaDelMar) }, "Viña del Mar"},
		{"computer engineering", func() (string, error) { return v.DisplayCareer(CareerComputerEngineering) }, "Ingeniería en Computación"},
		{"calculus", func() (string, error) { return v.DisplaySubject(SubjectCalculusI) }, "Cálculo I"},
		{"spanish and english", func() (string, error) { return v.DisplayLanguage(LanguageSpanishEnglish) }, "Español e Inglés"},
		{"in person", func() (string, error) { return v.DisplayModality(ModalityInPerson) }, "Presencial"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
