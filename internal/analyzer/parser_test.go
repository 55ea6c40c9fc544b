package analyzer

import (
	"reflect"
	"testing"

	"github.com/mkarpich/teenspeak-bot/internal/models"
)

const wellFormedResponse = `EMOTIONAL_STATE:
angry, overwhelmed

TRUE_MEANING:
Ребёнку нужно личное пространство, он перегружен общением.

CHILD_NEEDS:
Время побыть одному.

SUGGESTED_RESPONSES:
1. Хорошо, я дам тебе время.
2. Я рядом, когда захочешь поговорить.
3. Давай вернёмся к этому позже.

WHAT_TO_AVOID:
- Не давить с расспросами
- Не обижаться на резкость
- Не читать нотации`

func TestParseWellFormedResponse(t *testing.T) {
	t.Parallel()

	got := Parse(wellFormedResponse, "Отстань от меня")

	if got.OriginalPhrase != "Отстань от меня" {
		t.Errorf("OriginalPhrase=%q", got.OriginalPhrase)
	}
	wantStates := []models.EmotionalState{models.Angry, models.Overwhelmed}
	if !reflect.DeepEqual(got.EmotionalState, wantStates) {
		t.Errorf("EmotionalState=%v want=%v", got.EmotionalState, wantStates)
	}
	if got.TrueMeaning != "Ребёнку нужно личное пространство, он перегружен общением." {
		t.Errorf("TrueMeaning=%q", got.TrueMeaning)
	}
	if got.ChildNeeds != "Время побыть одному." {
		t.Errorf("ChildNeeds=%q", got.ChildNeeds)
	}
	wantResponses := []string{
		"Хорошо, я дам тебе время.",
		"Я рядом, когда захочешь поговорить.",
		"Давай вернёмся к этому позже.",
	}
	if !reflect.DeepEqual(got.SuggestedResponses, wantResponses) {
		t.Errorf("SuggestedResponses=%v", got.SuggestedResponses)
	}
	wantAvoid := []string{
		"Не давить с расспросами",
		"Не обижаться на резкость",
		"Не читать нотации",
	}
	if !reflect.DeepEqual(got.WhatToAvoid, wantAvoid) {
		t.Errorf("WhatToAvoid=%v", got.WhatToAvoid)
	}
	if got.ConfidenceScore != models.ParsedConfidence {
		t.Errorf("ConfidenceScore=%v want=%v", got.ConfidenceScore, models.ParsedConfidence)
	}
	if got.SafetyNotice != "" {
		t.Errorf("SafetyNotice=%q want empty", got.SafetyNotice)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestParseMissingSectionsUseDefaults(t *testing.T) {
	t.Parallel()

	got := Parse("EMOTIONAL_STATE:\nangry", "фраза")

	if got.TrueMeaning != defaultTrueMeaning {
		t.Errorf("TrueMeaning=%q want=%q", got.TrueMeaning, defaultTrueMeaning)
	}
	if got.ChildNeeds != defaultChildNeeds {
		t.Errorf("ChildNeeds=%q want=%q", got.ChildNeeds, defaultChildNeeds)
	}
	wantList := []string{listPlaceholder}
	if !reflect.DeepEqual(got.SuggestedResponses, wantList) {
		t.Errorf("SuggestedResponses=%v want=%v", got.SuggestedResponses, wantList)
	}
	if !reflect.DeepEqual(got.WhatToAvoid, wantList) {
		t.Errorf("WhatToAvoid=%v want=%v", got.WhatToAvoid, wantList)
	}
}

func TestParseGarbageInput(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "просто текст без структуры", "\n\n\n"} {
		got := Parse(raw, "фраза")
		if !reflect.DeepEqual(got.EmotionalState, []models.EmotionalState{models.Confused}) {
			t.Errorf("raw=%q: EmotionalState=%v want=[confused]", raw, got.EmotionalState)
		}
		if err := got.Validate(); err != nil {
			t.Errorf("raw=%q: Validate: %v", raw, err)
		}
	}
}

func TestParseSafetyNotice(t *testing.T) {
	t.Parallel()

	raw := `EMOTIONAL_STATE:
sad

SAFETY_NOTICE:
Ситуация требует немедленного внимания специалиста.`

	got := Parse(raw, "Уйду из дома")
	if got.SafetyNotice != "Ситуация требует немедленного внимания специалиста." {
		t.Errorf("SafetyNotice=%q", got.SafetyNotice)
	}
}

func TestParseDecoratedHeaders(t *testing.T) {
	t.Parallel()

	raw := `**EMOTIONAL_STATE:**
sad

**true_meaning:**
Скрытая грусть.`

	got := Parse(raw, "фраза")
	if !reflect.DeepEqual(got.EmotionalState, []models.EmotionalState{models.Sad}) {
		t.Errorf("EmotionalState=%v", got.EmotionalState)
	}
	if got.TrueMeaning != "Скрытая грусть." {
		t.Errorf("TrueMeaning=%q", got.TrueMeaning)
	}
}

func TestParseMultilineSection(t *testing.T) {
	t.Parallel()

	raw := `TRUE_MEANING:
Первое предложение.
Второе предложение.`

	got := Parse(raw, "фраза")
	want := "Первое предложение.\nВторое предложение."
	if got.TrueMeaning != want {
		t.Errorf("TrueMeaning=%q want=%q", got.TrueMeaning, want)
	}
}

func TestParseEmotionalStates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want []models.EmotionalState
	}{
		{
			name: "no_keyword_defaults_to_confused",
			text: "xyz",
			want: []models.EmotionalState{models.Confused},
		},
		{
			name: "empty_defaults_to_confused",
			text: "",
			want: []models.EmotionalState{models.Confused},
		},
		{
			name: "russian_variants_dedup",
			text: "злость, злится, грусть",
			want: []models.EmotionalState{models.Angry, models.Sad},
		},
		{
			name: "english_tokens",
			text: "angry, overwhelmed",
			want: []models.EmotionalState{models.Angry, models.Overwhelmed},
		},
		{
			name: "case_insensitive",
			text: "ANGRY",
			want: []models.EmotionalState{models.Angry},
		},
		{
			name: "scan_order",
			text: "грусть и злость",
			want: []models.EmotionalState{models.Angry, models.Sad},
		},
		{
			name: "russian_sentence",
			text: "Ребёнок испытывает тревогу и защищается",
			want: []models.EmotionalState{models.Anxious, models.Defensive},
		},
		{
			name: "keyword_inside_longer_word",
			text: "перегруженность",
			want: []models.EmotionalState{models.Overwhelmed},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := parseEmotionalStates(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("parseEmotionalStates(%q)=%v want=%v", tc.text, got, tc.want)
			}
		})
	}
}

func TestParseListSection(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "truncates_to_three",
			text: "- Первый\n- Второй\n- Третий\n- Четвёртый\n- Пятый",
			want: []string{"Первый", "Второй", "Третий"},
		},
		{
			name: "numbered_items",
			text: "1. Один\n2) Два\n3. Три",
			want: []string{"Один", "Два", "Три"},
		},
		{
			name: "bullet_items",
			text: "• Один\n• Два",
			want: []string{"Один", "Два"},
		},
		{
			name: "free_form_lines",
			text: "Первая строка\nВторая строка\nТретья строка\nЧетвёртая строка",
			want: []string{"Первая строка", "Вторая строка", "Третья строка"},
		},
		{
			name: "empty_placeholder",
			text: "",
			want: []string{"Информация недоступна"},
		},
		{
			name: "enumerator_only_line_skipped",
			text: "-\n- Реальный пункт",
			want: []string{"Реальный пункт"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := parseListSection(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("parseListSection(%q)=%v want=%v", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractSectionsDropsPreamble(t *testing.T) {
	t.Parallel()

	raw := "Вот мой анализ:\n\nTRUE_MEANING:\nСуть фразы."
	sections := extractSections(raw)

	if _, ok := sections["Вот мой анализ"]; ok {
		t.Error("preamble captured as section")
	}
	if sections[headerTrueMeaning] != "Суть фразы." {
		t.Errorf("TRUE_MEANING=%q", sections[headerTrueMeaning])
	}
}
