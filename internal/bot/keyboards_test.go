package bot

import (
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mkarpich/teenspeak-bot/internal/examples"
)

func callbackData(t *testing.T, btn tgbotapi.InlineKeyboardButton) string {
	t.Helper()
	if btn.CallbackData == nil {
		t.Fatalf("button %q has no callback data", btn.Text)
	}
	return *btn.CallbackData
}

func TestMainMenuLayout(t *testing.T) {
	menu := mainMenu()

	if got := len(menu.InlineKeyboard); got != 4 {
		t.Fatalf("main menu rows = %d, want 4", got)
	}

	want := []string{cbDecode, cbExamples, cbHowItWorks, cbTips}
	for i, row := range menu.InlineKeyboard {
		if len(row) != 1 {
			t.Fatalf("row %d has %d buttons, want 1", i, len(row))
		}
		if got := callbackData(t, row[0]); got != want[i] {
			t.Errorf("row %d callback = %q, want %q", i, got, want[i])
		}
	}
}

func TestAfterAnalysisMenuLayout(t *testing.T) {
	menu := afterAnalysisMenu()

	if got := len(menu.InlineKeyboard); got != 2 {
		t.Fatalf("after-analysis menu rows = %d, want 2", got)
	}

	want := [][]string{
		{cbDecode, cbMoreOptions},
		{cbSimilar, cbHome},
	}
	for i, row := range menu.InlineKeyboard {
		if len(row) != len(want[i]) {
			t.Fatalf("row %d has %d buttons, want %d", i, len(row), len(want[i]))
		}
		for j, btn := range row {
			if got := callbackData(t, btn); got != want[i][j] {
				t.Errorf("button [%d][%d] callback = %q, want %q", i, j, got, want[i][j])
			}
		}
	}
}

func TestExamplesMenu(t *testing.T) {
	catalog := examples.Catalog()
	menu := examplesMenu(catalog)

	// One row per example plus the return-home row.
	if got, want := len(menu.InlineKeyboard), len(catalog)+1; got != want {
		t.Fatalf("examples menu rows = %d, want %d", got, want)
	}

	first := menu.InlineKeyboard[0][0]
	if got := callbackData(t, first); got != "example_0" {
		t.Errorf("first example callback = %q, want %q", got, "example_0")
	}
	if !strings.Contains(first.Text, catalog[0].Phrase) {
		t.Errorf("first button text %q missing phrase %q", first.Text, catalog[0].Phrase)
	}
	if !strings.HasPrefix(first.Text, "😤") {
		t.Errorf("first button text %q should start with its emoji", first.Text)
	}

	last := menu.InlineKeyboard[len(menu.InlineKeyboard)-1][0]
	if got := callbackData(t, last); got != cbHome {
		t.Errorf("last row callback = %q, want %q", got, cbHome)
	}
}

func TestFeedbackMenu(t *testing.T) {
	menu := feedbackMenu()

	if got := len(menu.InlineKeyboard); got != 2 {
		t.Fatalf("feedback menu rows = %d, want 2", got)
	}

	row := menu.InlineKeyboard[0]
	if got := callbackData(t, row[0]); got != cbFeedbackPositive {
		t.Errorf("first feedback callback = %q, want %q", got, cbFeedbackPositive)
	}
	if got := callbackData(t, row[1]); got != cbFeedbackNegative {
		t.Errorf("second feedback callback = %q, want %q", got, cbFeedbackNegative)
	}
}

func TestErrorMenuOffersRetry(t *testing.T) {
	menu := errorMenu()

	if got := callbackData(t, menu.InlineKeyboard[0][0]); got != cbDecode {
		t.Errorf("error menu retry callback = %q, want %q", got, cbDecode)
	}
	if got := callbackData(t, menu.InlineKeyboard[1][0]); got != cbHome {
		t.Errorf("error menu home callback = %q, want %q", got, cbHome)
	}
}
