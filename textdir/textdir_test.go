package textdir

import (
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"

	"github.com/wudi/tagkit/tagging"
)

func TestDetectScript(t *testing.T) {
	tests := []struct {
		text string
		want language.Script
	}{
		{"Hello world", language.Latin},
		{"مرحبا بالعالم", language.Arabic},
		{"שלום עולם", language.Hebrew},
		{"Привет", language.Cyrillic},
		{"12345 !?", language.Latin},
		{"", language.Latin},
		{"漢字漢字テキ", language.Han},
	}
	for _, tc := range tests {
		if got := DetectScript(tc.text); got != tc.want {
			t.Errorf("DetectScript(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestDirection(t *testing.T) {
	if Direction(language.Arabic, false) != di.DirectionRTL {
		t.Error("Arabic should be RTL")
	}
	if Direction(language.Han, false) != di.DirectionLTR || Direction(language.Han, true) != di.DirectionTTB {
		t.Error("Han direction")
	}
	if Direction(language.Latin, true) != di.DirectionLTR {
		t.Error("Latin is never vertical")
	}
}

func TestFromText(t *testing.T) {
	if FromText("Hello") != tagging.WritingLrTb {
		t.Error("Latin text")
	}
	if FromText("שלום") != tagging.WritingRlTb {
		t.Error("Hebrew text")
	}
	if FromVerticalText("縦書き") != tagging.WritingTbRl {
		t.Error("vertical Japanese text")
	}
}

func TestFromLang(t *testing.T) {
	tests := []struct {
		lang string
		want tagging.WritingMode
		ok   bool
	}{
		{"ar", tagging.WritingRlTb, true},
		{"he-IL", tagging.WritingRlTb, true},
		{"fa", tagging.WritingRlTb, true},
		{"en-US", tagging.WritingLrTb, true},
		{"az-Latn", tagging.WritingLrTb, true},
		{"!!", tagging.WritingLrTb, false},
	}
	for _, tc := range tests {
		got, ok := FromLang(tc.lang)
		if got != tc.want || ok != tc.ok {
			t.Errorf("FromLang(%q) = %v,%v want %v,%v", tc.lang, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAnnotate(t *testing.T) {
	p := tagging.New(tagging.RoleP, tagging.WithLang("ar"))
	if !Annotate(p, "") {
		t.Fatal("Arabic language tag not annotated")
	}
	if w, _ := p.WritingMode(); w != tagging.WritingRlTb {
		t.Fatalf("mode = %v", w)
	}

	q := tagging.New(tagging.RoleP)
	if !Annotate(q, "שלום עולם") {
		t.Fatal("Hebrew text not annotated")
	}

	latin := tagging.New(tagging.RoleP)
	if Annotate(latin, "plain text") {
		t.Fatal("default mode should not be written")
	}
	if _, ok := latin.WritingMode(); ok {
		t.Fatal("writing mode set on Latin text")
	}

	explicit := tagging.New(tagging.RoleP, tagging.WithWritingMode(tagging.WritingLrTb))
	if Annotate(explicit, "שלום") {
		t.Fatal("explicit writing mode overridden")
	}
}
