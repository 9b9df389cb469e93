package service

import (
	"reflect"
	"testing"
)

func TestExtractRoundTrip(t *testing.T) {
	raw := "Here's your plan.|||Tell me more|I want a plan|It's my knee|||"

	cleaned, suggestions := DefaultSuggestionParser.Extract(raw)

	if cleaned != "Here's your plan." {
		t.Fatalf("unexpected cleaned reply: %q", cleaned)
	}
	want := []string{"Tell me more", "I want a plan", "It's my knee"}
	if !reflect.DeepEqual(suggestions, want) {
		t.Fatalf("unexpected suggestions: %v", suggestions)
	}
}

func TestExtractNoSentinelReturnsInputUnchanged(t *testing.T) {
	raw := "Just a plain reply with | a stray pipe."

	cleaned, suggestions := DefaultSuggestionParser.Extract(raw)

	if cleaned != raw {
		t.Fatalf("expected input unchanged, got %q", cleaned)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", suggestions)
	}
}

func TestExtractFirstMatchWins(t *testing.T) {
	// El centinela no está anclado al final: se toma el primer bloque y el
	// resto del texto queda en el reply.
	raw := "Intro |||one|two||| middle text"

	cleaned, suggestions := DefaultSuggestionParser.Extract(raw)

	if cleaned != "Intro  middle text" {
		t.Fatalf("unexpected cleaned reply: %q", cleaned)
	}
	if !reflect.DeepEqual(suggestions, []string{"one", "two"}) {
		t.Fatalf("unexpected suggestions: %v", suggestions)
	}
}

func TestExtractTrimsAndDropsEmptyPieces(t *testing.T) {
	raw := "Reply||| first |  | second |||"

	cleaned, suggestions := DefaultSuggestionParser.Extract(raw)

	if cleaned != "Reply" {
		t.Fatalf("unexpected cleaned reply: %q", cleaned)
	}
	if !reflect.DeepEqual(suggestions, []string{"first", "second"}) {
		t.Fatalf("unexpected suggestions: %v", suggestions)
	}
}

func TestExtractDoesNotCapSuggestionCount(t *testing.T) {
	// Al modelo se le piden tres, pero se acepta lo que emita.
	raw := "ok|||a|b|c|d|e|||"

	_, suggestions := DefaultSuggestionParser.Extract(raw)

	if len(suggestions) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(suggestions))
	}
}

func TestExtractMultilineReply(t *testing.T) {
	raw := "Line one.\nLine two.\n|||Go on|Another plan|Thanks|||"

	cleaned, suggestions := DefaultSuggestionParser.Extract(raw)

	if cleaned != "Line one.\nLine two." {
		t.Fatalf("unexpected cleaned reply: %q", cleaned)
	}
	if len(suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(suggestions))
	}
}
