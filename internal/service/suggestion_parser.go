package service

import (
	"regexp"
	"strings"
)

// SuggestionParser extrae el bloque de sugerencias |||a|b|c||| de la respuesta
// cruda del LLM. El centinela no está anclado al final: gana el primer match.
type SuggestionParser struct{}

// DefaultSuggestionParser permite uso directo sin instanciar.
var DefaultSuggestionParser = SuggestionParser{}

var suggestionBlockRe = regexp.MustCompile(`(?s)\|\|\|(.*?)\|\|\|`)

// Extract devuelve la respuesta limpia (sin el bloque centinela, con trim) y la
// lista ordenada de sugerencias. Si no hay centinela devuelve el texto tal cual
// y una lista vacía. No se impone tope al número de sugerencias: al modelo se
// le piden tres, pero se acepta lo que realmente emita.
func (SuggestionParser) Extract(rawReply string) (string, []string) {
	loc := suggestionBlockRe.FindStringSubmatchIndex(rawReply)
	if loc == nil {
		return rawReply, nil
	}

	cleaned := strings.TrimSpace(rawReply[:loc[0]] + rawReply[loc[1]:])
	payload := rawReply[loc[2]:loc[3]]

	var suggestions []string
	for _, piece := range strings.Split(payload, "|") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		suggestions = append(suggestions, piece)
	}

	return cleaned, suggestions
}
