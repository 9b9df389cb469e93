package service

import (
	"fmt"
	"strings"

	"fitmate/internal/domain"
)

// SuggestionDelimiter es el centinela que el modelo debe usar para emitir las
// sugerencias al final de su respuesta: |||a|b|c|||
const SuggestionDelimiter = "|||"

// PromptBuilder arma el system prompt que se envía al LLM en cada turno.
// El prompt se recalcula siempre: personalidad, días y lifestyle cambian por llamada.
type PromptBuilder struct {
	catalog  PersonalityCatalog
	selector BehaviorSelector
}

// BuiltPrompt es el resultado de la composición: el prompt y la etiqueta de
// comportamiento elegida, que viaja de vuelta al cliente como aiBehavior.
type BuiltPrompt struct {
	SystemPrompt  string
	BehaviorLabel string
}

// Build compone el system prompt a partir de personalidad, días de uso y
// snapshot de lifestyle. Función pura, sin efectos.
func (b PromptBuilder) Build(personalityID string, daysUsingApp int, lifestyle domain.LifestyleSnapshot) BuiltPrompt {
	profile := b.catalog.Lookup(personalityID)
	stage := b.selector.SelectStage(daysUsingApp)

	var sb strings.Builder

	// 1. Rol base
	sb.WriteString("You are an AI-powered fitness companion chatbot.\n\n")

	// 2. Personalidad
	sb.WriteString("PERSONALITY:\n")
	sb.WriteString(profile.Instructions)
	sb.WriteString("\n\n")

	// 3. Etapa por antigüedad de uso
	sb.WriteString("USAGE DURATION BEHAVIOR:\n")
	sb.WriteString(stage.Instruction)
	sb.WriteString("\n\n")

	// 4. Contexto de lifestyle, renderizado tal cual llega
	sb.WriteString("LIFESTYLE CONTEXT (dummy data):\n")
	sb.WriteString(fmt.Sprintf("- Steps today: %d\n", lifestyle.Steps))
	sb.WriteString(fmt.Sprintf("- Exercise minutes today: %g\n", lifestyle.ExerciseMinutes))
	sb.WriteString(fmt.Sprintf("- Sleep hours last night: %g\n", lifestyle.SleepHours))
	sb.WriteString("\n")

	// 5. Bloque fijo de reglas
	sb.WriteString("IMPORTANT RULES:\n")
	sb.WriteString("- Provide fitness, workout, and basic wellness guidance only.\n")
	sb.WriteString("- If the user asks about anything outside fitness and wellness (travel, politics, movies, coding, etc.), " +
		"politely refuse and redirect the conversation back to fitness.\n")
	sb.WriteString("- Do NOT give medical advice.\n")
	sb.WriteString("- If the user asks about diseases, injuries, or medication, politely refuse and suggest consulting a certified professional.\n")
	sb.WriteString("- If the user asks for a plan, diet, or workout, provide it immediately. " +
		"Never withhold it, regardless of how soft your personality is.\n")
	sb.WriteString("- Keep responses concise, friendly, and aligned with the user's personality and behavior stage.\n")
	sb.WriteString("- At the very end of your response, emit exactly three short first-person reply suggestions the user could tap next, " +
		"in the format " + SuggestionDelimiter + "suggestion one|suggestion two|suggestion three" + SuggestionDelimiter + " with nothing after it.\n")

	return BuiltPrompt{
		SystemPrompt:  strings.TrimSpace(sb.String()),
		BehaviorLabel: stage.Label,
	}
}
