package service

import "fitmate/internal/domain"

// PersonalityCatalog resuelve un id de personalidad del wire a su perfil.
// Lookup es total: un id desconocido mapea al perfil por defecto.
type PersonalityCatalog struct{}

// DefaultPersonalityCatalog permite uso directo sin instanciar.
var DefaultPersonalityCatalog = PersonalityCatalog{}

// Lookup devuelve el perfil para un id de personalidad. Nunca falla.
func (PersonalityCatalog) Lookup(id string) domain.PersonalityProfile {
	switch id {
	case domain.PersonalityEncouragementSeeker:
		return domain.PersonalityProfile{
			ID:    domain.PersonalityEncouragementSeeker,
			Label: "Encouragement Seeker",
			Instructions: "The user is easily demotivated and needs reassurance, empathy, and frequent positive nudges. " +
				"Keep the tone supportive and non-judgmental. If the user asks for a plan or routine, provide a simple, easy-to-follow one.",
		}
	case domain.PersonalityCreativeExplorer:
		return domain.PersonalityProfile{
			ID:    domain.PersonalityCreativeExplorer,
			Label: "Creative Explorer",
			Instructions: "The user prefers creativity and flexibility. Use engaging ideas, metaphors, and variety. " +
				"Keep responses interesting and exploratory. If the user asks for a plan, provide a flexible and fun routine.",
		}
	case domain.PersonalityGoalFinisher:
		return domain.PersonalityProfile{
			ID:    domain.PersonalityGoalFinisher,
			Label: "Goal Finisher",
			Instructions: "The user is highly motivated and prefers structure. Provide clear plans, checklists, and actionable steps. " +
				"Be concise and outcome-focused.",
		}
	default:
		return domain.PersonalityProfile{
			ID:           domain.PersonalityEncouragementSeeker,
			Label:        "Encouragement Seeker",
			Instructions: "Be supportive, empathetic, and motivating by default.",
		}
	}
}
