package service

import "fitmate/internal/domain"

// Etiquetas de comportamiento según antigüedad de uso.
const (
	BehaviorGroundedEmpathetic = "Grounded & Empathetic"
	BehaviorFriendlyListener   = "Friendly Listener"
	BehaviorCoachLike          = "Coach-like"
)

// BehaviorSelector elige la etapa de comportamiento del asistente a partir de
// los días que el usuario lleva usando la app.
type BehaviorSelector struct{}

// DefaultBehaviorSelector permite uso directo sin instanciar.
var DefaultBehaviorSelector = BehaviorSelector{}

// SelectStage es total sobre todos los enteros: los cortes son días <= 3,
// 4..8 y >= 9. Un valor negativo cae en la primera rama (comportamiento
// observado del sistema original, no se rechaza).
func (BehaviorSelector) SelectStage(daysUsingApp int) domain.BehaviorStage {
	if daysUsingApp <= 3 {
		return domain.BehaviorStage{
			Label: BehaviorGroundedEmpathetic,
			Instruction: "You are grounded, empathetic, and patient. Allow the user to vent. " +
				"Do not give instant remedies unless explicitly asked.",
		}
	}

	if daysUsingApp <= 8 {
		return domain.BehaviorStage{
			Label: BehaviorFriendlyListener,
			Instruction: "You are a friendly listener. Provide short remedies only after at least two user messages, " +
				"UNLESS the user explicitly asks for a plan or advice (in which case, provide it immediately).",
		}
	}

	return domain.BehaviorStage{
		Label:       BehaviorCoachLike,
		Instruction: "You are coach-like and action-oriented. Provide actionable guidance after the first user message.",
	}
}
