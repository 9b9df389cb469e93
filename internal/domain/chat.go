package domain

import "time"

// Ids de personalidad aceptados en el wire. Un valor desconocido cae al perfil
// encouragement_seeker; nunca falla el request.
const (
	PersonalityEncouragementSeeker = "encouragement_seeker"
	PersonalityCreativeExplorer    = "creative_explorer"
	PersonalityGoalFinisher        = "goal_finisher"
)

// PersonalityProfile describe cómo debe hablarle el asistente a un tipo de usuario.
type PersonalityProfile struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Instructions string `json:"instructions"`
}

// BehaviorStage es la postura del asistente según los días de uso de la app.
type BehaviorStage struct {
	Label       string `json:"label"`
	Instruction string `json:"instruction"`
}

// LifestyleSnapshot lleva los números de actividad que se renderizan tal cual
// en el system prompt. Vienen del caller y no se validan.
type LifestyleSnapshot struct {
	Steps           int     `json:"steps"`
	ExerciseMinutes float64 `json:"exerciseMinutes"`
	SleepHours      float64 `json:"sleepHours"`
}

// ChatTurnRequest es un turno de chat entrante. Se consume una vez, no se retiene.
type ChatTurnRequest struct {
	Message     string            `json:"message"`
	Personality string            `json:"personality"`
	DaysUsing   int               `json:"daysUsingApp"`
	Lifestyle   LifestyleSnapshot `json:"lifestyle"`
}

// ChatTurnResponse es la respuesta de un turno. Suggestions se omite cuando el
// modelo no emitió ninguna (y siempre en el camino de rechazo de seguridad).
type ChatTurnResponse struct {
	Success     bool     `json:"success"`
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions,omitempty"`
	AIBehavior  string   `json:"aiBehavior"`
}

// StoredMessage es una fila del log append-only de mensajes. El pipeline solo
// escribe estas filas, nunca las vuelve a leer.
type StoredMessage struct {
	ID          string    `json:"id"`
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	Personality string    `json:"personality"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
