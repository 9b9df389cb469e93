package service

import "strings"

// Lista fija de términos médicos que disparan el rechazo. Cualquier hit marca
// el mensaje completo como inseguro: sin scoring, sin negaciones, sin contexto.
// Los falsos positivos se aceptan a propósito (seguridad antes que utilidad).
var medicalKeywords = []string{
	"diabetes",
	"heart disease",
	"hypertension",
	"asthma",
	"thyroid",
	"pcos",
	"arthritis",

	"injury",
	"fracture",
	"tear",
	"ligament",
	"acl",
	"meniscus",
	"sprain",
	"pain",

	"medicine",
	"medication",
	"tablet",
	"pill",
	"supplement",
	"protein powder",
	"creatine",
	"steroids",
}

// SafetyFilter intercepta consultas médicas antes de llegar al LLM.
type SafetyFilter struct{}

// DefaultSafetyFilter permite uso directo sin instanciar.
var DefaultSafetyFilter = SafetyFilter{}

// IsUnsafe hace substring match case-insensitive contra la lista de términos.
func (SafetyFilter) IsUnsafe(message string) bool {
	lowered := strings.ToLower(message)
	for _, keyword := range medicalKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// RefusalMessage devuelve la respuesta fija para consultas médicas.
func (SafetyFilter) RefusalMessage() string {
	return "I’m not able to provide medical advice or guidance related to injuries, diseases, or medications. " +
		"It would be best to consult a certified doctor or healthcare professional for accurate advice."
}
