package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitmate/internal/domain"
	"fitmate/internal/llm"
	"fitmate/internal/repository"
)

// BehaviorSafetyRefusal es la etiqueta devuelta cuando el filtro corta el turno.
const BehaviorSafetyRefusal = "Safety Refusal"

// persistTimeout acota las escrituras fire-and-forget del log de mensajes.
const persistTimeout = 5 * time.Second

// ChatService orquesta un turno de chat: filtro de seguridad, composición del
// prompt, llamada al LLM, extracción de sugerencias y persistencia best-effort.
// Sin estado mutable compartido: cada turno es una cadena secuencial propia.
type ChatService struct {
	llmClient  llm.Client
	messages   repository.MessageRepository
	logger     *zap.Logger
	llmTimeout time.Duration

	safety  SafetyFilter
	prompts PromptBuilder
	parser  SuggestionParser
}

func NewChatService(
	llmClient llm.Client,
	messages repository.MessageRepository,
	logger *zap.Logger,
	llmTimeout time.Duration,
) *ChatService {
	if llmTimeout <= 0 {
		llmTimeout = 30 * time.Second
	}
	return &ChatService{
		llmClient:  llmClient,
		messages:   messages,
		logger:     logger,
		llmTimeout: llmTimeout,
	}
}

// Turn procesa un turno completo. El mensaje ya llega validado como no vacío
// (el handler corta antes con 400). Nunca devuelve error: una falla del gateway
// se degrada a un reply "AI Error: ..." con success true, preservando el
// comportamiento observable del sistema original.
func (s *ChatService) Turn(ctx context.Context, req domain.ChatTurnRequest) domain.ChatTurnResponse {
	s.persistTurn(domain.RoleUser, req.Message, req.Personality)

	if s.safety.IsUnsafe(req.Message) {
		refusal := s.safety.RefusalMessage()
		s.persistTurn(domain.RoleAssistant, refusal, req.Personality)
		return domain.ChatTurnResponse{
			Success:    true,
			Reply:      refusal,
			AIBehavior: BehaviorSafetyRefusal,
		}
	}

	built := s.prompts.Build(req.Personality, req.DaysUsing, req.Lifestyle)

	// Único punto de suspensión del turno. Sin retries: un timeout o error del
	// proveedor degrada el reply, no reintenta.
	llmCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	var (
		reply       string
		suggestions []string
	)
	raw, err := s.llmClient.Complete(llmCtx, built.SystemPrompt, req.Message)
	if err != nil {
		s.logger.Warn("llm complete failed", zap.Error(err))
		reply = fmt.Sprintf("AI Error: %v. Check backend logs for details.", err)
	} else {
		reply, suggestions = s.parser.Extract(raw)
	}

	s.persistTurn(domain.RoleAssistant, reply, req.Personality)

	return domain.ChatTurnResponse{
		Success:     true,
		Reply:       reply,
		Suggestions: suggestions,
		AIBehavior:  built.BehaviorLabel,
	}
}

// persistTurn escribe una fila del log de manera asíncrona. Una falla se loguea
// y se traga: la persistencia nunca bloquea ni altera la respuesta HTTP.
func (s *ChatService) persistTurn(role, content, personality string) {
	if s.messages == nil {
		return
	}

	msg := domain.StoredMessage{
		ID:          uuid.NewString(),
		Role:        role,
		Content:     content,
		Personality: personality,
		CreatedAt:   time.Now().UTC(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.messages.Append(ctx, msg); err != nil {
			s.logger.Warn("persist message failed",
				zap.Error(err),
				zap.String("role", role),
			)
		}
	}()
}
