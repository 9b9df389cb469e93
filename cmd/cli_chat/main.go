package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fitmate/internal/config"
	"fitmate/internal/domain"
	"fitmate/internal/llm"
	"fitmate/internal/repository"
	"fitmate/internal/service"
)

// Cliente de terminal para probar el pipeline completo sin levantar el HTTP.
// Útil para inspeccionar prompts (zap en modo example loguea el Debug del cliente).
func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	chatSvc := service.NewChatService(
		llmClient,
		repository.NewDisabledMessageRepository(),
		logger,
		time.Duration(cfg.LLMTimeoutSeconds)*time.Second,
	)

	personality := askString(reader, "personality [encouragement_seeker/creative_explorer/goal_finisher]: ", domain.PersonalityEncouragementSeeker)
	days := askInt(reader, "days using app: ", 1)

	lifestyle := domain.LifestyleSnapshot{Steps: 4500, ExerciseMinutes: 20, SleepHours: 7}

	fmt.Println("type a message, or /quit to exit")
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "/quit" {
			return
		}

		resp := chatSvc.Turn(ctx, domain.ChatTurnRequest{
			Message:     line,
			Personality: personality,
			DaysUsing:   days,
			Lifestyle:   lifestyle,
		})

		fmt.Printf("[%s] %s\n", resp.AIBehavior, resp.Reply)
		for i, s := range resp.Suggestions {
			fmt.Printf("  %d) %s\n", i+1, s)
		}
	}
}

func askString(reader *bufio.Reader, prompt, fallback string) string {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fallback
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}

func askInt(reader *bufio.Reader, prompt string, fallback int) int {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return fallback
	}
	return n
}
