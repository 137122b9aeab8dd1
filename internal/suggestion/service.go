package suggestion

import (
	"context"
	"log"

	"github.com/meteomotto/go-weather-backend/internal/weather/domain"
)

// Generator produces a suggestion text for a conditions snapshot.
type Generator interface {
	Generate(ctx context.Context, snapshot domain.ConditionsSnapshot, city, lang string) (string, error)
}

// Service wraps a Generator with best-effort semantics: any failure is
// logged and degraded to an empty suggestion, never a user-visible
// error. A nil generator (no API key configured) behaves the same way.
type Service struct {
	generator Generator
}

func NewService(generator Generator) *Service {
	return &Service{generator: generator}
}

// Suggest returns the generated suggestion, or "" when generation is
// unavailable or fails.
func (s *Service) Suggest(ctx context.Context, snapshot domain.ConditionsSnapshot, city, lang string) string {
	if s == nil || s.generator == nil {
		return ""
	}

	text, err := s.generator.Generate(ctx, snapshot, city, lang)
	if err != nil {
		log.Printf("[suggestion] generate for %s: %v", city, err)
		return ""
	}
	return text
}
