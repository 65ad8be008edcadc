package service

import (
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	strength *StrengthService
}

// NewGeneratorService creates a new GeneratorService that rates its output with strength.
func NewGeneratorService(strength *StrengthService) *GeneratorService {
	return &GeneratorService{strength: strength}
}

// Generate produces a random password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	defaults := crypto.DefaultOptions()
	opts := crypto.GeneratorOptions{
		Length:           intOrDefault(req.Length, defaults.Length),
		Uppercase:        boolOrDefault(req.Uppercase, defaults.Uppercase),
		Lowercase:        boolOrDefault(req.Lowercase, defaults.Lowercase),
		Digits:           boolOrDefault(req.Digits, defaults.Digits),
		Symbols:          boolOrDefault(req.Symbols, defaults.Symbols),
		ExcludeAmbiguous: boolOrDefault(req.ExcludeAmbiguous, defaults.ExcludeAmbiguous),
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return s.respond(password), nil
}

// GeneratePronounceable produces a syllable-based password based on the given request.
func (s *GeneratorService) GeneratePronounceable(req model.PronounceableRequest) (model.GenerateResponse, error) {
	defaults := crypto.DefaultPronounceableOptions()
	opts := crypto.PronounceableOptions{
		Length:     intOrDefault(req.Length, defaults.Length),
		Digits:     boolOrDefault(req.Digits, defaults.Digits),
		Symbols:    boolOrDefault(req.Symbols, defaults.Symbols),
		Capitalize: boolOrDefault(req.Capitalize, defaults.Capitalize),
	}

	password, err := crypto.GeneratePronounceable(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return s.respond(password), nil
}

func (s *GeneratorService) respond(password string) model.GenerateResponse {
	report := s.strength.Analyze(password)
	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Entropy:  report.Entropy,
		Strength: report.Level,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// intOrDefault treats zero as "not provided".
func intOrDefault(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
