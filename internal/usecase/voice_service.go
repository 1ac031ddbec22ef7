package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/pantrylist/backend/internal/domain"
	"golang.org/x/text/language"
)

// Voice feedback messages
const (
	msgNothingHeard = "No product was heard. Try again."
	msgNotFound     = "No product was found for %q."
	msgAdded        = "%q was added to the list."
	msgAddFailed    = "Failed to add product. Try again."
)

// VoiceServiceConfig holds configuration for the voice service
type VoiceServiceConfig struct {
	DefaultLocale      string
	SupportedLocales   []string
	SuggestionLimit    int
	EnableDebugLogging bool
}

// VoiceService turns finalized speech transcripts into shopping list additions
type VoiceService struct {
	catalog            *CatalogService
	defaultLocale      language.Tag
	supportedLocales   []language.Tag
	suggestionLimit    int
	enableDebugLogging bool
}

// NewVoiceService creates a new voice service. Locales that do not parse are
// skipped; with none left the service supports el-GR and en-US.
func NewVoiceService(catalog *CatalogService, config VoiceServiceConfig) *VoiceService {
	var supported []language.Tag
	for _, l := range config.SupportedLocales {
		tag, err := language.Parse(l)
		if err != nil {
			log.Printf("[VOICE] Ignoring invalid locale %q: %v", l, err)
			continue
		}
		supported = append(supported, tag)
	}
	if len(supported) == 0 {
		supported = []language.Tag{language.MustParse("el-GR"), language.MustParse("en-US")}
	}

	defaultLocale := supported[0]
	if config.DefaultLocale != "" {
		if tag, err := language.Parse(config.DefaultLocale); err == nil {
			defaultLocale = tag
		}
	}

	limit := config.SuggestionLimit
	if limit < 0 {
		limit = 0
	}

	return &VoiceService{
		catalog:            catalog,
		defaultLocale:      defaultLocale,
		supportedLocales:   supported,
		suggestionLimit:    limit,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ResolveLocale maps a requested locale onto a supported one.
// An empty locale selects the default.
func (s *VoiceService) ResolveLocale(locale string) (language.Tag, error) {
	if strings.TrimSpace(locale) == "" {
		return s.defaultLocale, nil
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, locale)
	}

	for _, supported := range s.supportedLocales {
		if supported.String() == tag.String() {
			return supported, nil
		}
	}
	return language.Und, fmt.Errorf("%w: %s", domain.ErrUnsupportedLocale, tag)
}

// ProcessTranscript resolves a transcript against the current catalog and
// adds the matched product to the shopping list with quantity one.
//
// An empty transcript or an unmatched phrase is not an error: the outcome
// carries a user-facing message instead. When adding fails the outcome is
// returned together with the error.
func (s *VoiceService) ProcessTranscript(ctx context.Context, request *domain.VoiceRequest) (*domain.VoiceOutcome, error) {
	if request == nil {
		return nil, domain.ErrInvalidRequest
	}

	locale, err := s.ResolveLocale(request.Locale)
	if err != nil {
		return nil, err
	}

	transcript := strings.TrimSpace(request.Transcript)
	outcome := &domain.VoiceOutcome{
		Transcript: transcript,
		Locale:     locale.String(),
	}

	if transcript == "" {
		outcome.Message = msgNothingHeard
		return outcome, nil
	}
	outcome.Heard = true

	// Fresh snapshot per transcript
	snapshot, err := s.catalog.VoiceSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	candidates := CatalogEntries(snapshot)

	result := ResolveVoiceCommand(transcript, candidates)

	if s.enableDebugLogging {
		log.Printf("[VOICE] %s transcript %q against %d candidates: matched=%v entry=%q score=%.2f",
			outcome.Locale, transcript, len(candidates), result.Matched, result.Entry.DisplayName, result.Score)
	}

	if !result.Matched {
		outcome.Message = fmt.Sprintf(msgNotFound, transcript)
		outcome.Suggestions = Suggest(transcript, candidates, s.suggestionLimit)
		return outcome, nil
	}

	product, ok := findProduct(snapshot, result.Entry.ID)
	if !ok {
		// Snapshot and candidates are built from the same slice
		return nil, fmt.Errorf("%w: matched id %s", domain.ErrProductNotFound, result.Entry.ID)
	}

	added, err := s.catalog.AddToList(ctx, product, domain.ListShopping, 1)
	if err != nil {
		log.Printf("[VOICE] Voice add error for %q: %v", product.Name, err)
		outcome.Message = msgAddFailed
		return outcome, err
	}

	outcome.Added = added
	outcome.Message = fmt.Sprintf(msgAdded, product.Name)
	return outcome, nil
}

func findProduct(products []domain.Product, id string) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
