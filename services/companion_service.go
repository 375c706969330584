package services

import (
	"context"
	"errors"
	"time"

	"MindEaseGo/config"
	"MindEaseGo/models"
)

// CompanionOptions tunes the live call and the mock pacing.
type CompanionOptions struct {
	// Timeout bounds one provider call; expiry counts as a provider failure.
	Timeout time.Duration
	// MockDelay is applied to chat replies when no provider is configured.
	MockDelay time.Duration
}

// CompanionService runs the four AI companion flows. Every flow tries the
// live provider when one is configured and falls back to the mock engine on
// any provider or parse failure.
type CompanionService struct {
	provider  LLMProvider
	mock      *MockEngine
	recorder  *MoodRecorder
	usage     *UsageTracker
	timeout   time.Duration
	mockDelay time.Duration
}

// NewCompanionService builds the service. A nil provider means mock mode.
func NewCompanionService(provider LLMProvider, mock *MockEngine, recorder *MoodRecorder, usage *UsageTracker, opts CompanionOptions) *CompanionService {
	if mock == nil {
		mock = NewMockEngine(nil)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &CompanionService{
		provider:  provider,
		mock:      mock,
		recorder:  recorder,
		usage:     usage,
		timeout:   opts.Timeout,
		mockDelay: opts.MockDelay,
	}
}

// LiveMode reports whether a provider is configured.
func (s *CompanionService) LiveMode() bool {
	return s.provider != nil
}

// Chat answers a free-form message. Live output is returned verbatim.
func (s *CompanionService) Chat(ctx context.Context, userID, message string) string {
	if !s.LiveMode() {
		config.Logger.Debugw("使用模拟回复", "uid", userID, "promptType", CompanionPrompt)
		s.waitMockDelay(ctx)
		s.usage.Track(ctx, userID, CompanionPrompt, ModeMock)
		return s.mock.Reply(message)
	}

	raw, err := s.generate(ctx, Prompt{
		System: systemPrompt(CompanionPrompt),
		Turns:  []models.ChatTurn{{Role: models.RoleUser, Content: message}},
	})
	if err != nil {
		s.logFallback(userID, CompanionPrompt, err)
		s.usage.Track(ctx, userID, CompanionPrompt, ModeMock)
		return s.mock.Reply(message)
	}

	s.usage.Track(ctx, userID, CompanionPrompt, ModeLive)
	return raw
}

// CheckIn replies to a check-in message and records a mood log whenever an
// analysis is available, whichever path produced it.
func (s *CompanionService) CheckIn(ctx context.Context, userID, message string, history []models.ChatTurn) models.CheckInResponse {
	reply, analysis, mode := s.checkInReply(ctx, userID, message, history)
	s.usage.Track(ctx, userID, CheckInPrompt, mode)

	var saved *models.MoodLog
	if s.recorder != nil {
		saved = s.recorder.RecordIfPresent(ctx, userID, analysis)
	}

	return models.CheckInResponse{
		Reply:    reply,
		Analysis: analysis,
		SavedLog: saved,
	}
}

func (s *CompanionService) checkInReply(ctx context.Context, userID, message string, history []models.ChatTurn) (string, *models.AnalysisResult, string) {
	if !s.LiveMode() {
		reply, analysis := s.mock.CheckIn(message)
		return reply, analysis, ModeMock
	}

	turns := make([]models.ChatTurn, 0, len(history)+1)
	for _, turn := range history {
		if turn.Content == "" {
			continue
		}
		turns = append(turns, turn)
	}
	turns = append(turns, models.ChatTurn{Role: models.RoleUser, Content: message})

	raw, err := s.generate(ctx, Prompt{
		System: systemPrompt(CheckInPrompt),
		Turns:  turns,
		JSON:   true,
	})
	if err == nil {
		var reply string
		var analysis *models.AnalysisResult
		reply, analysis, err = ParseCheckIn(raw, message)
		if err == nil {
			return reply, analysis, ModeLive
		}
	}

	s.logFallback(userID, CheckInPrompt, err)
	reply, analysis := s.mock.CheckIn(message)
	return reply, analysis, ModeMock
}

// GenerateHierarchy builds an exposure ladder for fearTheme.
func (s *CompanionService) GenerateHierarchy(ctx context.Context, userID, fearTheme string) []models.ExposureStep {
	if !s.LiveMode() {
		s.usage.Track(ctx, userID, ERPPrompt, ModeMock)
		return s.mock.Hierarchy(fearTheme)
	}

	raw, err := s.generate(ctx, Prompt{
		System: systemPrompt(ERPPrompt),
		Turns:  []models.ChatTurn{{Role: models.RoleUser, Content: erpUserPrompt(fearTheme)}},
		JSON:   true,
	})
	if err == nil {
		var steps []models.ExposureStep
		if steps, err = ParseHierarchy(raw); err == nil {
			s.usage.Track(ctx, userID, ERPPrompt, ModeLive)
			return steps
		}
	}

	s.logFallback(userID, ERPPrompt, err)
	s.usage.Track(ctx, userID, ERPPrompt, ModeMock)
	return s.mock.Hierarchy(fearTheme)
}

// DeconstructThought runs the CBT analysis of an intrusive thought.
func (s *CompanionService) DeconstructThought(ctx context.Context, userID, thought, distortion string) models.ThoughtDeconstruction {
	if !s.LiveMode() {
		s.usage.Track(ctx, userID, CBTPrompt, ModeMock)
		return s.mock.Deconstruction()
	}

	raw, err := s.generate(ctx, Prompt{
		System: systemPrompt(CBTPrompt),
		Turns:  []models.ChatTurn{{Role: models.RoleUser, Content: cbtUserPrompt(thought, distortion)}},
		JSON:   true,
	})
	if err == nil {
		var result models.ThoughtDeconstruction
		if result, err = ParseDeconstruction(raw); err == nil {
			s.usage.Track(ctx, userID, CBTPrompt, ModeLive)
			return result
		}
	}

	s.logFallback(userID, CBTPrompt, err)
	s.usage.Track(ctx, userID, CBTPrompt, ModeMock)
	return s.mock.Deconstruction()
}

// Themes summarises tracking data into themes and drift notes.
func (s *CompanionService) Themes(ctx context.Context, userID, dataSummary string) (map[string]int, []string) {
	if !s.LiveMode() {
		s.usage.Track(ctx, userID, InsightsPrompt, ModeMock)
		return s.mock.Insights()
	}

	raw, err := s.generate(ctx, Prompt{
		System: systemPrompt(InsightsPrompt),
		Turns:  []models.ChatTurn{{Role: models.RoleUser, Content: dataSummary}},
		JSON:   true,
	})
	if err == nil {
		themes, drift, parseErr := ParseInsights(raw)
		if parseErr == nil {
			s.usage.Track(ctx, userID, InsightsPrompt, ModeLive)
			return themes, drift
		}
		err = parseErr
	}

	s.logFallback(userID, InsightsPrompt, err)
	s.usage.Track(ctx, userID, InsightsPrompt, ModeMock)
	return s.mock.Insights()
}

func (s *CompanionService) generate(ctx context.Context, prompt Prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		var providerErr *ProviderError
		if !errors.As(err, &providerErr) {
			err = &ProviderError{Provider: s.provider.Name(), Err: err}
		}
		return "", err
	}
	return raw, nil
}

func (s *CompanionService) logFallback(userID string, promptType PromptType, err error) {
	kind := "provider"
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		kind = "parse"
	}
	config.Logger.Warnw("AI调用失败，使用模拟回复",
		"error", err,
		"kind", kind,
		"uid", userID,
		"promptType", promptType,
	)
}

func (s *CompanionService) waitMockDelay(ctx context.Context) {
	if s.mockDelay <= 0 {
		return
	}
	timer := time.NewTimer(s.mockDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
