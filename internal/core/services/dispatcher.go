package services

import (
	"context"
	"fmt"
	"net/url"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/prime-labs/prime-cli/internal/core/domain"
	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
	"github.com/prime-labs/prime-cli/internal/core/ports/driving"
	"github.com/prime-labs/prime-cli/internal/logger"
)

// Ensure Dispatcher implements the interface.
var _ driving.AssistantService = (*Dispatcher)(nil)

// lowConfidenceThreshold gates dispatch: results below it get a
// clarification reply instead of a handler.
const lowConfidenceThreshold = 0.5

// Dispatcher maps query results to actions on the outside world. All
// collaborators except the processor are optional; missing ones degrade
// to capability messages rather than failures.
type Dispatcher struct {
	processor     driving.QueryProcessor
	annotator     driven.Annotator
	catalog       *Catalog
	synthesizer   driven.Synthesizer
	launcher      driven.Launcher
	weather       driven.WeatherProvider
	news          driven.NewsProvider
	reminders     driven.ReminderStore
	conversations driven.ConversationStore
	authenticator driven.FaceAuthenticator
	settings      domain.Settings
	version       string
}

// DispatcherConfig wires a Dispatcher's collaborators.
type DispatcherConfig struct {
	Processor     driving.QueryProcessor
	Annotator     driven.Annotator
	Catalog       *Catalog
	Synthesizer   driven.Synthesizer
	Launcher      driven.Launcher
	Weather       driven.WeatherProvider
	News          driven.NewsProvider
	Reminders     driven.ReminderStore
	Conversations driven.ConversationStore
	Authenticator driven.FaceAuthenticator
	Settings      domain.Settings
	Version       string
}

// NewDispatcher creates a dispatcher. The processor is required;
// everything else may be nil.
func NewDispatcher(cfg DispatcherConfig) (*Dispatcher, error) {
	if cfg.Processor == nil {
		return nil, fmt.Errorf("%w: dispatcher requires a query processor", domain.ErrInvalidInput)
	}
	return &Dispatcher{
		processor:     cfg.Processor,
		annotator:     cfg.Annotator,
		catalog:       cfg.Catalog,
		synthesizer:   cfg.Synthesizer,
		launcher:      cfg.Launcher,
		weather:       cfg.Weather,
		news:          cfg.News,
		reminders:     cfg.Reminders,
		conversations: cfg.Conversations,
		authenticator: cfg.Authenticator,
		settings:      cfg.Settings,
		version:       cfg.Version,
	}, nil
}

// ProcessCommand runs the NLP pipeline over the query and executes the
// handler for the selected intent. The returned ActionResult always has
// a user-facing message; failure is expressed there, not as an error.
func (d *Dispatcher) ProcessCommand(ctx context.Context, query string) (*domain.ActionResult, *domain.QueryResult, error) {
	result, err := d.processor.Process(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("process command: %w", err)
	}

	action := d.execute(ctx, result)
	action.OperationID = uuid.NewString()

	d.record(ctx, result, action)
	d.speakReply(ctx, action.Message)

	return action, result, nil
}

// execute picks and runs the handler for the result's intent.
func (d *Dispatcher) execute(ctx context.Context, result *domain.QueryResult) *domain.ActionResult {
	logger.Section("Dispatch")
	logger.Debug("Intent: %s, Confidence: %.2f", result.Intent, result.Confidence)

	if result.Intent != domain.IntentUnknown && result.Confidence < lowConfidenceThreshold {
		return failure("I didn't understand that clearly. Could you please repeat?")
	}

	switch result.Intent {
	case domain.IntentOpenApp:
		return d.handleOpenApp(ctx, result.Entities["app_name"])
	case domain.IntentPlayYouTube:
		return d.handlePlayYouTube(ctx, result.Entities["search_term"])
	case domain.IntentSendMessage:
		return d.handleSendMessage(result.Entities["contact_name"])
	case domain.IntentMakeCall:
		return d.handleMakeCall(result.Entities["contact_name"])
	case domain.IntentGetWeather:
		return d.handleGetWeather(ctx, result.Entities["location"])
	case domain.IntentGetNews:
		return d.handleGetNews(ctx, result.Entities["topic"])
	case domain.IntentSetReminder:
		return d.handleSetReminder(ctx, result.Entities["task"], result.Entities["time"])
	case domain.IntentGeneralChat:
		return d.handleGeneralChat(result.OriginalQuery)
	default:
		return failure("I'm not sure how to help with that. Could you try rephrasing?")
	}
}

func (d *Dispatcher) handleOpenApp(ctx context.Context, appName string) *domain.ActionResult {
	if appName == "" {
		return failure("No application name specified")
	}
	if d.launcher == nil {
		return failure("Application launching is not available")
	}
	if err := d.launcher.OpenApp(ctx, appName); err != nil {
		logger.Warn("Open app %q failed: %v", appName, err)
		return failure(fmt.Sprintf("Could not open %s", appName))
	}
	return success(fmt.Sprintf("Opening %s", appName))
}

func (d *Dispatcher) handlePlayYouTube(ctx context.Context, searchTerm string) *domain.ActionResult {
	if searchTerm == "" {
		return failure("No search term specified")
	}
	if d.launcher == nil {
		return failure("Media playback is not available")
	}
	target := "https://www.youtube.com/results?search_query=" + url.QueryEscape(searchTerm)
	if err := d.launcher.OpenURL(ctx, target); err != nil {
		logger.Warn("Open YouTube for %q failed: %v", searchTerm, err)
		return failure(fmt.Sprintf("Could not play %s", searchTerm))
	}
	return success(fmt.Sprintf("Playing %s on YouTube", searchTerm))
}

func (d *Dispatcher) handleSendMessage(contactName string) *domain.ActionResult {
	if contactName == "" {
		return failure("No contact name specified")
	}
	// Messaging backends are not integrated; acknowledge the request.
	return success(fmt.Sprintf("Message sent to %s", contactName))
}

func (d *Dispatcher) handleMakeCall(contactName string) *domain.ActionResult {
	if contactName == "" {
		return failure("No contact name specified")
	}
	// Telephony backends are not integrated; acknowledge the request.
	return success(fmt.Sprintf("Calling %s", contactName))
}

func (d *Dispatcher) handleGetWeather(ctx context.Context, location string) *domain.ActionResult {
	if !d.settings.Features.Weather || d.weather == nil {
		logger.Debug("Weather request rejected: %v", domain.ErrFeatureDisabled)
		return failure("Weather feature not available")
	}
	if location == "" {
		location = "your location"
	}
	report, err := d.weather.Current(ctx, location)
	if err != nil {
		logger.Warn("Weather lookup for %q failed: %v", location, err)
		return failure(fmt.Sprintf("Could not get the weather for %s", location))
	}
	return success(report)
}

func (d *Dispatcher) handleGetNews(ctx context.Context, topic string) *domain.ActionResult {
	if !d.settings.Features.News || d.news == nil {
		logger.Debug("News request rejected: %v", domain.ErrFeatureDisabled)
		return failure("News feature not available")
	}
	headlines, err := d.news.Headlines(ctx, topic)
	if err != nil {
		logger.Warn("News lookup for %q failed: %v", topic, err)
		return failure("Could not get the news right now")
	}
	return success(headlines)
}

func (d *Dispatcher) handleSetReminder(ctx context.Context, task, at string) *domain.ActionResult {
	if task == "" || at == "" {
		return failure("Task and time required for reminder")
	}
	if d.reminders == nil {
		return failure("Reminders are not available")
	}
	reminder := &domain.Reminder{
		ID:        uuid.NewString(),
		Task:      task,
		Time:      at,
		CreatedAt: time.Now().UTC(),
	}
	if err := d.reminders.Save(ctx, reminder); err != nil {
		logger.Warn("Saving reminder failed: %v", err)
		return failure("Could not save the reminder")
	}
	action := success(fmt.Sprintf("Reminder set for %s at %s", task, at))
	action.Data = map[string]any{"reminder_id": reminder.ID}
	return action
}

func (d *Dispatcher) handleGeneralChat(query string) *domain.ActionResult {
	return success(fmt.Sprintf("I heard you say: %s. I'm %s, ask me to open apps, play videos, or set reminders.",
		query, d.settings.AssistantName))
}

// Speak sends text to the speech synthesizer.
func (d *Dispatcher) Speak(ctx context.Context, text string) error {
	if d.synthesizer == nil {
		return domain.ErrSynthesizerUnavailable
	}
	return d.synthesizer.Speak(ctx, text)
}

// Authenticate runs face authentication through the configured
// authenticator.
func (d *Dispatcher) Authenticate(ctx context.Context) (domain.AuthResult, error) {
	if d.authenticator == nil {
		return domain.AuthResult{}, domain.ErrAuthFailed
	}
	return d.authenticator.Authenticate(ctx)
}

// Status reports system status and capabilities.
func (d *Dispatcher) Status(_ context.Context) domain.Status {
	status := domain.Status{
		AssistantName: d.settings.AssistantName,
		Version:       d.version,
		Platform:      runtime.GOOS,
		Features: map[string]bool{
			"weather": d.settings.Features.Weather && d.weather != nil,
			"news":    d.settings.Features.News && d.news != nil,
			"tts":     d.settings.TTS.Enabled && d.synthesizer != nil,
		},
	}
	if d.annotator != nil {
		status.Annotator = d.annotator.Name()
	}
	if d.synthesizer != nil {
		status.TTSEngine = d.synthesizer.Name()
		status.Voices = d.synthesizer.Voices()
	}
	if d.catalog != nil {
		status.Intents = d.catalog.Names()
	}
	return status
}

// record appends the turn to conversation history. Best-effort: store
// failures are logged, never surfaced.
func (d *Dispatcher) record(ctx context.Context, result *domain.QueryResult, action *domain.ActionResult) {
	if d.conversations == nil {
		return
	}
	turn := &domain.Turn{
		ID:         uuid.NewString(),
		Query:      result.OriginalQuery,
		Intent:     result.Intent,
		Confidence: result.Confidence,
		Entities:   result.Entities,
		Reply:      action.Message,
		CreatedAt:  time.Now().UTC(),
	}
	if err := d.conversations.Record(ctx, turn); err != nil {
		logger.Warn("Recording turn failed: %v", err)
	}
}

// speakReply speaks the reply when TTS is enabled. Best-effort.
func (d *Dispatcher) speakReply(ctx context.Context, message string) {
	if !d.settings.TTS.Enabled || d.synthesizer == nil || message == "" {
		return
	}
	if err := d.synthesizer.Speak(ctx, message); err != nil {
		logger.Warn("Speech synthesis failed: %v", err)
	}
}

func success(message string) *domain.ActionResult {
	return &domain.ActionResult{Success: true, Message: message}
}

func failure(message string) *domain.ActionResult {
	return &domain.ActionResult{Success: false, Message: message}
}
