package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prime-labs/prime-cli/internal/adapters/driven/annotate"
	nullauth "github.com/prime-labs/prime-cli/internal/adapters/driven/auth/null"
	"github.com/prime-labs/prime-cli/internal/adapters/driven/config/file"
	"github.com/prime-labs/prime-cli/internal/adapters/driven/news/newsapi"
	"github.com/prime-labs/prime-cli/internal/adapters/driven/platform"
	"github.com/prime-labs/prime-cli/internal/adapters/driven/storage/memory"
	"github.com/prime-labs/prime-cli/internal/adapters/driven/storage/sqlite"
	ttscommand "github.com/prime-labs/prime-cli/internal/adapters/driven/tts/command"
	ttsnull "github.com/prime-labs/prime-cli/internal/adapters/driven/tts/null"
	"github.com/prime-labs/prime-cli/internal/adapters/driven/weather/openweather"
	"github.com/prime-labs/prime-cli/internal/adapters/driving/cli"
	"github.com/prime-labs/prime-cli/internal/adapters/driving/web"
	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
	"github.com/prime-labs/prime-cli/internal/core/services"
	"github.com/prime-labs/prime-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings := settingsService.Get()

	// Pick up config edits while long-running commands are up.
	watchCtx, cancelWatch := context.WithCancel(context.Background())
	defer cancelWatch()
	go func() {
		if err := configStore.Watch(watchCtx); err != nil {
			logger.Debug("Config watch stopped: %v", err)
		}
	}()

	annotator := annotate.Select(settings.AnnotatorMode)
	catalog := services.DefaultCatalog()
	processor := services.NewProcessor(annotator, catalog,
		services.WithContextWindow(settings.ContextWindow))

	// Storage degrades to in-memory when the database cannot be opened;
	// the assistant still works, reminders just don't survive restarts.
	var (
		reminders     driven.ReminderStore
		conversations driven.ConversationStore
	)
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("Database unavailable, using in-memory storage: %v", err)
		reminders = memory.NewReminderStore()
		conversations = memory.NewConversationStore()
	} else {
		defer store.Close()
		reminders = store.ReminderStore()
		conversations = store.ConversationStore()
	}

	var synthesizer driven.Synthesizer = ttsnull.New()
	if settings.TTS.Enabled {
		if s, err := ttscommand.New(settings.TTS); err != nil {
			logger.Warn("Speech synthesis unavailable: %v", err)
		} else {
			synthesizer = s
		}
	}

	var weather driven.WeatherProvider
	if settings.Keys.OpenWeatherMap != "" {
		if w, err := openweather.New(settings.Keys.OpenWeatherMap); err != nil {
			logger.Warn("Weather provider unavailable: %v", err)
		} else {
			weather = w
		}
	}

	var news driven.NewsProvider
	if settings.Keys.NewsAPI != "" {
		if n, err := newsapi.New(settings.Keys.NewsAPI); err != nil {
			logger.Warn("News provider unavailable: %v", err)
		} else {
			news = n
		}
	}

	assistant, err := services.NewDispatcher(services.DispatcherConfig{
		Processor:     processor,
		Annotator:     annotator,
		Catalog:       catalog,
		Synthesizer:   synthesizer,
		Launcher:      platform.New(),
		Weather:       weather,
		News:          news,
		Reminders:     reminders,
		Conversations: conversations,
		Authenticator: nullauth.New("User"),
		Settings:      settings,
		Version:       version,
	})
	if err != nil {
		return fmt.Errorf("initialising assistant: %w", err)
	}

	webServer := web.NewServer(assistant)

	cli.SetServices(cli.Services{
		Assistant: assistant,
		Reminders: reminders,
		History:   conversations,
		Serve: func(ctx context.Context, port int) error {
			if port <= 0 {
				port = settings.Server.Port
			}
			return webServer.Run(ctx, port)
		},
		Version: version,
	})

	return cli.Execute()
}
