package driven

import "context"

// WeatherProvider fetches current conditions for a location.
type WeatherProvider interface {
	// Current returns a spoken-form summary of the current weather.
	// An empty location asks for the provider's default location.
	Current(ctx context.Context, location string) (string, error)
}

// NewsProvider fetches news headlines for a topic.
type NewsProvider interface {
	// Headlines returns a spoken-form summary of the top headlines.
	// An empty topic asks for general headlines.
	Headlines(ctx context.Context, topic string) (string, error)
}
