package news

import (
	"context"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
)

// Item is one formatted news entry.
type Item struct {
	Title       string `json:"title"`
	Published   string `json:"published"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// Aggregator fetches and merges RSS feeds from a fixed set of sources.
type Aggregator struct {
	parser *gofeed.Parser
	feeds  []string
	logger *zap.Logger
}

// NewAggregator creates an aggregator over the given feed URLs.
func NewAggregator(feeds []string, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		parser: gofeed.NewParser(),
		feeds:  feeds,
		logger: logger,
	}
}

// Fetch retrieves all configured feeds and returns their entries in feed
// order. A feed that fails to parse is logged and skipped so one broken
// source does not empty the whole response.
func (a *Aggregator) Fetch(ctx context.Context) []Item {
	var items []Item

	for _, url := range a.feeds {
		feed, err := a.parser.ParseURLWithContext(url, ctx)
		if err != nil {
			a.logger.Warn("news feed fetch failed",
				zap.String("url", url),
				zap.Error(err),
			)
			continue
		}

		for _, entry := range feed.Items {
			items = append(items, Item{
				Title:       entry.Title,
				Published:   entry.Published,
				Link:        entry.Link,
				Description: entry.Description,
			})
		}
	}

	return items
}
