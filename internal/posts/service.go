package posts

import (
	"context"
	"fmt"
	"log/slog"

	"api-consumer/internal/apiclient"
	"api-consumer/internal/config"
	"api-consumer/internal/pipeline"
	"api-consumer/internal/providers/jsonplaceholder"
)

// PostsProvider fetches the raw post listing.
type PostsProvider interface {
	Posts(ctx context.Context) (*apiclient.RawResponse, error)
}

// Service provides post records.
type Service interface {
	// GetPosts runs the post pipeline. An unusable upstream response yields an
	// empty slice and no error; transport and mapping failures are returned.
	GetPosts(ctx context.Context) ([]Post, error)
}

type postService struct {
	provider PostsProvider
	logger   *slog.Logger
}

// NewPostService creates a post service backed by the configured JSONPlaceholder endpoint.
func NewPostService(cfg *config.Config, logger *slog.Logger) Service {
	client := jsonplaceholder.NewClient(apiclient.NewClient(), cfg.Posts.Endpoint)
	return NewPostServiceWithProvider(client, logger)
}

// NewPostServiceWithProvider creates a post service with a custom provider.
// This is useful for testing with mock providers.
func NewPostServiceWithProvider(provider PostsProvider, logger *slog.Logger) Service {
	return &postService{
		provider: provider,
		logger:   logger.With("component", "post-service"),
	}
}

func (s *postService) GetPosts(ctx context.Context) ([]Post, error) {
	s.logger.Debug("fetching posts")

	res, err := pipeline.Run(ctx, s.provider.Posts, MapPosts)
	if err != nil {
		if pipeline.IsUpstreamFailure(err) {
			s.logger.Warn("posts provider returned unusable response, returning empty list",
				"status_code", res.StatusCode,
			)
			return []Post{}, nil
		}

		s.logger.Error("failed to get posts",
			"status_code", res.StatusCode,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	s.logger.Debug("successfully mapped posts", "count", len(res.Value))

	return res.Value, nil
}
