package loader

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/folio/internal/content"
)

// DefaultTimeout bounds a whole load when the caller does not configure one.
const DefaultTimeout = 10 * time.Second

// LoadFailure is the single error kind produced by Load. Network errors,
// non-success statuses, malformed JSON and invalid content all collapse to
// it because recovery is identical.
type LoadFailure struct {
	Source string
	Cause  error
}

func (e *LoadFailure) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("could not load portfolio data: %v", e.Cause)
	}
	return fmt.Sprintf("could not load portfolio data from %s: %v", e.Source, e.Cause)
}

func (e *LoadFailure) Unwrap() error { return e.Cause }

// Loader fetches the content source and the optional skills source
// concurrently and merges them into one Model.
type Loader struct {
	Content Source
	Skills  Source // optional
	Timeout time.Duration
}

// New creates a Loader. skills may be nil.
func New(contentSrc, skills Source, timeout time.Duration) *Loader {
	return &Loader{Content: contentSrc, Skills: skills, Timeout: timeout}
}

// Load fetches both sources, waits for both, and returns a Model only if
// every step succeeded. No partial model is ever returned.
func (l *Loader) Load(ctx context.Context) (*content.Model, error) {
	if l.Content == nil {
		return nil, &LoadFailure{Cause: fmt.Errorf("no content source configured")}
	}

	timeout := l.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var contentData, skillsData []byte
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := l.Content.Fetch(gctx)
		if err != nil {
			return &LoadFailure{Source: l.Content.Name(), Cause: err}
		}
		contentData = data
		return nil
	})
	if l.Skills != nil {
		g.Go(func() error {
			data, err := l.Skills.Fetch(gctx)
			if err != nil {
				return &LoadFailure{Source: l.Skills.Name(), Cause: err}
			}
			skillsData = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc, err := content.ParseContent(contentData)
	if err != nil {
		return nil, &LoadFailure{Source: l.Content.Name(), Cause: err}
	}

	var skills *content.SkillsDocument
	if l.Skills != nil {
		sd, err := content.ParseSkills(skillsData)
		if err != nil {
			return nil, &LoadFailure{Source: l.Skills.Name(), Cause: err}
		}
		skills = &sd
	}

	model := content.Merge(doc, skills)
	if err := model.Validate(); err != nil {
		return nil, &LoadFailure{Source: l.Content.Name(), Cause: err}
	}
	return model, nil
}
