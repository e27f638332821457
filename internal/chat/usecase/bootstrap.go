package usecase

import (
	"context"
	"fmt"
	"os"

	"edubot/internal/chat"
	"edubot/internal/intent"
	"edubot/internal/matcher"
	"edubot/internal/model"
	"edubot/pkg/artifact"
	"edubot/pkg/classifier"
	"edubot/pkg/embedding"
	pkgLog "edubot/pkg/log"
	"edubot/pkg/qdrant"
)

// BootstrapConfig is everything needed to build a ready chat UseCase.
type BootstrapConfig struct {
	Strategy     chat.Strategy
	IntentsPath  string
	ModelPath    string
	ArtifactPath string
	Responder    ResponderOptions
	Seed         uint64

	Embedding embedding.Config
	Index     string

	QdrantURL        string
	QdrantAPIKey     string
	QdrantCollection string
}

// Bootstrap loads the intent store and the strategy's model or artifact.
// Every failure is a *model.LoadError.
func Bootstrap(ctx context.Context, l pkgLog.Logger, cfg BootstrapConfig) (chat.UseCase, error) {
	store, err := intent.Load(cfg.IntentsPath)
	if err != nil {
		return nil, err
	}

	var (
		m matcher.Matcher
		r Responder
	)
	switch cfg.Strategy {
	case chat.StrategyClassifier:
		cm, err := loadClassifier(ctx, l, cfg.ModelPath, store)
		if err != nil {
			return nil, err
		}
		m = cm
		r = NewClassifierResponder(l, store, NewPicker(cfg.Seed), cfg.Responder)

	case chat.StrategyEmbedding:
		em, err := loadEmbedding(ctx, l, cfg)
		if err != nil {
			return nil, err
		}
		m = em
		r = NewEmbeddingResponder(l, em, cfg.Responder)

	default:
		return nil, model.NewLoadError(SourceStrategy, fmt.Errorf("unknown strategy %q", cfg.Strategy))
	}

	l.Infof(ctx, "%s: %s strategy ready with %d intents", LogPrefixBootstrap, cfg.Strategy, store.Len())
	return New(l, cfg.Strategy, store, m, r), nil
}

func loadClassifier(ctx context.Context, l pkgLog.Logger, path string, store *intent.Store) (*matcher.ClassifierMatcher, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, model.NewLoadError(path, err)
	}
	defer f.Close()

	cm, err := classifier.Load(f)
	if err != nil {
		return nil, model.NewLoadError(path, err)
	}

	for _, c := range cm.Classes() {
		if _, ok := store.Find(c); !ok {
			l.Warnf(ctx, "%s: model class %q has no intent in the store", LogPrefixBootstrap, c)
		}
	}
	return matcher.NewClassifier(cm, l), nil
}

func loadEmbedding(ctx context.Context, l pkgLog.Logger, cfg BootstrapConfig) (*matcher.EmbeddingMatcher, error) {
	art, err := artifact.LoadFile(cfg.ArtifactPath)
	if err != nil {
		return nil, model.NewLoadError(cfg.ArtifactPath, err)
	}

	emb, err := embedding.New(ctx, cfg.Embedding)
	if err != nil {
		return nil, model.NewLoadError(SourceEmbedder, err)
	}

	var index matcher.PatternIndex
	switch cfg.Index {
	case "", matcher.IndexMemory:
	case matcher.IndexQdrant:
		client := qdrant.NewClient(cfg.QdrantURL).WithAPIKey(cfg.QdrantAPIKey)
		index, err = matcher.NewQdrantIndex(ctx, client, cfg.QdrantCollection, art, l)
		if err != nil {
			return nil, model.NewLoadError(SourceQdrant, err)
		}
	default:
		return nil, model.NewLoadError(SourceIndex, fmt.Errorf("%w: %q", matcher.ErrUnknownIndex, cfg.Index))
	}

	em, err := matcher.NewEmbedding(art, emb, index, l)
	if err != nil {
		return nil, model.NewLoadError(cfg.ArtifactPath, err)
	}
	return em, nil
}
