package specdoc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	specerrors "github.com/vocabgen/specdoc/errors"
	"github.com/vocabgen/specdoc/render"
	"github.com/vocabgen/specdoc/vocab"
)

// Generator renders one documentation page per vocabulary class plus an
// index, reproducing the legacy generator's output byte for byte. Each of
// a class's four relationship lists is ordered by the overrides table when
// an entry exists and by the hash-order emulator otherwise.
//
// A Generator is safe for a single Generate call at a time; concurrent
// Generate calls on the same instance are not supported. Internally,
// classes render in parallel (each reorder owns its table exclusively, so
// no coordination beyond the memo cache is needed).
type Generator struct {
	ctx     context.Context
	cfg     *genConfig
	voc     *vocab.Vocabulary
	linkify *render.Linkifier
	memo    orderMemo
	closed  bool
}

// NewGenerator validates the configuration and prepares a generator for
// the vocabulary. The width is checked here so a misconfigured run fails
// before any output is written.
func NewGenerator(ctx context.Context, voc *vocab.Vocabulary, opts ...Option) (*Generator, error) {
	cfg := defaultGenConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if _, err := cfg.width.hashFunc(); err != nil {
		return nil, err
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	if voc == nil || (len(voc.Classes) == 0 && len(voc.Properties) == 0) {
		return nil, specerrors.ErrEmptyVocab
	}
	return &Generator{
		ctx:     ctx,
		cfg:     cfg,
		voc:     voc,
		linkify: render.NewLinkifier(voc.TermNames()),
		memo:    orderMemo{entries: make(map[uint64][]string)},
	}, nil
}

// Close releases the generator. Further Generate calls fail with
// ErrGeneratorClosed.
func (g *Generator) Close() {
	g.closed = true
}

// Generate writes class pages, the index page, and a checksum manifest to
// outDir. It returns the manifest, mapping each written filename to the
// xxhash64 of its content; compatibility runs diff this against a manifest
// captured from the legacy tree.
func (g *Generator) Generate(outDir string) (Manifest, error) {
	if g.closed {
		return nil, specerrors.ErrGeneratorClosed
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	manifest := make(Manifest, len(g.voc.Classes)+2)
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(g.ctx)
	eg.SetLimit(g.cfg.workers)

	for _, class := range g.voc.Classes {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			page, err := g.classPage(class)
			if err != nil {
				return fmt.Errorf("class %s: %w", class.Name, err)
			}
			name := "class_" + class.Name + ".html"
			if err := os.WriteFile(filepath.Join(outDir, name), page, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
			g.cfg.logger.Debug().
				Str("class", class.Name).
				Int("bytes", len(page)).
				Msg("rendered class page")

			mu.Lock()
			manifest[name] = xxhash.Sum64(page)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	index := []byte(g.cfg.templates.IndexPage(g.voc))
	if err := os.WriteFile(filepath.Join(outDir, "index.html"), index, 0o644); err != nil {
		return nil, fmt.Errorf("write index.html: %w", err)
	}
	manifest["index.html"] = xxhash.Sum64(index)

	if err := manifest.write(filepath.Join(outDir, "manifest.json")); err != nil {
		return nil, err
	}

	g.cfg.logger.Info().
		Int("classes", len(g.voc.Classes)).
		Int("properties", len(g.voc.Properties)).
		Str("width", g.cfg.width.String()).
		Msg("generated vocabulary documentation")
	return manifest, nil
}

// classPage orders the class's relationship lists and expands the class
// fragment.
func (g *Generator) classPage(class *vocab.Class) ([]byte, error) {
	lists := make(map[vocab.ListKind][]string, len(vocab.ListKinds))
	for _, kind := range vocab.ListKinds {
		ordered, err := g.orderList(class, kind)
		if err != nil {
			return nil, err
		}
		lists[kind] = ordered
	}
	return []byte(g.cfg.templates.ClassPage(class, lists, g.linkify)), nil
}

// orderList applies the override entry for (class, kind) when one exists
// and falls through to the hash-order emulator otherwise.
func (g *Generator) orderList(class *vocab.Class, kind vocab.ListKind) ([]string, error) {
	docOrder := class.List(kind)
	if g.cfg.overrides != nil {
		ordered, ok, err := g.cfg.overrides.Apply(class.Name, kind, docOrder)
		if err != nil {
			return nil, err
		}
		if ok {
			return ordered, nil
		}
	}
	return g.memo.reorder(docOrder, g.cfg.width)
}

// orderMemo caches Reorder results. Relationship lists recur across a run
// (classes cross-reference each other and several vocabularies share core
// terms), and a reorder's output depends only on the candidates and the
// width, so repeats are served from the cache. Keys are the xxhash64 of
// the width and the NUL-separated candidates.
type orderMemo struct {
	mu      sync.Mutex
	entries map[uint64][]string
}

func (m *orderMemo) reorder(candidates []string, w Width) ([]string, error) {
	if len(candidates) < 2 {
		return Reorder(candidates, w)
	}

	var d xxhash.Digest
	_, _ = d.WriteString(w.String())
	for _, c := range candidates {
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(c)
	}
	key := d.Sum64()

	m.mu.Lock()
	cached, ok := m.entries[key]
	m.mu.Unlock()
	if ok {
		return cached, nil
	}

	ordered, err := Reorder(candidates, w)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.entries[key] = ordered
	m.mu.Unlock()
	return ordered, nil
}
