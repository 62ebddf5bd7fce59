// Package feed turns podcast RSS/Atom feeds into podcast records.
package feed

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"

	"github.com/matheuskafuri/folio/internal/content"
	"github.com/matheuskafuri/folio/internal/playback"
)

const (
	descriptionLimit = 300
	defaultCategory  = "Uncategorized"
)

type Importer struct {
	parser *gofeed.Parser
}

func NewImporter() *Importer {
	return &Importer{parser: gofeed.NewParser()}
}

// Fetch parses src, which is either an http(s) URL or a local file.
func (im *Importer) Fetch(ctx context.Context, src string) (*gofeed.Feed, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		f, err := im.parser.ParseURLWithContext(src, ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", src, err)
		}
		return f, nil
	}

	file, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("opening feed: %w", err)
	}
	defer file.Close()

	f, err := im.parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", src, err)
	}
	return f, nil
}

// Podcasts maps the episodes of f to podcast records numbered from startID.
// Items without an audio enclosure are skipped.
func Podcasts(f *gofeed.Feed, startID int) []content.Podcast {
	var out []content.Podcast
	for _, item := range f.Items {
		audio := audioURL(item)
		if audio == "" {
			continue
		}

		category, tags := classify(f, item)
		out = append(out, content.Podcast{
			ID:          startID + len(out),
			Title:       strings.TrimSpace(item.Title),
			Description: truncate(stripHTML(description(item)), descriptionLimit),
			CoverURL:    coverURL(f, item),
			AudioURL:    audio,
			Duration:    duration(item),
			Category:    category,
			Tags:        tags,
			Date:        published(item),
		})
	}
	return out
}

func audioURL(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if strings.HasPrefix(enc.Type, "audio/") && isHTTP(enc.URL) {
			return enc.URL
		}
	}
	return ""
}

func description(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}
	if item.ITunesExt != nil && item.ITunesExt.Summary != "" {
		return item.ITunesExt.Summary
	}
	return item.Content
}

func coverURL(f *gofeed.Feed, item *gofeed.Item) string {
	candidates := []string{}
	if item.Image != nil {
		candidates = append(candidates, item.Image.URL)
	}
	if item.ITunesExt != nil {
		candidates = append(candidates, item.ITunesExt.Image)
	}
	if f.Image != nil {
		candidates = append(candidates, f.Image.URL)
	}
	if f.ITunesExt != nil {
		candidates = append(candidates, f.ITunesExt.Image)
	}
	for _, c := range candidates {
		if isHTTP(c) {
			return c
		}
	}
	return ""
}

// classify picks the episode category and turns the remaining categories
// and iTunes keywords into tags.
func classify(f *gofeed.Feed, item *gofeed.Item) (string, []string) {
	var names []string
	names = append(names, item.Categories...)

	category := ""
	if len(names) > 0 {
		category, names = strings.TrimSpace(names[0]), names[1:]
	}
	if category == "" && f.ITunesExt != nil && len(f.ITunesExt.Categories) > 0 {
		category = f.ITunesExt.Categories[0].Text
	}
	if category == "" && len(f.Categories) > 0 {
		category = f.Categories[0]
	}
	if category == "" {
		category = defaultCategory
	}

	if item.ITunesExt != nil && item.ITunesExt.Keywords != "" {
		names = append(names, strings.Split(item.ITunesExt.Keywords, ",")...)
	}

	seen := map[string]bool{strings.ToLower(category): true}
	var tags []string
	for _, n := range names {
		tag := strings.ToLower(strings.TrimSpace(n))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return category, tags
}

// duration normalizes an iTunes duration, given either in seconds or as
// [h:]mm:ss, to m:ss or h:mm:ss.
func duration(item *gofeed.Item) string {
	if item.ITunesExt == nil {
		return ""
	}
	raw := strings.TrimSpace(item.ITunesExt.Duration)
	if raw == "" {
		return ""
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return formatLength(time.Duration(secs) * time.Second)
	}
	d, err := playback.ParseLength(raw)
	if err != nil {
		return raw
	}
	return formatLength(d)
}

func formatLength(d time.Duration) string {
	total := int(d / time.Second)
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func published(item *gofeed.Item) content.Date {
	t := time.Now()
	if item.PublishedParsed != nil {
		t = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		t = *item.UpdatedParsed
	}
	t = t.UTC()
	return content.Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func isHTTP(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

type ImportResult struct {
	Podcasts []content.Podcast
	Errors   []error
}

// ImportAll fetches every source concurrently. Episodes keep source order
// and are numbered consecutively from startID; errors are reported in source
// order too. gofeed parsers keep per-parse state, so each fetch gets its own.
func ImportAll(ctx context.Context, sources []string, startID int) ImportResult {
	var (
		feeds = make([]*gofeed.Feed, len(sources))
		errs  = make([]error, len(sources))
		wg    sync.WaitGroup
	)

	for i, src := range sources {
		wg.Add(1)
		go func(i int, s string) {
			defer wg.Done()
			feeds[i], errs[i] = NewImporter().Fetch(ctx, s)
		}(i, src)
	}

	wg.Wait()

	var result ImportResult
	for _, err := range errs {
		if err != nil {
			result.Errors = append(result.Errors, err)
		}
	}

	next := startID
	for _, f := range feeds {
		if f == nil {
			continue
		}
		eps := Podcasts(f, next)
		next += len(eps)
		result.Podcasts = append(result.Podcasts, eps...)
	}
	return result
}

// Marshal renders podcasts as a content file.
func Marshal(podcasts []content.Podcast) ([]byte, error) {
	doc := struct {
		Podcasts []content.Podcast `yaml:"podcasts"`
	}{Podcasts: podcasts}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding podcasts: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
