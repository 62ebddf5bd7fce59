package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default_content.yaml
var defaultContent []byte

// contentPattern selects content files when Load is pointed at a directory.
const contentPattern = "**/*.{yaml,yml}"

var validate = newValidator()

// newValidator teaches the validator that a zero Date is an absent value, so
// `required` rejects records without a date.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d, ok := field.Interface().(Date)
		if !ok || d.IsZero() {
			return nil
		}
		return d.Time
	}, Date{})
	return v
}

// document is the on-disk shape of a content file. Every section is optional
// so content can be split across several files.
type document struct {
	Articles  []Article    `yaml:"articles" validate:"dive"`
	Notes     []Note       `yaml:"notes" validate:"dive"`
	Photos    []photoDoc   `yaml:"photos" validate:"dive"`
	Galleries []galleryDoc `yaml:"galleries" validate:"dive"`
	Podcasts  []Podcast    `yaml:"podcasts" validate:"dive"`
}

type photoDoc struct {
	ID          int            `yaml:"id" validate:"gt=0"`
	Title       string         `yaml:"title" validate:"required"`
	Description string         `yaml:"description"`
	URL         string         `yaml:"url" validate:"required,http_url"`
	Tags        []string       `yaml:"tags" validate:"dive,required"`
	Date        Date           `yaml:"date" validate:"required"`
	Gallery     *galleryRefDoc `yaml:"gallery,omitempty"`
}

type galleryRefDoc struct {
	ID    int `yaml:"id" validate:"gt=0"`
	Count int `yaml:"count" validate:"gte=0"`
}

type galleryDoc struct {
	ID          int        `yaml:"id" validate:"gt=0"`
	Title       string     `yaml:"title" validate:"required"`
	Description string     `yaml:"description"`
	Photos      []photoDoc `yaml:"photos" validate:"dive"`
}

func (p photoDoc) photo() Photo {
	var target PhotoTarget = Single{}
	if p.Gallery != nil {
		target = GalleryRef{GalleryID: p.Gallery.ID, PhotoCount: p.Gallery.Count}
	}
	return Photo{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		URL:         p.URL,
		Tags:        p.Tags,
		Date:        p.Date,
		Target:      target,
	}
}

func (g galleryDoc) gallery() Gallery {
	out := Gallery{ID: g.ID, Title: g.Title, Description: g.Description}
	for _, p := range g.Photos {
		photo := p.photo()
		// Galleries do not nest.
		photo.Target = Single{}
		out.Photos = append(out.Photos, photo)
	}
	return out
}

func (d *document) merge(other document) {
	d.Articles = append(d.Articles, other.Articles...)
	d.Notes = append(d.Notes, other.Notes...)
	d.Photos = append(d.Photos, other.Photos...)
	d.Galleries = append(d.Galleries, other.Galleries...)
	d.Podcasts = append(d.Podcasts, other.Podcasts...)
}

// Default returns the store built from the embedded showcase content.
func Default() (*Store, error) {
	return Parse(defaultContent)
}

// Load builds a store from path. An empty path loads the embedded content, a
// file is parsed as a single document and a directory is searched for YAML
// files which are merged in path order.
func Load(path string) (*Store, error) {
	if path == "" {
		return Default()
	}

	files, err := Files(path)
	if err != nil {
		return nil, err
	}

	var merged document
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("reading content: %w", err)
		}
		doc, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", f, err)
		}
		merged.merge(doc)
	}
	return newStore(merged)
}

// Files lists the content files Load reads for path, in merge order.
func Files(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	matches, err := doublestar.Glob(os.DirFS(path), contentPattern)
	if err != nil {
		return nil, fmt.Errorf("listing content in %s: %w", path, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no content files matching %s in %s", contentPattern, path)
	}
	sort.Strings(matches)

	files := make([]string, len(matches))
	for i, m := range matches {
		files[i] = filepath.Join(path, filepath.FromSlash(m))
	}
	return files, nil
}

// Parse builds a store from a single YAML document.
func Parse(data []byte) (*Store, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, err
	}
	return newStore(doc)
}

func decode(data []byte) (document, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return document{}, fmt.Errorf("decoding content: %w", err)
	}
	if err := validate.Struct(doc); err != nil {
		return document{}, fmt.Errorf("validating content: %w", err)
	}
	return doc, nil
}
