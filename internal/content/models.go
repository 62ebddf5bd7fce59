package content

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Kind identifies one of the content collections.
type Kind string

const (
	KindArticle Kind = "article"
	KindNote    Kind = "note"
	KindPhoto   Kind = "photo"
	KindPodcast Kind = "podcast"
)

// Record is the common view of every content item, used by filtering and
// the section views.
type Record interface {
	RecordID() int
	SearchFields() []string
	TagList() []string
}

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component.
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseDate(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalYAML() (interface{}, error) {
	if d.IsZero() {
		return "", nil
	}
	return d.Format(dateLayout), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

type Article struct {
	ID       int      `yaml:"id" validate:"gt=0"`
	Title    string   `yaml:"title" validate:"required"`
	Excerpt  string   `yaml:"excerpt"`
	Body     string   `yaml:"body"`
	Tags     []string `yaml:"tags" validate:"dive,required"`
	Date     Date     `yaml:"date" validate:"required"`
	ReadTime string   `yaml:"read_time"`
}

func (a Article) RecordID() int          { return a.ID }
func (a Article) SearchFields() []string { return []string{a.Title, a.Excerpt, a.Body} }
func (a Article) TagList() []string      { return a.Tags }

// Note is a short untitled thought.
type Note struct {
	ID      int      `yaml:"id" validate:"gt=0"`
	Content string   `yaml:"content" validate:"required"`
	Tags    []string `yaml:"tags" validate:"dive,required"`
	Date    Date     `yaml:"date" validate:"required"`
}

func (n Note) RecordID() int          { return n.ID }
func (n Note) SearchFields() []string { return []string{n.Content} }
func (n Note) TagList() []string      { return n.Tags }

// PhotoTarget says what selecting a photo opens: the photo itself or a
// gallery. Implemented only by Single and GalleryRef.
type PhotoTarget interface {
	photoTarget()
}

// Single is a photo that opens on its own.
type Single struct{}

// GalleryRef is a photo that stands in for a whole gallery.
type GalleryRef struct {
	GalleryID  int
	PhotoCount int
}

func (Single) photoTarget()     {}
func (GalleryRef) photoTarget() {}

type Photo struct {
	ID          int
	Title       string
	Description string
	URL         string
	Tags        []string
	Date        Date
	Target      PhotoTarget
}

func (p Photo) RecordID() int          { return p.ID }
func (p Photo) SearchFields() []string { return []string{p.Title, p.Description} }
func (p Photo) TagList() []string      { return p.Tags }

// GalleryRef reports the gallery this photo points at, if any.
func (p Photo) GalleryRef() (GalleryRef, bool) {
	ref, ok := p.Target.(GalleryRef)
	return ref, ok
}

type Gallery struct {
	ID          int
	Title       string
	Description string
	Photos      []Photo
}

// Photo looks up a photo of the gallery by id.
func (g Gallery) Photo(id int) (Photo, bool) {
	for _, p := range g.Photos {
		if p.ID == id {
			return p, true
		}
	}
	return Photo{}, false
}

type Podcast struct {
	ID          int      `yaml:"id" validate:"gt=0"`
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description"`
	CoverURL    string   `yaml:"cover_url,omitempty" validate:"omitempty,http_url"`
	AudioURL    string   `yaml:"audio_url" validate:"required,http_url"`
	Duration    string   `yaml:"duration"`
	Category    string   `yaml:"category" validate:"required"`
	Tags        []string `yaml:"tags" validate:"dive,required"`
	Date        Date     `yaml:"date" validate:"required"`
}

func (p Podcast) RecordID() int { return p.ID }
func (p Podcast) SearchFields() []string {
	return []string{p.Title, p.Description, p.Category}
}
func (p Podcast) TagList() []string    { return p.Tags }
func (p Podcast) CategoryName() string { return p.Category }
