package section

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matheuskafuri/folio/internal/content"
)

func testStore(t *testing.T) *content.Store {
	t.Helper()
	s, err := content.Default()
	require.NoError(t, err)
	return s
}

func TestNewSectionStartsListing(t *testing.T) {
	a := NewArticles(testStore(t))
	assert.Equal(t, View{State: Listing}, a.View())
	assert.Equal(t, content.KindArticle, a.Kind())
	assert.False(t, a.Back(), "back at listing is a no-op")
}

func TestArticleOpenAndBack(t *testing.T) {
	a := NewArticles(testStore(t))
	require.NoError(t, a.Select(3))
	assert.Equal(t, View{State: Viewing, ItemID: 3}, a.View())

	art, ok := a.Viewed()
	require.True(t, ok)
	assert.Equal(t, "The Power of Simplicity", art.Title)

	assert.True(t, a.Back())
	assert.Equal(t, Listing, a.View().State)
	_, ok = a.Viewed()
	assert.False(t, ok)
}

func TestOpenUnknownIsNotFound(t *testing.T) {
	n := NewNotes(testStore(t))
	assert.ErrorIs(t, n.Select(99), ErrNotFound)
	assert.Equal(t, Listing, n.View().State)
}

func TestOpenWhileViewingIsIllegal(t *testing.T) {
	a := NewArticles(testStore(t))
	require.NoError(t, a.open(1))
	assert.ErrorIs(t, a.open(2), ErrIllegalTransition)
	assert.Equal(t, 1, a.View().ItemID)
}

func TestFiltersOnlyWhileListing(t *testing.T) {
	a := NewArticles(testStore(t))
	require.NoError(t, a.ToggleTag("design"))
	require.NoError(t, a.open(1))

	assert.ErrorIs(t, a.ToggleTag("future"), ErrNotListing)
	assert.ErrorIs(t, a.ToggleCategory("x"), ErrNotListing)
	assert.ErrorIs(t, a.ClearFilters(), ErrNotListing)
	assert.Equal(t, Viewing, a.View().State, "filter attempts do not change state")
	assert.Equal(t, []string{"design"}, []string(a.SelectedTags()))
}

func TestToggleTagFiltersVisible(t *testing.T) {
	a := NewArticles(testStore(t))
	require.NoError(t, a.ToggleTag("design"))

	var got []int
	for _, r := range a.Visible("") {
		got = append(got, r.ID)
	}
	assert.Equal(t, []int{1, 5}, got)

	// The tag bar keeps every tag so the selection can be undone.
	assert.Contains(t, a.AllTags(), "philosophy")

	require.NoError(t, a.ToggleTag("design"))
	assert.Len(t, a.Visible(""), 5)
}

func TestToggleTagTwiceRestoresOrder(t *testing.T) {
	a := NewArticles(testStore(t))
	for _, tag := range []string{"philosophy", "design", "future"} {
		require.NoError(t, a.ToggleTag(tag))
	}
	want := []string{"design", "philosophy", "future"}
	assert.Equal(t, want, []string(a.SelectedTags()))

	require.NoError(t, a.ToggleTag("design"))
	require.NoError(t, a.ToggleTag("design"))
	assert.Equal(t, want, []string(a.SelectedTags()))
}

func TestVisibleAppliesQuery(t *testing.T) {
	a := NewArticles(testStore(t))
	visible := a.Visible("minimal")
	assert.Len(t, visible, 3)
	assert.Len(t, a.Visible(""), 5)
}

func TestCursorClamp(t *testing.T) {
	a := NewArticles(testStore(t))
	a.MoveCursor(10, 5)
	assert.Equal(t, 4, a.Cursor())
	a.MoveCursor(-10, 5)
	assert.Equal(t, 0, a.Cursor())

	a.MoveCursor(3, 5)
	a.ClampCursor(2)
	assert.Equal(t, 1, a.Cursor())
	a.ClampCursor(0)
	assert.Equal(t, 0, a.Cursor())
}

func TestAtCursorFollowsVisible(t *testing.T) {
	a := NewArticles(testStore(t))
	a.MoveCursor(1, 5)
	r, ok := a.AtCursor("minimal")
	require.True(t, ok)
	assert.Equal(t, 4, r.ID)

	_, ok = a.AtCursor("nothing matches this")
	assert.False(t, ok)
}

func TestToggleResetsCursor(t *testing.T) {
	a := NewArticles(testStore(t))
	a.MoveCursor(3, 5)
	require.NoError(t, a.ToggleTag("design"))
	assert.Equal(t, 0, a.Cursor())
}

func TestAllCategoriesEmptyForUncategorized(t *testing.T) {
	assert.Empty(t, NewNotes(testStore(t)).AllCategories())
	assert.Equal(t,
		[]string{"Test", "Design", "Art", "Technology", "Philosophy", "Wellness"},
		NewPodcasts(testStore(t)).AllCategories())
}

func TestPhotoGalleryDrillDown(t *testing.T) {
	p := NewPhotos(testStore(t))

	require.NoError(t, p.Select(1))
	assert.Equal(t, View{State: Gallery, GalleryID: 1}, p.View())

	g, ok := p.Gallery()
	require.True(t, ok)
	assert.Equal(t, "Morning Light Collection", g.Title)

	p.MoveGalleryCursor(1)
	photo, ok := p.GalleryPhotoAtCursor()
	require.True(t, ok)
	require.NoError(t, p.OpenPhoto(photo.ID))
	assert.Equal(t, View{State: ViewingPhoto, ItemID: 2, GalleryID: 1}, p.View())

	viewed, ok := p.ViewedPhoto()
	require.True(t, ok)
	assert.Equal(t, "Window Glow", viewed.Title)

	require.True(t, p.Back())
	assert.Equal(t, Gallery, p.View().State)
	require.True(t, p.Back())
	assert.Equal(t, Listing, p.View().State)
}

func TestPhotoSingleOpensModal(t *testing.T) {
	p := NewPhotos(testStore(t))
	require.NoError(t, p.Select(3))
	assert.Equal(t, View{State: Viewing, ItemID: 3}, p.View())

	photo, ok := p.ViewedPhoto()
	require.True(t, ok)
	assert.Equal(t, "Workspace", photo.Title)

	assert.ErrorIs(t, p.OpenPhoto(1), ErrIllegalTransition)
}

func TestMissingGalleryReportsNotFound(t *testing.T) {
	p := NewPhotos(testStore(t))
	require.NoError(t, p.OpenGallery(99))
	assert.Equal(t, View{State: Gallery, GalleryID: 99}, p.View())

	_, ok := p.Gallery()
	assert.False(t, ok)
	assert.ErrorIs(t, p.OpenPhoto(1), ErrNotFound)
	_, ok = p.GalleryPhotoAtCursor()
	assert.False(t, ok)

	require.True(t, p.Back())
	assert.Equal(t, Listing, p.View().State)
}

func TestOpenGalleryPhotoNotInGallery(t *testing.T) {
	p := NewPhotos(testStore(t))
	require.NoError(t, p.OpenGallery(1))
	assert.ErrorIs(t, p.OpenPhoto(4), ErrNotFound, "photo 4 belongs to gallery 2")
}

func TestPodcastSelectDrivesPlayback(t *testing.T) {
	p := NewPodcasts(testStore(t))

	require.NoError(t, p.Select(1))
	p.Tick(30 * time.Second)
	assert.True(t, p.Player().PlayingID(1))
	assert.Equal(t, 30*time.Second, p.Player().Position(1))

	require.NoError(t, p.Select(2))
	assert.Equal(t, Listing, p.View().State, "podcasts never drill down")

	id, ok := p.Player().Current()
	require.True(t, ok)
	assert.Equal(t, 2, id)
	assert.True(t, p.Player().IsPlaying())
	assert.Equal(t, time.Duration(0), p.Player().Position(2))
	assert.False(t, p.Player().PlayingID(1))

	ep, ok := p.NowPlaying()
	require.True(t, ok)
	assert.Equal(t, "The Future of Minimalist Design", ep.Title)

	assert.ErrorIs(t, p.Select(42), ErrNotFound)
}

func TestPodcastTickStopsAtEpisodeEnd(t *testing.T) {
	p := NewPodcasts(testStore(t))
	require.NoError(t, p.Select(1)) // 4:12
	p.Tick(5 * time.Minute)
	assert.False(t, p.Player().IsPlaying())
	assert.Equal(t, 4*time.Minute+12*time.Second, p.Player().Position(1))
}

func TestPodcastStopUnloads(t *testing.T) {
	p := NewPodcasts(testStore(t))
	require.NoError(t, p.Select(1))
	p.Stop()

	_, ok := p.NowPlaying()
	assert.False(t, ok)
	assert.False(t, p.Player().IsPlaying())
}

func TestPodcastCategoryFilter(t *testing.T) {
	p := NewPodcasts(testStore(t))
	require.NoError(t, p.ToggleCategory("Art"))
	visible := p.Visible("")
	require.Len(t, visible, 1)
	assert.Equal(t, "Conversations on Creativity", visible[0].Title)

	require.NoError(t, p.ToggleTag("design"))
	assert.Empty(t, p.Visible(""), "tags and categories are combined with AND")
}
