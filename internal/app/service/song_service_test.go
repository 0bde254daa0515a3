package service_test

import (
	"context"
	"errors"
	"sort"
	"songvault/internal/app/service"
	"songvault/internal/common"
	"songvault/internal/domain/model"
	"testing"
)

type fakeSongRepo struct {
	songs  map[int64]model.Song
	nextID int64
}

func newFakeSongRepo(seed ...model.Song) *fakeSongRepo {
	repo := &fakeSongRepo{songs: map[int64]model.Song{}}
	for _, s := range seed {
		repo.nextID++
		s.ID = repo.nextID
		repo.songs[s.ID] = s
	}
	return repo
}

func (f *fakeSongRepo) Create(_ context.Context, song *model.Song) error {
	f.nextID++
	song.ID = f.nextID
	f.songs[song.ID] = *song
	return nil
}

func (f *fakeSongRepo) FindByID(_ context.Context, id int64) (*model.Song, error) {
	song, exists := f.songs[id]
	if !exists {
		return nil, common.ErrNotFound
	}
	return &song, nil
}

func (f *fakeSongRepo) ListByTitle(_ context.Context) ([]model.Song, error) {
	songs := []model.Song{}
	for _, s := range f.songs {
		songs = append(songs, s)
	}
	sort.Slice(songs, func(i, j int) bool { return songs[i].Title < songs[j].Title })
	return songs, nil
}

func (f *fakeSongRepo) Update(_ context.Context, song *model.Song) error {
	if _, exists := f.songs[song.ID]; !exists {
		return common.ErrNotFound
	}
	f.songs[song.ID] = *song
	return nil
}

func (f *fakeSongRepo) Delete(_ context.Context, id int64) error {
	if _, exists := f.songs[id]; !exists {
		return common.ErrNotFound
	}
	delete(f.songs, id)
	return nil
}

type fakeListCache struct {
	songs         []model.Song
	cached        bool
	invalidations int
}

func (f *fakeListCache) Get(_ context.Context) ([]model.Song, bool, error) {
	return f.songs, f.cached, nil
}

func (f *fakeListCache) Set(_ context.Context, songs []model.Song) error {
	f.songs = songs
	f.cached = true
	return nil
}

func (f *fakeListCache) Invalidate(_ context.Context) error {
	f.songs = nil
	f.cached = false
	f.invalidations++
	return nil
}

func seedSongs() []model.Song {
	return []model.Song{
		{Title: "like glue", Artist: "sean paul"},
		{Title: "simple song", Artist: "konshens"},
		{Title: "love is wicked", Artist: "brick and lace"},
		{Title: "jam rock", Artist: "damien marley"},
	}
}

func TestListSongsOrderedByTitle(t *testing.T) {
	svc := service.NewSongService(newFakeSongRepo(seedSongs()...), nil)

	songs, err := svc.ListSongs(context.Background())
	if err != nil {
		t.Fatalf("ListSongs failed: %v", err)
	}
	want := []string{"jam rock", "like glue", "love is wicked", "simple song"}
	if len(songs) != len(want) {
		t.Fatalf("got %d songs, want %d", len(songs), len(want))
	}
	for i, title := range want {
		if songs[i].Title != title {
			t.Errorf("songs[%d].Title = %q, want %q", i, songs[i].Title, title)
		}
	}
}

func TestListSongsPopulatesAndServesCache(t *testing.T) {
	listCache := &fakeListCache{}
	repo := newFakeSongRepo(seedSongs()...)
	svc := service.NewSongService(repo, listCache)

	if _, err := svc.ListSongs(context.Background()); err != nil {
		t.Fatalf("ListSongs failed: %v", err)
	}
	if !listCache.cached {
		t.Fatal("list miss should populate the cache")
	}

	// Mutate the store behind the cache; a hit must serve the cached list.
	repo.songs = map[int64]model.Song{}
	songs, err := svc.ListSongs(context.Background())
	if err != nil {
		t.Fatalf("ListSongs failed: %v", err)
	}
	if len(songs) != 4 {
		t.Errorf("got %d songs from cache, want 4", len(songs))
	}
}

func TestMutationsInvalidateListCache(t *testing.T) {
	listCache := &fakeListCache{}
	svc := service.NewSongService(newFakeSongRepo(seedSongs()...), listCache)

	song, err := svc.CreateSong(context.Background(), service.SongRequest{Title: "hello", Artist: "beyonce"})
	if err != nil {
		t.Fatalf("CreateSong failed: %v", err)
	}
	if _, err := svc.UpdateSong(context.Background(), song.ID, service.SongRequest{Title: "halo", Artist: "beyonce"}); err != nil {
		t.Fatalf("UpdateSong failed: %v", err)
	}
	if err := svc.DeleteSong(context.Background(), song.ID); err != nil {
		t.Fatalf("DeleteSong failed: %v", err)
	}
	if listCache.invalidations != 3 {
		t.Errorf("got %d cache invalidations, want 3", listCache.invalidations)
	}
}

func TestCreateSong(t *testing.T) {
	svc := service.NewSongService(newFakeSongRepo(seedSongs()...), nil)

	song, err := svc.CreateSong(context.Background(), service.SongRequest{Title: "hello", Artist: "beyonce"})
	if err != nil {
		t.Fatalf("CreateSong failed: %v", err)
	}
	if song.ID != 5 {
		t.Errorf("got id %d, want 5", song.ID)
	}

	got, err := svc.GetSong(context.Background(), song.ID)
	if err != nil {
		t.Fatalf("GetSong failed: %v", err)
	}
	if got.Title != "hello" || got.Artist != "beyonce" {
		t.Errorf("stored song %+v does not match request", got)
	}
}

func TestCreateSongMissingFields(t *testing.T) {
	svc := service.NewSongService(newFakeSongRepo(), nil)

	for _, req := range []service.SongRequest{
		{},
		{Title: "hello"},
		{Artist: "beyonce"},
	} {
		if _, err := svc.CreateSong(context.Background(), req); !errors.Is(err, common.ErrBadRequest) {
			t.Errorf("CreateSong(%+v) = %v, want ErrBadRequest", req, err)
		}
	}
}

func TestUpdateSong(t *testing.T) {
	svc := service.NewSongService(newFakeSongRepo(seedSongs()...), nil)

	song, err := svc.UpdateSong(context.Background(), 1, service.SongRequest{Title: "the vow", Artist: "bull dogg"})
	if err != nil {
		t.Fatalf("UpdateSong failed: %v", err)
	}
	if song.ID != 1 || song.Title != "the vow" || song.Artist != "bull dogg" {
		t.Errorf("unexpected updated song %+v", song)
	}

	got, err := svc.GetSong(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetSong failed: %v", err)
	}
	if got.Title != "the vow" || got.Artist != "bull dogg" {
		t.Errorf("update did not persist, got %+v", got)
	}

	if _, err := svc.UpdateSong(context.Background(), 10, service.SongRequest{Title: "the vow", Artist: "bull dogg"}); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("UpdateSong on unknown id = %v, want ErrNotFound", err)
	}
	if _, err := svc.UpdateSong(context.Background(), 1, service.SongRequest{Title: "the vow"}); !errors.Is(err, common.ErrBadRequest) {
		t.Errorf("UpdateSong missing artist = %v, want ErrBadRequest", err)
	}
}

func TestDeleteSong(t *testing.T) {
	svc := service.NewSongService(newFakeSongRepo(seedSongs()...), nil)

	if err := svc.DeleteSong(context.Background(), 1); err != nil {
		t.Fatalf("DeleteSong failed: %v", err)
	}
	if _, err := svc.GetSong(context.Background(), 1); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("GetSong after delete = %v, want ErrNotFound", err)
	}
	if err := svc.DeleteSong(context.Background(), 1); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("second DeleteSong = %v, want ErrNotFound", err)
	}
}
