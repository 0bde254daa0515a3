package service

import (
	"context"
	"songvault/internal/common"
	"songvault/internal/domain/model"
	"songvault/internal/domain/repository"
	"songvault/internal/platform/logger"

	"go.uber.org/zap"
)

// SongListCache is the read-through cache for the title-ordered song list.
// Implemented by cache.SongListCache; list reads tolerate cache failure.
type SongListCache interface {
	Get(ctx context.Context) ([]model.Song, bool, error)
	Set(ctx context.Context, songs []model.Song) error
	Invalidate(ctx context.Context) error
}

type SongService struct {
	songRepo  repository.SongRepository
	listCache SongListCache
}

func NewSongService(songRepo repository.SongRepository, listCache SongListCache) *SongService {
	return &SongService{songRepo: songRepo, listCache: listCache}
}

type SongRequest struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

func (s *SongService) ListSongs(ctx context.Context) ([]model.Song, error) {
	if s.listCache != nil {
		songs, hit, err := s.listCache.Get(ctx)
		if err != nil {
			logger.L().Warn("song list cache read failed", zap.Error(err))
		} else if hit {
			return songs, nil
		}
	}

	songs, err := s.songRepo.ListByTitle(ctx)
	if err != nil {
		return nil, err
	}

	if s.listCache != nil {
		if err := s.listCache.Set(ctx, songs); err != nil {
			logger.L().Warn("song list cache write failed", zap.Error(err))
		}
	}
	return songs, nil
}

func (s *SongService) CreateSong(ctx context.Context, req SongRequest) (*model.Song, error) {
	if req.Title == "" || req.Artist == "" {
		return nil, common.ErrBadRequest
	}

	song := &model.Song{
		Title:  req.Title,
		Artist: req.Artist,
	}
	if err := s.songRepo.Create(ctx, song); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return song, nil
}

func (s *SongService) GetSong(ctx context.Context, id int64) (*model.Song, error) {
	return s.songRepo.FindByID(ctx, id)
}

func (s *SongService) UpdateSong(ctx context.Context, id int64, req SongRequest) (*model.Song, error) {
	if req.Title == "" || req.Artist == "" {
		return nil, common.ErrBadRequest
	}

	song := &model.Song{
		ID:     id,
		Title:  req.Title,
		Artist: req.Artist,
	}
	if err := s.songRepo.Update(ctx, song); err != nil {
		return nil, err // common.ErrNotFound when no row matched
	}

	s.invalidateList(ctx)
	return song, nil
}

func (s *SongService) DeleteSong(ctx context.Context, id int64) error {
	if err := s.songRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateList(ctx)
	return nil
}

func (s *SongService) invalidateList(ctx context.Context) {
	if s.listCache == nil {
		return
	}
	if err := s.listCache.Invalidate(ctx); err != nil {
		logger.L().Warn("song list cache invalidation failed", zap.Error(err))
	}
}
