package services

import (
	"context"
	"io"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"fliquecms/dto"
	"fliquecms/internal/apperr"
	"fliquecms/internal/repository"
	"fliquecms/internal/storage"
	"fliquecms/model"
)

// MediaService stores uploaded files on disk under a per-type directory and
// tracks their metadata. Deleting a record removes the file too.
type MediaService struct {
	repo    *repository.MediaRepository
	store   storage.Store
	maxSize int64
	now     func() time.Time
}

func NewMediaService(repo *repository.MediaRepository, store storage.Store, maxSize int64) *MediaService {
	return &MediaService{repo: repo, store: store, maxSize: maxSize, now: time.Now}
}

type UploadInput struct {
	OriginalName string
	MimeType     string
	Size         int64
	Alt          string
	Title        string
	Description  string
	IsPublic     bool
	Body         io.Reader
}

func (s *MediaService) Upload(ctx context.Context, in UploadInput) (*model.Media, error) {
	if in.OriginalName == "" {
		return nil, apperr.New(apperr.Validation, "file is required")
	}
	if in.Size > s.maxSize {
		return nil, apperr.Newf(apperr.Validation, "file exceeds the %d byte upload limit", s.maxSize)
	}

	now := s.now().UTC()
	fileType := model.FileType(in.MimeType)
	name := storage.Filename(in.OriginalName, now)

	relPath, err := s.store.Save(fileType, name, in.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, err, "could not store upload")
	}

	media := model.Media{
		Name:         name,
		OriginalName: in.OriginalName,
		URL:          "/uploads/" + relPath,
		Type:         fileType,
		Size:         in.Size,
		Alt:          in.Alt,
		Title:        in.Title,
		Description:  in.Description,
		IsPublic:     in.IsPublic,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	saved, err := s.repo.Insert(ctx, media)
	if err != nil {
		// keep disk and records consistent when the insert fails
		if rmErr := s.store.Remove(relPath); rmErr != nil {
			log.Printf("media upload: orphaned file %s: %v", relPath, rmErr)
		}
		return nil, err
	}
	return &saved, nil
}

func (s *MediaService) Get(ctx context.Context, idHex string) (*model.Media, error) {
	id, err := parseID(idHex, "media id")
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *MediaService) List(ctx context.Context) ([]model.Media, error) {
	return s.repo.FindAll(ctx)
}

func (s *MediaService) Update(ctx context.Context, idHex string, in dto.UpdateMediaInput) (*model.Media, error) {
	id, err := parseID(idHex, "media id")
	if err != nil {
		return nil, err
	}
	set := bson.M{"updatedAt": s.now().UTC()}
	if in.Alt != nil {
		set["alt"] = *in.Alt
	}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.IsPublic != nil {
		set["isPublic"] = *in.IsPublic
	}
	return s.repo.Update(ctx, id, set)
}

func (s *MediaService) Delete(ctx context.Context, idHex string) error {
	id, err := parseID(idHex, "media id")
	if err != nil {
		return err
	}
	media, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	relPath := strings.TrimPrefix(media.URL, "/uploads/")
	if err := s.store.Remove(relPath); err != nil {
		log.Printf("media delete: remove file %s: %v", relPath, err)
	}
	return nil
}
