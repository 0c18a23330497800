package service

import (
	"context"

	"github.com/threads-be/threads/backend/internal/service/utils"
	"github.com/threads-be/threads/shared/api"
	"github.com/threads-be/threads/shared/domain"
	"github.com/threads-be/threads/shared/errors"
	"github.com/threads-be/threads/shared/logger"
	"github.com/threads-be/threads/shared/validation"
)

type ThreadService interface {
	Find(ctx context.Context) ([]domain.Thread, error)
	FindOne(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	Create(ctx context.Context, data domain.ThreadCreationData) (domain.Thread, error)
	Update(ctx context.Context, data domain.ThreadUpdateData) (domain.Thread, error)
	Delete(ctx context.Context, id domain.ThreadId, userId domain.UserId) (domain.Thread, error)
}

type Thread struct {
	storage ThreadStorage
	images  ImageHost
	files   LocalFiles
}

type ThreadStorage interface {
	Threads(ctx context.Context) ([]domain.Thread, error)
	Thread(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	CreateThread(ctx context.Context, thread *domain.Thread) error
	UpdateThread(ctx context.Context, thread *domain.Thread) error
	DeleteThread(ctx context.Context, id domain.ThreadId) error
}

func NewThread(storage ThreadStorage, images ImageHost, files LocalFiles) *Thread {
	return &Thread{storage: storage, images: images, files: files}
}

func (s *Thread) Find(ctx context.Context) ([]domain.Thread, error) {
	return s.storage.Threads(ctx)
}

func (s *Thread) FindOne(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	return s.storage.Thread(ctx, id)
}

// Create validates the payload, publishes the uploaded image (if any) and
// stores the thread. The returned value is the thread as inserted.
func (s *Thread) Create(ctx context.Context, data domain.ThreadCreationData) (domain.Thread, error) {
	content := utils.SanitizeText(data.Content)
	if err := validation.Struct(api.CreateThreadRequest{Content: content, Image: data.Image}); err != nil {
		return domain.Thread{}, err
	}

	var imageURL string
	if data.Image != "" {
		url, err := s.publish(ctx, data.Image)
		if err != nil {
			return domain.Thread{}, err
		}
		imageURL = url
	}

	thread := domain.Thread{Content: content, Image: imageURL, UserId: data.UserId}
	if err := s.storage.CreateThread(ctx, &thread); err != nil {
		if imageURL != "" {
			logger.Log.WithError(err).WithField("image", imageURL).Warn("thread insert failed, hosted image is orphaned")
		}
		return domain.Thread{}, err
	}

	threadsCreated.Inc()
	return thread, nil
}

func (s *Thread) publish(ctx context.Context, filename string) (string, error) {
	file, err := s.files.Open(filename)
	if err != nil {
		logger.Log.WithError(err).WithField("file", filename).Error("failed to open upload")
		return "", err
	}
	defer file.Close()

	url, err := s.images.Upload(ctx, filename, file)
	if err != nil {
		logger.Log.WithError(err).WithField("file", filename).Error("image host upload failed")
		return "", err
	}
	return url, nil
}

// Update replaces the non-empty fields of data on the caller's own thread.
func (s *Thread) Update(ctx context.Context, data domain.ThreadUpdateData) (domain.Thread, error) {
	content := utils.SanitizeText(data.Content)
	if err := validation.Struct(api.UpdateThreadRequest{Content: content, Image: data.Image}); err != nil {
		return domain.Thread{}, err
	}
	if data.Image != "" && !s.images.Owns(data.Image) {
		return domain.Thread{}, errors.Validation(`"image" must be an image uploaded to this service`)
	}

	thread, err := s.ownThread(ctx, data.Id, data.UserId)
	if err != nil {
		return domain.Thread{}, err
	}

	if content != "" {
		thread.Content = content
	}
	if data.Image != "" {
		thread.Image = data.Image
	}
	if err := s.storage.UpdateThread(ctx, &thread); err != nil {
		return domain.Thread{}, err
	}
	return thread, nil
}

// Delete removes the caller's own thread and returns it as it was before deletion.
func (s *Thread) Delete(ctx context.Context, id domain.ThreadId, userId domain.UserId) (domain.Thread, error) {
	thread, err := s.ownThread(ctx, id, userId)
	if err != nil {
		return domain.Thread{}, err
	}
	if err := s.storage.DeleteThread(ctx, id); err != nil {
		return domain.Thread{}, err
	}
	return thread, nil
}

func (s *Thread) ownThread(ctx context.Context, id domain.ThreadId, userId domain.UserId) (domain.Thread, error) {
	thread, err := s.storage.Thread(ctx, id)
	if err != nil {
		return domain.Thread{}, err
	}
	if thread.UserId != userId {
		return domain.Thread{}, errors.Forbidden("You are not the owner of this thread!")
	}
	return thread, nil
}
