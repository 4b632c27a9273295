package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/somchaidev/activity-calendar/internal/compressor"
	"github.com/somchaidev/activity-calendar/internal/model"
	"github.com/somchaidev/activity-calendar/internal/storage"
	"github.com/somchaidev/activity-calendar/internal/validation"
)

// RemoteFactory builds and probes the remote store. The orchestrator
// calls it once per batch so a transient failure never disables remote
// storage beyond the current invocation.
type RemoteFactory func(ctx context.Context) (storage.Store, error)

// UploadFile is one file of an upload batch as received from the client.
type UploadFile struct {
	Name     string
	MimeType string
	Data     []byte
}

// UploadResult carries the stored attachments plus human-readable
// messages for files that were skipped, failed, or landed in the
// fallback store.
type UploadResult struct {
	Files         []model.Attachment
	PartialErrors []string
}

// UploadFailedError is returned when not a single file in the batch could
// be stored. Anything less than total failure is a success with
// PartialErrors attached.
type UploadFailedError struct {
	Details []string
}

func (e *UploadFailedError) Error() string {
	return "all uploads failed: " + strings.Join(e.Details, "; ")
}

// UploadService runs the upload pipeline: validate size, compress images,
// store remotely with per-file local fallback, aggregate results.
type UploadService struct {
	local       storage.Store
	remote      RemoteFactory
	comp        compressor.Compressor
	maxRawBytes int64
}

func NewUploadService(local storage.Store, remote RemoteFactory, comp compressor.Compressor, maxRawBytes int64) *UploadService {
	return &UploadService{
		local:       local,
		remote:      remote,
		comp:        comp,
		maxRawBytes: maxRawBytes,
	}
}

// UploadBatch processes the files sequentially and independently. Remote
// availability is decided once up front; a missing configuration or a
// failed probe silently selects the local store for the whole batch.
// Per-file remote failures fall back to local and are annotated, not
// counted as failures.
func (s *UploadService) UploadBatch(ctx context.Context, files []UploadFile) (*UploadResult, error) {
	remote, err := s.remote(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			slog.Info("remote storage not configured, storing locally")
		} else {
			slog.Warn("remote storage unavailable for this batch", "error", err)
		}
		remote = nil
	}

	result := &UploadResult{}

	for _, file := range files {
		err := validation.ValidateUpload(file.Name, int64(len(file.Data)), validation.UploadConstraints{MaxSize: s.maxRawBytes})
		if err != nil {
			result.PartialErrors = append(result.PartialErrors, err.Error())
			continue
		}

		// Compression never aborts an upload; on any codec problem the
		// original buffer comes back.
		data := s.comp.Compress(file.Data, file.MimeType)

		obj, backend, note, err := s.store(ctx, remote, data, file)
		if err != nil {
			result.PartialErrors = append(result.PartialErrors, fmt.Sprintf("%s: %v", file.Name, err))
			continue
		}
		if note != "" {
			result.PartialErrors = append(result.PartialErrors, note)
		}

		result.Files = append(result.Files, model.Attachment{
			ID:           obj.ID,
			Name:         file.Name,
			URL:          obj.URL,
			ThumbnailURL: obj.ThumbnailURL,
			MimeType:     file.MimeType,
			Size:         int64(len(data)),
			Storage:      backend,
		})
		slog.Info("file stored", "name", file.Name, "backend", backend, "bytes", len(data))
	}

	if len(result.Files) == 0 {
		details := result.PartialErrors
		if len(details) == 0 {
			details = []string{"no files provided"}
		}
		return result, &UploadFailedError{Details: details}
	}
	return result, nil
}

// store tries the remote backend when available, then local. The returned
// note annotates a successful local fallback after a remote failure.
func (s *UploadService) store(ctx context.Context, remote storage.Store, data []byte, file UploadFile) (*storage.Object, string, string, error) {
	if remote == nil {
		obj, err := s.local.Save(ctx, data, file.Name, file.MimeType)
		if err != nil {
			return nil, "", "", err
		}
		return obj, model.StorageLocal, "", nil
	}

	obj, remoteErr := remote.Save(ctx, data, file.Name, file.MimeType)
	if remoteErr == nil {
		return obj, model.StorageRemote, "", nil
	}

	slog.Warn("remote store failed, trying local fallback", "file", file.Name, "error", remoteErr)
	obj, localErr := s.local.Save(ctx, data, file.Name, file.MimeType)
	if localErr != nil {
		slog.Error("local fallback failed", "file", file.Name, "error", localErr)
		return nil, "", "", remoteErr
	}

	note := fmt.Sprintf("%s: stored locally instead (remote store: %v)", file.Name, remoteErr)
	return obj, model.StorageLocal, note, nil
}

// DeleteAttachment removes a stored file from whichever backend holds it.
// The explicit backend tag wins; bare ids fall back to shape
// classification. Deletion is best-effort: failures are logged and the
// call still reports success.
func (s *UploadService) DeleteAttachment(ctx context.Context, fileID, backend string) {
	if backend == "" {
		backend = ClassifyAttachmentID(fileID)
	}

	switch backend {
	case model.StorageLocal:
		err := s.local.Delete(ctx, fileID)
		if err != nil {
			slog.Warn("local delete failed", "id", fileID, "error", err)
		}
	default:
		remote, err := s.remote(ctx)
		if err != nil {
			slog.Warn("remote delete skipped, backend unavailable", "id", fileID, "error", err)
			return
		}
		err = remote.Delete(ctx, fileID)
		if err != nil {
			slog.Warn("remote delete failed", "id", fileID, "error", err)
		}
	}
}

// ClassifyAttachmentID guesses the backend for attachments created before
// records carried an explicit storage tag: local ids are timestamped
// filenames with a separator, remote ids are opaque handles.
func ClassifyAttachmentID(id string) string {
	if strings.Contains(id, "_") && !strings.HasPrefix(id, "http") {
		return model.StorageLocal
	}
	return model.StorageRemote
}
