package middleware

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/threads-be/threads/shared/errors"
	"github.com/threads-be/threads/shared/logger"
	"github.com/threads-be/threads/shared/utils"
	"github.com/threads-be/threads/shared/validation"
)

// multipartOverhead leaves room for text fields next to the file.
const multipartOverhead = 1 << 20

type uploadKey struct{}

// UploadStore is where received files are kept.
type UploadStore interface {
	Save(data io.Reader, extension string) (string, error)
	Delete(filename string) error
}

type Upload struct {
	store        UploadStore
	maxSize      int64
	allowedMimes []string
}

func NewUpload(store UploadStore, maxSize int64, allowedMimes []string) *Upload {
	return &Upload{store: store, maxSize: maxSize, allowedMimes: allowedMimes}
}

// Image parses a multipart body, validates the file in field and saves it.
// Handlers read the saved filename with UploadedFile. A request without a
// file passes through untouched. The saved file is removed when the handler
// answers with an error status.
func (u *Upload) Image(field string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			maxRequest := validation.CalculateMaxRequestSize(u.maxSize, multipartOverhead)
			if err := validation.ValidateAndParseMultipart(r, w, maxRequest); err != nil {
				utils.WriteErrorAndStatusCode(w, u.parseError(err))
				return
			}
			defer r.MultipartForm.RemoveAll()

			file, header, err := r.FormFile(field)
			if stderrors.Is(err, http.ErrMissingFile) {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				utils.WriteErrorAndStatusCode(w, errors.Validation(fmt.Sprintf("%q could not be read", field)))
				return
			}
			defer file.Close()

			if header.Size > u.maxSize {
				utils.WriteErrorAndStatusCode(w, tooLarge(u.maxSize))
				return
			}

			mimeType, err := validation.ValidateImage(file, header, u.allowedMimes)
			if err != nil {
				logger.Log.WithError(err).Debug("rejected upload")
				utils.WriteErrorAndStatusCode(w, errors.Validation(
					fmt.Sprintf("%q must be an image of type %s", field, strings.Join(u.allowedMimes, ", "))))
				return
			}

			filename, err := u.store.Save(file, extension(header.Filename, mimeType))
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), uploadKey{}, filename)))

			if ww.Status() >= http.StatusBadRequest {
				if err := u.store.Delete(filename); err != nil {
					logger.Log.WithError(err).WithField("file", filename).Warn("failed to remove upload")
				}
			}
		})
	}
}

func (u *Upload) parseError(err error) error {
	if stderrors.Is(err, validation.ErrPayloadTooLarge) {
		return tooLarge(u.maxSize)
	}
	return errors.Validation("Request must be multipart/form-data")
}

func tooLarge(maxSize int64) error {
	return &errors.ErrorWithStatusCode{
		Message:    fmt.Sprintf("File is too large, maximum is %.1f MB", validation.FormatSizeMB(maxSize)),
		StatusCode: http.StatusRequestEntityTooLarge,
	}
}

// extension keeps the client's extension when it matches mimeType and
// otherwise picks one registered for mimeType.
func extension(filename, mimeType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" && mime.TypeByExtension(ext) == mimeType {
		return ext
	}
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}

// UploadedFile returns the filename saved by Upload.Image, or "" when the
// request carried no file.
func UploadedFile(r *http.Request) string {
	filename, _ := r.Context().Value(uploadKey{}).(string)
	return filename
}
