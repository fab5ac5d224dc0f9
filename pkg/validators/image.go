package validators

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrNoFile              = errors.New("no file provided")
	ErrFileTooLarge        = errors.New("file too large")
	ErrFileTypeUnsupported = errors.New("unsupported file type")
)

// MaxAvatarSize is the largest avatar image accepted, in bytes
const MaxAvatarSize = 2 << 20

var avatarTypes = []string{"image/png", "image/jpeg", "image/webp"}

// AvatarValidator checks an uploaded avatar and returns the opened file along
// with its detected mime type. The caller has to close the file.
func AvatarValidator(fh *multipart.FileHeader) (int, multipart.File, *mimetype.MIME, error) {
	if fh == nil {
		return http.StatusBadRequest, nil, nil, ErrNoFile
	}

	if fh.Size > MaxAvatarSize {
		return http.StatusRequestEntityTooLarge, nil, nil, ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return http.StatusInternalServerError, nil, nil, err
	}

	// Headers are easy to spoof so look at the actual bytes
	mime, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, nil, err
	}

	if !mimetype.EqualsAny(mime.String(), avatarTypes...) {
		f.Close()
		return http.StatusBadRequest, nil, nil, ErrFileTypeUnsupported
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, nil, err
	}

	return 0, f, mime, nil
}
