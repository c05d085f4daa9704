package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/meetinsight-team/meeting-insight/errors"
)

// allowedExtensions is the fixed allow-list of audio formats accepted for
// upload. Matching is case-insensitive.
var allowedExtensions = map[string]bool{
	".mp3": true,
	".wav": true,
	".m4a": true,
	".ogg": true,
}

// AllowedExtension reports whether filename carries an accepted audio extension.
func AllowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// StagedAudio is the request-scoped temporary copy of uploaded audio, held
// only for the duration of the transcription call.
type StagedAudio struct {
	Path string
}

// Release deletes the staged file. Safe to call after the file is gone.
func (s *StagedAudio) Release() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// StageAudio validates the declared filename against the extension
// allow-list and materializes the byte stream to a temporary file. The
// name is randomized so concurrent uploads of the same filename cannot
// collide. Rejection happens before any bytes are written.
func StageAudio(filename string, src io.Reader) (*StagedAudio, error) {
	if !AllowedExtension(filename) {
		return nil, errors.ErrUnsupportedFormat()
	}

	ext := strings.ToLower(filepath.Ext(filename))
	tmp, err := os.CreateTemp("", fmt.Sprintf("upload-%s-*%s", uuid.New().String(), ext))
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, errors.ErrInternal(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, errors.ErrInternal(err)
	}

	return &StagedAudio{Path: tmp.Name()}, nil
}
