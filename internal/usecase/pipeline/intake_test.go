package pipeline

import (
	stdErrors "errors"
	"os"
	"strings"
	"testing"

	"github.com/meetinsight-team/meeting-insight/errors"
)

func TestAllowedExtension(t *testing.T) {
	cases := []struct {
		filename string
		allowed  bool
	}{
		{"meeting.mp3", true},
		{"meeting.wav", true},
		{"meeting.m4a", true},
		{"meeting.ogg", true},
		{"MEETING.MP3", true},
		{"standup.Wav", true},
		{"meeting.flac", false},
		{"meeting.mp4", false},
		{"meeting.txt", false},
		{"meeting", false},
		{"meeting.mp3.exe", false},
	}

	for _, tc := range cases {
		if got := AllowedExtension(tc.filename); got != tc.allowed {
			t.Errorf("AllowedExtension(%q) = %v, want %v", tc.filename, got, tc.allowed)
		}
	}
}

func TestStageAudio_RejectsUnsupportedFormat(t *testing.T) {
	_, err := StageAudio("notes.txt", strings.NewReader("not audio"))
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrorCode_UNSUPPORTED_FORMAT {
		t.Errorf("expected UNSUPPORTED_FORMAT, got %s", appErr.Code)
	}
	if appErr.HTTPCode != 400 {
		t.Errorf("expected HTTP 400, got %d", appErr.HTTPCode)
	}
}

func TestStageAudio_WritesAndReleases(t *testing.T) {
	staged, err := StageAudio("clip.mp3", strings.NewReader("fake audio bytes"))
	if err != nil {
		t.Fatalf("staging failed: %v", err)
	}

	data, err := os.ReadFile(staged.Path)
	if err != nil {
		t.Fatalf("staged file unreadable: %v", err)
	}
	if string(data) != "fake audio bytes" {
		t.Errorf("unexpected staged content %q", data)
	}

	if err := staged.Release(); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if _, err := os.Stat(staged.Path); !os.IsNotExist(err) {
		t.Errorf("staged file still exists after release")
	}

	// Releasing twice is safe.
	if err := staged.Release(); err != nil {
		t.Errorf("second release returned error: %v", err)
	}
}
