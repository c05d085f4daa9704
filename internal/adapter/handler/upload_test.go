package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/meetinsight-team/meeting-insight/errors"
	"github.com/meetinsight-team/meeting-insight/internal/domain/entities"
	pkgvalidator "github.com/meetinsight-team/meeting-insight/pkg/validator"
)

type stubPipeline struct {
	calls        int
	lastFilename string
	lastLanguage string
	result       *entities.PipelineResult
	err          error
}

func (s *stubPipeline) Process(ctx context.Context, filename string, audio io.Reader, languageCode string) (*entities.PipelineResult, error) {
	s.calls++
	s.lastFilename = filename
	s.lastLanguage = languageCode
	return s.result, s.err
}

func newUploadRequest(t *testing.T, filename string, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte("fake audio bytes")); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("failed to write field %s: %v", key, err)
		}
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func performUpload(pipeline *stubPipeline, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := NewUpload(pipeline, nil)
	h.Handle(c)
	return rec
}

func TestHandle_Success(t *testing.T) {
	pipeline := &stubPipeline{
		result: &entities.PipelineResult{
			Transcript: []entities.TranscriptSegment{
				{Speaker: "Speaker A", Text: "hello", Start: 0, End: 1.5, Context: []entities.ContextItem{}},
			},
			Insight: entities.DefaultInsight(),
		},
	}

	rec := performUpload(pipeline, newUploadRequest(t, "meeting.mp3", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if pipeline.lastFilename != "meeting.mp3" {
		t.Errorf("unexpected filename %q", pipeline.lastFilename)
	}

	var resp struct {
		Transcript []entities.TranscriptSegment `json:"transcript"`
		Insight    entities.Insight             `json:"insight"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Transcript) != 1 || resp.Transcript[0].Speaker != "Speaker A" {
		t.Errorf("unexpected transcript %+v", resp.Transcript)
	}
	if resp.Insight.Summary != "Transcription complete." {
		t.Errorf("unexpected insight %+v", resp.Insight)
	}
}

func TestHandle_LanguageFieldForwarded(t *testing.T) {
	pipeline := &stubPipeline{
		result: &entities.PipelineResult{Insight: entities.DefaultInsight()},
	}

	rec := performUpload(pipeline, newUploadRequest(t, "meeting.wav", map[string]string{"language": "vi"}))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if pipeline.lastLanguage != "vi" {
		t.Errorf("expected language %q, got %q", "vi", pipeline.lastLanguage)
	}
}

func TestHandle_UnsupportedFormat(t *testing.T) {
	pipeline := &stubPipeline{err: errors.ErrUnsupportedFormat()}

	rec := performUpload(pipeline, newUploadRequest(t, "notes.txt", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if body.Detail != "Invalid file type. Please upload an audio file." {
		t.Errorf("unexpected detail %q", body.Detail)
	}
}

func TestHandle_TranscriptionFailure(t *testing.T) {
	pipeline := &stubPipeline{err: errors.ErrTranscriptionFailed("provider rejected audio", nil)}

	rec := performUpload(pipeline, newUploadRequest(t, "meeting.mp3", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if body.Detail != "Transcription failed: provider rejected audio" {
		t.Errorf("unexpected detail %q", body.Detail)
	}
}

func TestHandle_MissingFile(t *testing.T) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	w.WriteField("language", "en")
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	pipeline := &stubPipeline{}
	rec := performUpload(pipeline, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if pipeline.calls != 0 {
		t.Errorf("pipeline called %d times without a file, want 0", pipeline.calls)
	}
}

func TestHandle_InvalidLanguageRejected(t *testing.T) {
	pipeline := &stubPipeline{}

	rec := performUpload(pipeline, newUploadRequest(t, "meeting.mp3", map[string]string{"language": "not a language tag"}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if pipeline.calls != 0 {
		t.Errorf("pipeline called %d times with invalid language, want 0", pipeline.calls)
	}
}
