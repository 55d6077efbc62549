package handler_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codelens/codelens/internal/handler"
	"github.com/codelens/codelens/internal/models"
)

type stubService struct {
	resp *models.AnalyzeResponse
	err  error

	gotFileName string
	gotSource   string
}

func (s *stubService) Analyze(_ context.Context, fileName, source string) (*models.AnalyzeResponse, error) {
	s.gotFileName = fileName
	s.gotSource = source
	return s.resp, s.err
}

func uploadRequest(t *testing.T, fileName string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAnalyze_Disabled(t *testing.T) {
	h := handler.NewAnalyzeHandler(nil, 1<<20)

	rec := httptest.NewRecorder()
	h.Analyze(rec, uploadRequest(t, "app.py", []byte("x = 1")))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "OPENAI_API_KEY")
}

func TestAnalyze_Success(t *testing.T) {
	svc := &stubService{resp: &models.AnalyzeResponse{
		FileName: "app.py",
		Language: "python",
		Segments: []models.SegmentView{
			{Kind: "prose", Text: "Intro", HTML: "<p>Intro</p>"},
			{Kind: "diagram", Text: "A-->B"},
			{Kind: "prose", Text: ""},
		},
		ExportFileName: "app_analysis.html",
		ExportHTML:     "<!DOCTYPE html>...",
	}}
	h := handler.NewAnalyzeHandler(svc, 1<<20)

	rec := httptest.NewRecorder()
	h.Analyze(rec, uploadRequest(t, "app.py", []byte("x = 1\n")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "app.py", svc.gotFileName)
	assert.Equal(t, "x = 1\n", svc.gotSource)

	var resp models.AnalyzeResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.DiagramCount())
	assert.Equal(t, "app_analysis.html", resp.ExportFileName)
}

func TestAnalyze_InvalidUTF8(t *testing.T) {
	svc := &stubService{}
	h := handler.NewAnalyzeHandler(svc, 1<<20)

	rec := httptest.NewRecorder()
	h.Analyze(rec, uploadRequest(t, "blob.py", []byte{0xff, 0xfe, 0xfd}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not valid UTF-8")
	assert.Empty(t, svc.gotFileName, "service must not be called on decode failure")
}

func TestAnalyze_MissingFileField(t *testing.T) {
	h := handler.NewAnalyzeHandler(&stubService{}, 1<<20)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("other", "value"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_UploadTooLarge(t *testing.T) {
	svc := &stubService{}
	h := handler.NewAnalyzeHandler(svc, 64)

	big := bytes.Repeat([]byte("a"), 1024)
	rec := httptest.NewRecorder()
	h.Analyze(rec, uploadRequest(t, "big.py", big))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.gotFileName, "service must not be called for oversized uploads")
}

func TestAnalyze_ServiceError(t *testing.T) {
	svc := &stubService{err: errors.New("model request failed: boom")}
	h := handler.NewAnalyzeHandler(svc, 1<<20)

	rec := httptest.NewRecorder()
	h.Analyze(rec, uploadRequest(t, "app.py", []byte("x = 1")))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "boom")
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	handler.Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
