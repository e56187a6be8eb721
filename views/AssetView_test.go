package views

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GrainArc/ScenePath/config"
	"github.com/GrainArc/ScenePath/models"
	"github.com/gin-gonic/gin"
)

func generateOnce(t *testing.T, r *gin.Engine) GenerateResponse {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/scene/GeneratePath", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("generate status = %d, body %s", w.Code, w.Body.String())
	}
	var resp GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding generate response: %v", err)
	}
	return resp
}

func TestDownloadAsset(t *testing.T) {
	r := setupTest(t)
	resp := generateOnce(t, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/scene/DownloadAsset?asset_id="+resp.AssetID+"&format=fbx", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("download status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "NurbsCurve") {
		t.Error("downloaded fbx does not contain curve entity")
	}
}

func TestDownloadAssetMissing(t *testing.T) {
	r := setupTest(t)

	tests := []struct {
		name string
		url  string
		want int
	}{
		{"unknown record", "/scene/DownloadAsset?asset_id=nope&format=fbx", 404},
		{"missing params", "/scene/DownloadAsset", 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestDownloadBundle(t *testing.T) {
	r := setupTest(t)

	// 还没有导出产物时必须404
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/scene/DownloadBundle", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("empty bundle status = %d, want 404", w.Code)
	}

	generateOnce(t, r)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/scene/DownloadBundle", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("bundle status = %d", w.Code)
	}

	data := w.Body.Bytes()
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("bundle is not a valid zip: %v", err)
	}
	if len(reader.File) != 4 {
		t.Errorf("bundle has %d entries, want 4", len(reader.File))
	}
}

func makeUploadRequest(t *testing.T, fileName string) *http.Request {
	t.Helper()

	var pack bytes.Buffer
	zw := zip.NewWriter(&pack)
	fw, err := zw.Create("texture.txt")
	if err != nil {
		t.Fatalf("building zip: %v", err)
	}
	fw.Write([]byte("pack data"))
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("building form: %v", err)
	}
	part.Write(pack.Bytes())
	if err := mw.Close(); err != nil {
		t.Fatalf("closing form: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/scene/UploadAssetPack", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadAssetPack(t *testing.T) {
	r := setupTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, makeUploadRequest(t, "pack.zip"))
	if w.Code != http.StatusOK {
		t.Fatalf("upload status = %d, body %s", w.Code, w.Body.String())
	}

	var record models.UploadRecord
	if err := json.Unmarshal(w.Body.Bytes(), &record); err != nil {
		t.Fatalf("decoding upload response: %v", err)
	}
	if record.FileName != "pack.zip" {
		t.Errorf("record file name = %q, want pack.zip", record.FileName)
	}

	extracted, err := os.ReadFile(filepath.Join(config.Download, "pack", "texture.txt"))
	if err != nil {
		t.Fatalf("reading unpacked file: %v", err)
	}
	if string(extracted) != "pack data" {
		t.Errorf("unpacked content = %q, want %q", extracted, "pack data")
	}

	var count int64
	models.DB.Model(&models.UploadRecord{}).Count(&count)
	if count != 1 {
		t.Errorf("db has %d upload records, want 1", count)
	}
}

func TestUploadAssetPackTraversalName(t *testing.T) {
	r := setupTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, makeUploadRequest(t, "../escape.zip"))
	if w.Code != http.StatusOK {
		t.Fatalf("upload status = %d, body %s", w.Code, w.Body.String())
	}

	// 路径部分必须被丢弃，文件只能落在下载目录内
	if _, err := os.Stat(filepath.Join(config.Download, "escape.zip")); err != nil {
		t.Errorf("sanitized upload missing from download dir: %v", err)
	}
	outside := filepath.Join(filepath.Dir(config.Download), "escape.zip")
	if _, err := os.Stat(outside); !os.IsNotExist(err) {
		t.Errorf("upload escaped download dir to %s", outside)
	}
}
