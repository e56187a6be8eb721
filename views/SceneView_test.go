package views

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/GrainArc/ScenePath/config"
	"github.com/GrainArc/ScenePath/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	if err := db.AutoMigrate(&models.SceneAsset{}, &models.UploadRecord{}); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}
	models.DB = db

	config.ModelDir = filepath.Join(t.TempDir(), "models")
	config.Download = filepath.Join(t.TempDir(), "download")

	r := gin.New()
	r.LoadHTMLGlob("../templates/*")
	sc := &SceneController{}
	r.GET("/", sc.Index)
	r.POST("/scene/GeneratePath", sc.GeneratePath)
	r.GET("/scene/GenerateWS", sc.GenerateWS)
	r.GET("/scene/GetAssetList", sc.GetAssetList)
	r.GET("/scene/DownloadAsset", sc.DownloadAsset)
	r.GET("/scene/DownloadBundle", sc.DownloadBundle)
	r.GET("/scene/GetTrack", sc.GetTrack)
	r.POST("/scene/UploadAssetPack", sc.UploadAssetPack)
	return r
}

func TestIndexStableAcrossCalls(t *testing.T) {
	r := setupTest(t)

	var bodies []string
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("GET / status = %d, want 200", w.Code)
		}
		bodies = append(bodies, w.Body.String())
	}
	if bodies[0] != bodies[1] {
		t.Error("index page body varies across calls")
	}
	if bodies[0] == "" {
		t.Error("index page body is empty")
	}
}

func TestGeneratePathEndpoint(t *testing.T) {
	r := setupTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/scene/GeneratePath", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /scene/GeneratePath status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var resp GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.AssetID == "" {
		t.Error("response has empty asset id")
	}
	if len(resp.Assets) != 4 {
		t.Fatalf("generated %d assets, want 4", len(resp.Assets))
	}
	for _, asset := range resp.Assets {
		if asset.Status != "success" {
			t.Errorf("asset %s status = %s (%s)", asset.Format, asset.Status, asset.Message)
			continue
		}
		if _, err := os.Stat(asset.OutputPath); err != nil {
			t.Errorf("asset %s output missing: %v", asset.Format, err)
		}
	}

	var count int64
	models.DB.Model(&models.SceneAsset{}).Count(&count)
	if count != 4 {
		t.Errorf("db has %d asset records, want 4", count)
	}
}

func TestGetAssetListFilter(t *testing.T) {
	r := setupTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/scene/GeneratePath", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("generate status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/scene/GetAssetList?format=fbx", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}

	var assets []models.SceneAsset
	if err := json.Unmarshal(w.Body.Bytes(), &assets); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(assets) != 1 {
		t.Fatalf("filtered list has %d rows, want 1", len(assets))
	}
	if assets[0].Format != "fbx" {
		t.Errorf("row format = %s, want fbx", assets[0].Format)
	}
}

func TestGetTrack(t *testing.T) {
	r := setupTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/scene/GetTrack", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("track status = %d", w.Code)
	}

	var fc map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &fc); err != nil {
		t.Fatalf("decoding track: %v", err)
	}
	if fc["type"] != "FeatureCollection" {
		t.Errorf("track type = %v, want FeatureCollection", fc["type"])
	}
	features, ok := fc["features"].([]interface{})
	if !ok || len(features) != 1 {
		t.Errorf("track features = %v, want 1 feature", fc["features"])
	}
}
