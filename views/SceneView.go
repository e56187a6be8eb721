package views

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/GrainArc/ScenePath/Transformer"
	"github.com/GrainArc/ScenePath/camerapath"
	"github.com/GrainArc/ScenePath/config"
	"github.com/GrainArc/ScenePath/methods"
	"github.com/GrainArc/ScenePath/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SceneController struct {
}

// Index 渲染查看器主页，固定模板，无上下文数据
func (sc *SceneController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// RunAllExports 执行一轮全格式导出，report回调用于推送阶段进度
func RunAllExports(assetID string, outDir string, report func(stage string)) []models.SceneAsset {
	points := camerapath.GeneratePath()

	exports := []struct {
		format string
		file   string
		run    func(path string) error
	}{
		{"fbx", "camera_path.fbx", camerapath.CreateCameraPathFBX},
		{"dxf", "camera_path.dxf", func(path string) error {
			return Transformer.PathToDXF(points, path)
		}},
		{"gltf", "camera_path.glb", func(path string) error {
			return Transformer.PathToGltf(points, path)
		}},
		{"geojson", "camera_path.geojson", func(path string) error {
			return Transformer.WritePathGeojson(points, path)
		}},
	}

	var results []models.SceneAsset
	for _, ex := range exports {
		if report != nil {
			report(ex.format)
		}
		outPath := filepath.Join(outDir, ex.file)
		start := time.Now()
		err := ex.run(outPath)

		asset := models.SceneAsset{
			AssetID:    assetID,
			Format:     ex.format,
			OutputPath: outPath,
			PointCount: camerapath.ControlPointCount,
			Status:     "success",
			CostMS:     time.Since(start).Milliseconds(),
			DeviceName: config.DeviceName,
		}
		if err != nil {
			log.Printf("导出%s失败: %v", ex.format, err)
			asset.Status = "failed"
			asset.Message = err.Error()
		}
		if models.DB != nil {
			if err := models.DB.Create(&asset).Error; err != nil {
				log.Printf("写入导出记录失败: %v", err)
			}
		}
		results = append(results, asset)
	}
	return results
}

// GeneratePath 触发一轮重新生成，四种格式全部落盘
func (sc *SceneController) GeneratePath(c *gin.Context) {
	outDir := config.ModelDir
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("failed to create output dir: %v", err)})
		return
	}

	assetID := uuid.New().String()
	results := RunAllExports(assetID, outDir, nil)

	c.JSON(http.StatusOK, GenerateResponse{AssetID: assetID, Assets: results})
}

// GetAssetList 按条件查询导出记录
func (sc *SceneController) GetAssetList(c *gin.Context) {
	var query AssetListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	DB := models.DB
	tx := DB.Model(&models.SceneAsset{})
	if query.Format != "" {
		tx = tx.Where("format = ?", query.Format)
	}
	if query.AssetID != "" {
		tx = tx.Where("asset_id = ?", query.AssetID)
	}

	var assets []models.SceneAsset
	if err := tx.Order("created_at desc").Limit(100).Find(&assets).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assets)
}

// DownloadAsset 按记录下载单个导出文件
func (sc *SceneController) DownloadAsset(c *gin.Context) {
	assetID := c.Query("asset_id")
	format := c.Query("format")
	if assetID == "" || format == "" {
		c.JSON(400, gin.H{"error": "asset_id and format required"})
		return
	}

	var asset models.SceneAsset
	err := models.DB.Where("asset_id = ? AND format = ? AND status = ?", assetID, format, "success").First(&asset).Error
	if err != nil {
		c.JSON(404, gin.H{"error": "asset not found"})
		return
	}
	c.File(asset.OutputPath)
}

// DownloadBundle 把模型目录整体打包下载，目录为空时报404
func (sc *SceneController) DownloadBundle(c *gin.Context) {
	files, err := methods.GetAllFiles(config.ModelDir)
	if err != nil || len(files) == 0 {
		c.JSON(404, gin.H{"error": "no exported assets"})
		return
	}
	data, err := methods.ZipFileOut(config.ModelDir)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=camera_path_bundle.zip")
	c.Data(http.StatusOK, "application/zip", data)
}

// GetTrack 返回路径的地面投影GeoJSON，前端框选视角用
func (sc *SceneController) GetTrack(c *gin.Context) {
	fc := Transformer.PathToGeojson(camerapath.GeneratePath())
	c.JSON(http.StatusOK, fc)
}

// UploadAssetPack 上传查看器资源包并解压
func (sc *SceneController) UploadAssetPack(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := os.MkdirAll(config.Download, os.ModePerm); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	// 丢掉客户端文件名里的路径部分，防止写出下载目录
	fileName := filepath.Base(file.Filename)
	dst := filepath.Join(config.Download, fileName)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	if err := methods.Unzip(dst); err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("unpack failed: %v", err)})
		return
	}

	ext := filepath.Ext(dst)
	record := models.UploadRecord{
		FileName:  fileName,
		UnpackDir: dst[0 : len(dst)-len(ext)],
	}
	if err := models.DB.Create(&record).Error; err != nil {
		log.Printf("写入上传记录失败: %v", err)
	}
	c.JSON(http.StatusOK, record)
}

// ClearAssets 清空模型目录和导出记录
func (sc *SceneController) ClearAssets(c *gin.Context) {
	if err := methods.DeleteFiles(config.ModelDir); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if err := models.DB.Where("1 = 1").Delete(&models.SceneAsset{}).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cleared"})
}
