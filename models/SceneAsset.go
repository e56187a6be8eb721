package models

import (
	"time"
)

// SceneAsset 一次导出产物的记录
type SceneAsset struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	AssetID    string `gorm:"index" json:"asset_id"` // 同一次生成的各格式共用一个AssetID
	Format     string `json:"format"`                // fbx / dxf / gltf / geojson
	OutputPath string `json:"output_path"`
	PointCount int    `json:"point_count"`
	Status     string `json:"status"` // success / failed
	Message    string `json:"message"`
	CostMS     int64  `json:"cost_ms"`
	DeviceName string `json:"device_name"`
	CreatedAt  time.Time
}

// UploadRecord 查看器资源包上传记录
type UploadRecord struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FileName  string `json:"file_name"`
	UnpackDir string `json:"unpack_dir"`
	CreatedAt time.Time
}
