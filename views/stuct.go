package views

import (
	"github.com/GrainArc/ScenePath/models"
)

type AssetListQuery struct {
	Format  string `form:"format"`
	AssetID string `form:"asset_id"`
}

type GenerateResponse struct {
	AssetID string              `json:"asset_id"`
	Assets  []models.SceneAsset `json:"assets"`
}

// ProgressResponse websocket推送的进度消息
type ProgressResponse struct {
	Type    string              `json:"type"` // "stage", "complete" 或 "error"
	Stage   string              `json:"stage,omitempty"`
	Message string              `json:"message,omitempty"`
	Assets  []models.SceneAsset `json:"assets,omitempty"`
}
