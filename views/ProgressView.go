package views

import (
	"log"
	"net/http"
	"os"

	"github.com/GrainArc/ScenePath/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // 生产环境需要严格检查
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// GenerateWS 升级到websocket后执行导出，逐阶段推送进度
func (sc *SceneController) GenerateWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade to websocket: %v", err)
		return
	}
	defer conn.Close()

	outDir := config.ModelDir
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		conn.WriteJSON(ProgressResponse{Type: "error", Message: err.Error()})
		return
	}

	assetID := uuid.New().String()
	results := RunAllExports(assetID, outDir, func(stage string) {
		msg := ProgressResponse{Type: "stage", Stage: stage}
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("Failed to send progress: %v", err)
		}
	})

	complete := ProgressResponse{
		Type:    "complete",
		Message: assetID,
		Assets:  results,
	}
	if err := conn.WriteJSON(complete); err != nil {
		log.Printf("Failed to send complete response: %v", err)
	}
}
