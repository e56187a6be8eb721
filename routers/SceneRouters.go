package routers

import (
	"github.com/GrainArc/ScenePath/config"
	"github.com/GrainArc/ScenePath/views"
	"github.com/gin-gonic/gin"
)

func SceneRouters(r *gin.Engine) {
	SceneController := &views.SceneController{}
	r.GET("/", SceneController.Index)
	r.Static("/static", "./static")

	sceneRouter := r.Group("/scene")
	{
		sceneRouter.POST("/GeneratePath", SceneController.GeneratePath)
		sceneRouter.GET("/GenerateWS", SceneController.GenerateWS)
		sceneRouter.GET("/GetAssetList", SceneController.GetAssetList)
		sceneRouter.GET("/DownloadAsset", SceneController.DownloadAsset)
		sceneRouter.GET("/DownloadBundle", SceneController.DownloadBundle)
		sceneRouter.GET("/GetTrack", SceneController.GetTrack)
		sceneRouter.POST("/UploadAssetPack", SceneController.UploadAssetPack)
		sceneRouter.GET("/ClearAssets", SceneController.ClearAssets)
		sceneRouter.Static("/Download", config.Download)
	}
}
