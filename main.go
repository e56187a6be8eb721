package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/GrainArc/ScenePath/camerapath"
	"github.com/GrainArc/ScenePath/config"
	"github.com/GrainArc/ScenePath/models"
	"github.com/GrainArc/ScenePath/routers"
	"github.com/gin-gonic/gin"
)

func main() {
	generate := flag.Bool("generate", false, "只执行一次相机路径导出，不启动服务")
	output := flag.String("o", camerapath.DefaultOutput, "导出文件路径")
	flag.Parse()

	// 单次生成模式，输出目录需要事先存在
	if *generate {
		if err := camerapath.CreateCameraPathFBX(*output); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Printf("FBX file created successfully: %s\n", *output)
		return
	}

	models.InitDB()

	r := gin.Default()
	r.MaxMultipartMemory = 100 << 20
	r.LoadHTMLGlob("templates/*")
	routers.SceneRouters(r)

	log.Printf("ScenePath listening on %s", config.MainRouter)
	if err := r.Run(config.MainRouter); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
