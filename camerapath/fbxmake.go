package camerapath

import (
	"fmt"

	"github.com/GrainArc/ScenePath/fbx"
)

// CreateCameraPathFBX 生成相机路径曲线并导出为FBX场景文件
// 流程固定：管理器→场景→曲线→挂根节点→导出器→导出，任一步失败即终止
// 所有句柄走defer释放，失败路径同样生效
func CreateCameraPathFBX(outputFile string) error {
	sdkManager, err := fbx.NewManager()
	if err != nil {
		return fmt.Errorf("unable to create FBX manager: %w", err)
	}
	defer sdkManager.Destroy()

	ios := fbx.NewIOSettings(sdkManager)
	sdkManager.SetIOSettings(ios)

	scene, err := fbx.NewScene(sdkManager, "Camera Path Scene")
	if err != nil {
		return fmt.Errorf("unable to create scene: %w", err)
	}

	path, err := fbx.NewNurbsCurve(scene, "CameraPath")
	if err != nil {
		return fmt.Errorf("unable to create curve: %w", err)
	}
	path.SetOrder(CurveOrder)
	path.SetDimension(CurveDimension)
	path.SetControlPointCount(ControlPointCount)
	path.SetStep(CurveStep)

	for i, p := range GeneratePath() {
		if err := path.SetControlPointAt(fbx.Vector4{X: p.X, Y: p.Y, Z: p.Z, W: 1}, i); err != nil {
			return err
		}
	}

	scene.RootNode().AddChild(path.Node())

	exporter, err := fbx.NewExporter(sdkManager)
	if err != nil {
		return fmt.Errorf("unable to create exporter: %w", err)
	}
	defer exporter.Destroy()

	if err := exporter.Initialize(outputFile); err != nil {
		return fmt.Errorf("unable to initialize exporter: %w", err)
	}

	// 原实现不检查导出结果，这里必须检查，写坏的文件会被清掉
	if err := exporter.Export(scene); err != nil {
		return err
	}
	return nil
}
