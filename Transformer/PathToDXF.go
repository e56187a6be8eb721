package Transformer

import (
	"fmt"

	"github.com/GrainArc/ScenePath/camerapath"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"
)

// PathToDXF 把相机路径导出为DXF平面图（XZ投影），CAD侧核对用
func PathToDXF(points []camerapath.ControlPoint, outputFilename string) error {
	if len(points) == 0 {
		return fmt.Errorf("no control points to export")
	}
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0 // 调整比例因子，确保正确的比例

	layerName := "CameraPath"
	d.AddLayer(layerName, color.Red, dxf.DefaultLineType, true)
	d.ChangeLayer(layerName)

	// 将路径的平面投影写为一条多段线
	lwp := entity.NewLwPolyline(len(points))
	for j, pt := range points {
		lwp.Vertices[j] = []float64{pt.X, pt.Z}
	}
	d.AddEntity(lwp)

	return d.SaveAs(outputFilename)
}
