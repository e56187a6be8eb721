package Transformer

import (
	"fmt"

	"github.com/GrainArc/ScenePath/camerapath"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// PathToGltf 把相机路径导出为glTF 2.0，查看器页面直接加载这个文件
// 曲线以LineStrip图元写入，控制点顺序即绘制顺序
func PathToGltf(points []camerapath.ControlPoint, outputFilename string) error {
	if len(points) == 0 {
		return fmt.Errorf("no control points to export")
	}

	positions := make([][3]float32, 0, len(points))
	for _, p := range points {
		positions = append(positions, [3]float32{float32(p.X), float32(p.Y), float32(p.Z)})
	}

	doc := gltf.NewDocument()
	doc.Meshes = []*gltf.Mesh{{
		Name: "CameraPath",
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]uint32{
				gltf.POSITION: modeler.WritePosition(doc, positions),
			},
			Mode: gltf.PrimitiveLineStrip,
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: "CameraPath", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return gltf.SaveBinary(doc, outputFilename)
}
