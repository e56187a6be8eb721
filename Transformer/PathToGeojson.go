package Transformer

import (
	"encoding/json"
	"os"

	"github.com/GrainArc/ScenePath/camerapath"
	"github.com/paulmach/orb/geojson"
)

// PathToGeojson 把相机路径的地面投影转成FeatureCollection
// 属性里带上高度序列和包围范围，前端做视角框选用
func PathToGeojson(points []camerapath.ControlPoint) *geojson.FeatureCollection {
	featureCollection := geojson.NewFeatureCollection()

	line := camerapath.GroundTrack(points)
	feature := geojson.NewFeature(line)
	feature.Properties["name"] = "CameraPath"

	heights := make([]float64, 0, len(points))
	for _, p := range points {
		heights = append(heights, p.Y)
	}
	feature.Properties["heights"] = heights

	bound := camerapath.PathExtent(points)
	feature.Properties["extent"] = []float64{bound.Min[0], bound.Min[1], bound.Max[0], bound.Max[1]}

	featureCollection.Append(feature)
	return featureCollection
}

func WritePathGeojson(points []camerapath.ControlPoint, outputFilename string) error {
	fc := PathToGeojson(points)
	data, err := json.Marshal(fc)
	if err != nil {
		return err
	}
	return os.WriteFile(outputFilename, data, 0644)
}
