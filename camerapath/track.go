package camerapath

import (
	"github.com/paulmach/orb"
)

// GroundTrack 取路径在XZ平面上的投影，查看器用它做俯视框选
func GroundTrack(points []ControlPoint) orb.LineString {
	line := make(orb.LineString, 0, len(points))
	for _, p := range points {
		line = append(line, orb.Point{p.X, p.Z})
	}
	return line
}

// PathExtent 计算投影的包围范围，用于前端初始视角定位
func PathExtent(points []ControlPoint) orb.Bound {
	return GroundTrack(points).Bound()
}
