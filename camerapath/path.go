package camerapath

import (
	"math"
)

// 相机路径曲线的固定参数，与查看器端约定一致，不可配置
const (
	ControlPointCount = 10
	CurveOrder        = 3 // 三次曲线
	CurveDimension    = 3
	CurveStep         = 4 // 平滑度
)

const DefaultOutput = "static/models/camera_path.fbx"

type ControlPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// GeneratePath 生成固定的10个控制点，形成螺旋形飞行路径
// 横向扫过一个完整正弦周期，高度起伏一次，深度每步后退10个单位
func GeneratePath() []ControlPoint {
	points := make([]ControlPoint, ControlPointCount)
	for i := 0; i < ControlPointCount; i++ {
		t := float64(i) / float64(ControlPointCount-1) // 归一化到0-1
		points[i] = ControlPoint{
			X: math.Sin(t*math.Pi*2) * 5,
			Y: 2 + math.Sin(t*math.Pi)*1,
			Z: float64(-i) * 10,
		}
	}
	return points
}
