package fbx

import (
	"fmt"
)

type Vector4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

// Scene 一次导出的内存文档，节点树从根节点挂起
type Scene struct {
	name string
	root *Node
}

type Node struct {
	name     string
	curve    *NurbsCurve
	children []*Node
}

// NurbsCurve 单条曲线实体，控制点顺序决定曲线连续性
type NurbsCurve struct {
	name      string
	order     int
	dimension int
	step      int
	points    []Vector4
	node      *Node
}

func NewScene(m *Manager, name string) (*Scene, error) {
	if err := m.alive(); err != nil {
		return nil, err
	}
	s := &Scene{
		name: name,
		root: &Node{name: "RootNode"},
	}
	return s, nil
}

func (s *Scene) Name() string {
	return s.name
}

func (s *Scene) RootNode() *Node {
	return s.root
}

func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

func (n *Node) Name() string {
	return n.name
}

func NewNurbsCurve(s *Scene, name string) (*NurbsCurve, error) {
	if s == nil {
		return nil, fmt.Errorf("fbx: nil scene")
	}
	c := &NurbsCurve{name: name}
	c.node = &Node{name: name, curve: c}
	return c, nil
}

func (c *NurbsCurve) SetOrder(order int) {
	c.order = order
}

func (c *NurbsCurve) SetDimension(dim int) {
	c.dimension = dim
}

func (c *NurbsCurve) SetStep(step int) {
	c.step = step
}

func (c *NurbsCurve) SetControlPointCount(n int) {
	c.points = make([]Vector4, n)
}

func (c *NurbsCurve) SetControlPointAt(v Vector4, i int) error {
	if i < 0 || i >= len(c.points) {
		return fmt.Errorf("fbx: control point index %d out of range [0,%d)", i, len(c.points))
	}
	c.points[i] = v
	return nil
}

func (c *NurbsCurve) ControlPointCount() int {
	return len(c.points)
}

func (c *NurbsCurve) Node() *Node {
	return c.node
}
