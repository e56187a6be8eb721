package fbx

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"
)

// Exporter 把Scene序列化为ASCII FBX文件
// Initialize成功后才允许Export，导出中途失败会删除残留文件
type Exporter struct {
	m           *Manager
	file        *os.File
	path        string
	initialized bool
}

func NewExporter(m *Manager) (*Exporter, error) {
	if err := m.alive(); err != nil {
		return nil, err
	}
	e := &Exporter{m: m}
	m.exporters = append(m.exporters, e)
	return e, nil
}

// Initialize 打开输出文件，目录不存在时直接失败，不做创建
func (e *Exporter) Initialize(path string) error {
	if e.initialized {
		return errors.New("fbx: exporter already initialized")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fbx: initialize exporter: %w", err)
	}
	e.file = f
	e.path = path
	e.initialized = true
	return nil
}

func (e *Exporter) Export(s *Scene) error {
	if !e.initialized {
		return errors.New("fbx: exporter not initialized")
	}
	if s == nil {
		return errors.New("fbx: nil scene")
	}
	if e.m != nil {
		if ios := e.m.IOSettings(); ios != nil && !ios.ASCII {
			e.discard()
			return errors.New("fbx: binary export not supported")
		}
	}
	w := bufio.NewWriter(e.file)
	if err := writeScene(w, s); err != nil {
		e.discard()
		return fmt.Errorf("fbx: export %s: %w", e.path, err)
	}
	if err := w.Flush(); err != nil {
		e.discard()
		return fmt.Errorf("fbx: export %s: %w", e.path, err)
	}
	return nil
}

// discard 关闭并删除写坏的文件
func (e *Exporter) discard() {
	if e.file != nil {
		e.file.Close()
		e.file = nil
		os.Remove(e.path)
	}
	e.initialized = false
}

// Destroy 释放文件句柄，可重复调用
func (e *Exporter) Destroy() {
	if e == nil || e.file == nil {
		return
	}
	e.file.Close()
	e.file = nil
	e.initialized = false
}

func writeScene(w *bufio.Writer, s *Scene) error {
	now := time.Now()
	fmt.Fprintf(w, "; FBX 7.3.0 project file\n")
	fmt.Fprintf(w, "; ----------------------------------------------------\n\n")
	fmt.Fprintf(w, "FBXHeaderExtension:  {\n")
	fmt.Fprintf(w, "\tFBXHeaderVersion: 1003\n")
	fmt.Fprintf(w, "\tFBXVersion: 7300\n")
	fmt.Fprintf(w, "\tCreationTimeStamp:  {\n")
	fmt.Fprintf(w, "\t\tVersion: 1000\n")
	fmt.Fprintf(w, "\t\tYear: %d\n\t\tMonth: %d\n\t\tDay: %d\n", now.Year(), int(now.Month()), now.Day())
	fmt.Fprintf(w, "\t}\n")
	fmt.Fprintf(w, "\tCreator: \"ScenePath FBX writer\"\n")
	fmt.Fprintf(w, "}\n\n")

	curves := collectCurves(s.root)

	fmt.Fprintf(w, "Definitions:  {\n")
	fmt.Fprintf(w, "\tVersion: 100\n")
	fmt.Fprintf(w, "\tCount: %d\n", len(curves)*2)
	fmt.Fprintf(w, "\tObjectType: \"Geometry\" {\n\t\tCount: %d\n\t}\n", len(curves))
	fmt.Fprintf(w, "\tObjectType: \"Model\" {\n\t\tCount: %d\n\t}\n", len(curves))
	fmt.Fprintf(w, "}\n\n")

	fmt.Fprintf(w, "Objects:  {\n")
	for i, c := range curves {
		if c.order <= 0 || c.dimension <= 0 {
			return fmt.Errorf("curve %q has no order/dimension set", c.name)
		}
		if len(c.points) == 0 {
			return fmt.Errorf("curve %q has no control points", c.name)
		}
		geomID := 1000001 + i
		fmt.Fprintf(w, "\tGeometry: %d, \"Geometry::%s\", \"NurbsCurve\" {\n", geomID, c.name)
		fmt.Fprintf(w, "\t\tGeometryVersion: 124\n")
		fmt.Fprintf(w, "\t\tType: \"NurbsCurve\"\n")
		fmt.Fprintf(w, "\t\tNurbsCurveVersion: 100\n")
		fmt.Fprintf(w, "\t\tOrder: %d\n", c.order)
		fmt.Fprintf(w, "\t\tDimension: %d\n", c.dimension)
		fmt.Fprintf(w, "\t\tStep: %d\n", c.step)
		fmt.Fprintf(w, "\t\tForm: \"Open\"\n")
		fmt.Fprintf(w, "\t\tRational: 0\n")
		fmt.Fprintf(w, "\t\tPoints: *%d {\n\t\t\ta: ", len(c.points)*4)
		for j, p := range c.points {
			if j > 0 {
				fmt.Fprintf(w, ",")
			}
			fmt.Fprintf(w, "%g,%g,%g,%g", p.X, p.Y, p.Z, p.W)
		}
		fmt.Fprintf(w, "\n\t\t}\n")
		fmt.Fprintf(w, "\t}\n")
		modelID := 2000001 + i
		fmt.Fprintf(w, "\tModel: %d, \"Model::%s\", \"Null\" {\n", modelID, c.name)
		fmt.Fprintf(w, "\t\tVersion: 232\n")
		fmt.Fprintf(w, "\t}\n")
	}
	fmt.Fprintf(w, "}\n\n")

	fmt.Fprintf(w, "Connections:  {\n")
	for i := range curves {
		geomID := 1000001 + i
		modelID := 2000001 + i
		fmt.Fprintf(w, "\tC: \"OO\",%d,0\n", modelID)
		fmt.Fprintf(w, "\tC: \"OO\",%d,%d\n", geomID, modelID)
	}
	fmt.Fprintf(w, "}\n")
	return nil
}

func collectCurves(n *Node) []*NurbsCurve {
	var out []*NurbsCurve
	if n.curve != nil {
		out = append(out, n.curve)
	}
	for _, child := range n.children {
		out = append(out, collectCurves(child)...)
	}
	return out
}
