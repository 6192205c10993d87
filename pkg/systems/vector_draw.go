package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// 矢量填充用的白色像素源
// vector 包只有矩形/圆/线段，扇形和旋转矩形用 DrawTriangles/DrawImage 自己拼
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// 扇形细分步进（弧度），约 3.75° 一段
const sectorStep = math.Pi / 48

// fillSector 以三角形扇填充圆心角 [startAngle, endAngle) 的扇区
// 角度为屏幕坐标系弧度（X正向为 0，顺时针增大）
func fillSector(dst *ebiten.Image, cx, cy, radius, startAngle, endAngle float64, r, g, b, a float32) {
	span := endAngle - startAngle
	if span <= 0 || radius <= 0 {
		return
	}

	steps := int(math.Ceil(span / sectorStep))
	if steps < 1 {
		steps = 1
	}

	vs := make([]ebiten.Vertex, 0, steps+2)
	vs = append(vs, vertexAt(cx, cy, r, g, b, a))
	for i := 0; i <= steps; i++ {
		angle := startAngle + span*float64(i)/float64(steps)
		vs = append(vs, vertexAt(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle), r, g, b, a))
	}

	is := make([]uint16, 0, steps*3)
	for i := 0; i < steps; i++ {
		is = append(is, 0, uint16(i+1), uint16(i+2))
	}

	opts := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, opts)
}

// fillTriangle 填充单个三角形
func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float64, r, g, b, a float32) {
	vs := []ebiten.Vertex{
		vertexAt(x0, y0, r, g, b, a),
		vertexAt(x1, y1, r, g, b, a),
		vertexAt(x2, y2, r, g, b, a),
	}
	is := []uint16{0, 1, 2}

	opts := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, opts)
}

// fillRotatedRect 以 (cx, cy) 为中心绘制旋转矩形
// 颜色为直通（非预乘）分量，透明度在内部预乘
func fillRotatedRect(dst *ebiten.Image, cx, cy, width, height, angle float64, r, g, b, a float32) {
	if width <= 0 || height <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, height)
	op.GeoM.Translate(-width/2, -height/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.Scale(r*a, g*a, b*a, a)
	dst.DrawImage(whiteSubImage, op)
}

// vertexAt 构造一个取白色像素、按给定颜色调制的顶点
func vertexAt(x, y float64, r, g, b, a float32) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: r,
		ColorG: g,
		ColorB: b,
		ColorA: a,
	}
}
