package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// 测试用等宽位图字体，不依赖磁盘上的字体文件
func testFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	face := testFace()

	tests := []struct {
		name      string
		input     string
		maxWidth  float64
		expectMin int // 期望最少的行数
	}{
		{
			name:      "短文本不换行",
			input:     "abc",
			maxWidth:  1000,
			expectMin: 1,
		},
		{
			name:      "长文本自动换行",
			input:     "the quick brown fox jumps over the lazy dog",
			maxWidth:  100,
			expectMin: 2,
		},
		{
			name:      "空文本",
			input:     "",
			maxWidth:  100,
			expectMin: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, face, tt.maxWidth)
			if len(lines) < tt.expectMin {
				t.Errorf("WrapText(%q) = %d lines, want >= %d", tt.input, len(lines), tt.expectMin)
			}
		})
	}
}

// TestWrapTextLinesFit 换行后每行都不超宽
func TestWrapTextLinesFit(t *testing.T) {
	face := testFace()
	maxWidth := 80.0

	lines := WrapText("aaaa bbbb cccc dddd eeee ffff", face, maxWidth)
	for i, line := range lines {
		if w := MeasureTextWidth(line, face); w > maxWidth {
			t.Errorf("line %d %q is %.1fpx wide, exceeds %.1f", i, line, w, maxWidth)
		}
	}
}

// TestWrapTextNilFace 字体为空时原样返回
func TestWrapTextNilFace(t *testing.T) {
	lines := WrapText("hello", nil, 100)
	if len(lines) != 1 || lines[0] != "hello" {
		t.Errorf("WrapText with nil face = %v, want [hello]", lines)
	}
}

// TestMeasureTextWidth 宽度测量单调：更长的文本更宽
func TestMeasureTextWidth(t *testing.T) {
	face := testFace()

	short := MeasureTextWidth("ab", face)
	long := MeasureTextWidth("abcdef", face)

	if short <= 0 {
		t.Errorf("MeasureTextWidth(ab) = %.1f, want > 0", short)
	}
	if long <= short {
		t.Errorf("longer text should measure wider: %.1f <= %.1f", long, short)
	}
	if MeasureTextWidth("", face) != 0 {
		t.Error("empty text should measure 0")
	}
}

// TestEllipsizeText 超宽截断并加省略号，不超宽时原样返回
func TestEllipsizeText(t *testing.T) {
	face := testFace()

	if got := EllipsizeText("ok", face, 1000); got != "ok" {
		t.Errorf("EllipsizeText(ok) = %q, want unchanged", got)
	}

	long := "aaaaaaaaaaaaaaaaaaaaaaaa"
	maxWidth := 60.0
	got := EllipsizeText(long, face, maxWidth)
	if got == long {
		t.Error("over-wide text should be truncated")
	}
	if w := MeasureTextWidth(got, face); w > maxWidth {
		t.Errorf("ellipsized text is %.1fpx wide, exceeds %.1f", w, maxWidth)
	}
}
