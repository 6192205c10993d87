package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - face: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 按字符逐个累积，超宽处断行
//   - 如果单个字符就超过最大宽度，强制独占一行
//   - 支持中文和英文混合文本
func WrapText(textStr string, face text.Face, maxWidth float64) []string {
	if textStr == "" || face == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	// 如果文本宽度小于最大宽度，直接返回
	if MeasureTextWidth(textStr, face) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	// 按字符遍历（支持多字节字符）
	for len(textStr) > 0 {
		r, size := utf8.DecodeRuneInString(textStr)
		char := string(r)

		testLine := currentLine + char
		testWidth := MeasureTextWidth(testLine, face)

		if testWidth > maxWidth {
			// 当前行为空说明单个字符就超宽，强制添加
			if currentLine == "" {
				lines = append(lines, char)
				textStr = textStr[size:]
				continue
			}

			lines = append(lines, strings.TrimSpace(currentLine))
			currentLine = char
		} else {
			currentLine = testLine
		}

		textStr = textStr[size:]
	}

	if currentLine != "" {
		lines = append(lines, strings.TrimSpace(currentLine))
	}

	if len(lines) == 0 {
		lines = []string{textStr}
	}

	return lines
}

// MeasureTextWidth 测量文本宽度（像素）
func MeasureTextWidth(textStr string, face text.Face) float64 {
	if textStr == "" || face == nil {
		return 0
	}

	width, _ := text.Measure(textStr, face, 0)
	return width
}

// EllipsizeText 文本超宽时截断并追加省略号
// 宽度足够时原样返回
func EllipsizeText(textStr string, face text.Face, maxWidth float64) string {
	if MeasureTextWidth(textStr, face) <= maxWidth {
		return textStr
	}

	const ellipsis = "…"
	runes := []rune(textStr)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + ellipsis
		if MeasureTextWidth(candidate, face) <= maxWidth {
			return candidate
		}
	}
	return ellipsis
}
