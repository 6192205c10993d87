//go:build !mobile

package utils

import "testing"

// TestIsMobileDesktop 桌面端编译时 IsMobile() 返回 false
func TestIsMobileDesktop(t *testing.T) {
	t.Setenv("LUCKYPICK_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

// TestIsMobileEmulate 设置模拟环境变量后返回 true
func TestIsMobileEmulate(t *testing.T) {
	t.Setenv("LUCKYPICK_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should return true when emulation is enabled")
	}
}
