package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/gonewx/luckypick/pkg/config"
)

// TestAddOption 测试选项添加规则
func TestAddOption(t *testing.T) {
	tests := []struct {
		name    string
		setup   []string
		input   string
		wantErr error
	}{
		{"正常添加", nil, "披萨", nil},
		{"去除首尾空白", nil, "  Tacos  ", nil},
		{"空白拒绝", nil, "   ", ErrEmptyOption},
		{"空串拒绝", nil, "", ErrEmptyOption},
		{"重复拒绝", []string{"Pizza"}, "Pizza", ErrDuplicateOption},
		{"大小写不敏感重复", []string{"Pizza"}, "pizza", ErrDuplicateOption},
		{"空白包裹的重复", []string{"Pizza"}, " PIZZA ", ErrDuplicateOption},
		{"超长拒绝", nil, strings.Repeat("字", config.MaxOptionLength+1), ErrOptionTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState()
			for _, opt := range tt.setup {
				if err := gs.AddOption(opt); err != nil {
					t.Fatalf("setup 失败: %v", err)
				}
			}

			err := gs.AddOption(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddOption(%q) = %v, 期望 %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// TestAddOptionFull 测试数量上限
func TestAddOptionFull(t *testing.T) {
	gs := NewGameState()
	for i := 0; i < config.MaxOptions; i++ {
		if err := gs.AddOption(string(rune('A' + i))); err != nil {
			t.Fatalf("第 %d 个选项添加失败: %v", i, err)
		}
	}

	if gs.CanAdd() {
		t.Error("满员后 CanAdd 应为 false")
	}
	if err := gs.AddOption("overflow"); !errors.Is(err, ErrTooManyOptions) {
		t.Errorf("满员添加 = %v, 期望 ErrTooManyOptions", err)
	}
	if gs.Count() != config.MaxOptions {
		t.Errorf("Count = %d, 期望 %d", gs.Count(), config.MaxOptions)
	}
}

// TestRemoveOption 测试选项移除
func TestRemoveOption(t *testing.T) {
	gs := NewGameState()
	for _, opt := range []string{"A", "B", "C"} {
		if err := gs.AddOption(opt); err != nil {
			t.Fatal(err)
		}
	}

	if !gs.RemoveOption(1) {
		t.Fatal("合法下标移除应成功")
	}

	// 剩余选项保持插入顺序
	want := []string{"A", "C"}
	got := gs.Options()
	if len(got) != len(want) {
		t.Fatalf("移除后剩 %d 个, 期望 %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("选项[%d] = %q, 期望 %q", i, got[i], want[i])
		}
	}

	// 越界移除
	if gs.RemoveOption(-1) || gs.RemoveOption(5) {
		t.Error("越界下标移除应失败")
	}
}

// TestOptionOrder 测试插入顺序保持
func TestOptionOrder(t *testing.T) {
	gs := NewGameState()
	input := []string{"火锅", "烧烤", "寿司", "沙拉"}
	for _, opt := range input {
		if err := gs.AddOption(opt); err != nil {
			t.Fatal(err)
		}
	}

	got := gs.Options()
	for i, want := range input {
		if got[i] != want {
			t.Errorf("选项[%d] = %q, 期望 %q", i, got[i], want)
		}
	}
}

// TestCanDecide 测试开始抽取的条件
func TestCanDecide(t *testing.T) {
	gs := NewGameState()

	if gs.CanDecide() {
		t.Error("空列表不应允许抽取")
	}

	gs.AddOption("A")
	if gs.CanDecide() {
		t.Error("1 个选项不应允许抽取")
	}

	gs.AddOption("B")
	if !gs.CanDecide() {
		t.Error("2 个选项应允许抽取")
	}
}

// TestLocking 测试抽取期间的编辑锁
func TestLocking(t *testing.T) {
	gs := NewGameState()
	gs.AddOption("A")
	gs.AddOption("B")

	gs.Lock()

	if !gs.IsLocked() {
		t.Fatal("Lock 后 IsLocked 应为 true")
	}
	if err := gs.AddOption("C"); !errors.Is(err, ErrOptionsLocked) {
		t.Errorf("锁定期添加 = %v, 期望 ErrOptionsLocked", err)
	}
	if gs.RemoveOption(0) {
		t.Error("锁定期移除应失败")
	}
	if gs.CanAdd() || gs.CanDecide() {
		t.Error("锁定期 CanAdd/CanDecide 应为 false")
	}

	gs.Unlock()
	if err := gs.AddOption("C"); err != nil {
		t.Errorf("解锁后添加失败: %v", err)
	}
}

// TestClear 测试清空
func TestClear(t *testing.T) {
	gs := NewGameState()
	gs.AddOption("A")
	gs.AddOption("B")

	gs.Clear()
	if gs.Count() != 0 {
		t.Errorf("Clear 后 Count = %d, 期望 0", gs.Count())
	}

	// 清空后可重新添加同名选项
	if err := gs.AddOption("A"); err != nil {
		t.Errorf("清空后重新添加失败: %v", err)
	}
}

// TestOnChange 测试变化回调
func TestOnChange(t *testing.T) {
	gs := NewGameState()
	changes := 0
	gs.SetOnChange(func() { changes++ })

	gs.AddOption("A")  // +1
	gs.AddOption("")   // 失败，不触发
	gs.AddOption("A")  // 重复，不触发
	gs.AddOption("B")  // +1
	gs.RemoveOption(0) // +1
	gs.RemoveOption(9) // 越界，不触发
	gs.Clear()         // +1
	gs.Clear()         // 已空，不触发

	if changes != 4 {
		t.Errorf("onChange 触发 %d 次, 期望 4", changes)
	}
}

// TestOptionsCopyIsolation 测试 Options 返回副本
func TestOptionsCopyIsolation(t *testing.T) {
	gs := NewGameState()
	gs.AddOption("A")
	gs.AddOption("B")

	snapshot := gs.Options()
	snapshot[0] = "mutated"

	if got, _ := gs.Option(0); got != "A" {
		t.Errorf("外部修改副本影响了内部状态: %q", got)
	}
}
