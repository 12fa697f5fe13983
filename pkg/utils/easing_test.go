package utils

import (
	"math"
	"testing"
)

const epsilon = 1e-9

// TestEasingEndpoints 测试所有缓动函数在端点处的值：f(0)=0, f(1)=1
func TestEasingEndpoints(t *testing.T) {
	easings := map[string]func(float64) float64{
		"EaseLinear":     EaseLinear,
		"EaseOutCubic":   EaseOutCubic,
		"EaseInOutCubic": EaseInOutCubic,
		"EaseOutQuad":    EaseOutQuad,
	}

	for name, fn := range easings {
		if got := fn(0); math.Abs(got) > epsilon {
			t.Errorf("%s(0) = %v，期望 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > epsilon {
			t.Errorf("%s(1) = %v，期望 1", name, got)
		}
	}
}

// TestEasingMonotonic 测试缓动函数在 [0,1] 上单调不减
// 面板的中途重定向依赖渲染端缓动不破坏进度的单调性
func TestEasingMonotonic(t *testing.T) {
	easings := map[string]func(float64) float64{
		"EaseLinear":     EaseLinear,
		"EaseOutCubic":   EaseOutCubic,
		"EaseInOutCubic": EaseInOutCubic,
		"EaseOutQuad":    EaseOutQuad,
	}

	for name, fn := range easings {
		prev := fn(0)
		for i := 1; i <= 100; i++ {
			v := fn(float64(i) / 100)
			if v < prev-epsilon {
				t.Errorf("%s 在 t=%.2f 处不单调：%v -> %v", name, float64(i)/100, prev, v)
			}
			prev = v
		}
	}
}

// TestEaseOutCubic 测试三次方缓出的已知值
func TestEaseOutCubic(t *testing.T) {
	// f(0.5) = 1 - 0.5³ = 0.875
	if got := EaseOutCubic(0.5); math.Abs(got-0.875) > epsilon {
		t.Errorf("EaseOutCubic(0.5) = %v，期望 0.875", got)
	}
}

// TestEaseInOutCubic 测试三次方缓入缓出的中点与对称性
func TestEaseInOutCubic(t *testing.T) {
	if got := EaseInOutCubic(0.5); math.Abs(got-0.5) > epsilon {
		t.Errorf("EaseInOutCubic(0.5) = %v，期望 0.5", got)
	}
	// 关于中点对称：f(t) + f(1-t) = 1
	for _, tt := range []float64{0.1, 0.25, 0.4} {
		sum := EaseInOutCubic(tt) + EaseInOutCubic(1-tt)
		if math.Abs(sum-1) > epsilon {
			t.Errorf("EaseInOutCubic 在 t=%.2f 处不对称：f(t)+f(1-t) = %v", tt, sum)
		}
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	if got := Lerp(2, 10, 0); got != 2 {
		t.Errorf("Lerp(2,10,0) = %v，期望 2", got)
	}
	if got := Lerp(2, 10, 1); got != 10 {
		t.Errorf("Lerp(2,10,1) = %v，期望 10", got)
	}
	if got := Lerp(2, 10, 0.5); got != 6 {
		t.Errorf("Lerp(2,10,0.5) = %v，期望 6", got)
	}
}

// TestClamp01 测试区间钳制
func TestClamp01(t *testing.T) {
	if got := Clamp01(-0.5); got != 0 {
		t.Errorf("Clamp01(-0.5) = %v，期望 0", got)
	}
	if got := Clamp01(1.5); got != 1 {
		t.Errorf("Clamp01(1.5) = %v，期望 1", got)
	}
	if got := Clamp01(0.3); got != 0.3 {
		t.Errorf("Clamp01(0.3) = %v，期望 0.3", got)
	}
}
