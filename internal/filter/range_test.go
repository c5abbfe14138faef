package filter

import "testing"

func TestRange_SetMin_Clamps(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"within bounds", 1990, 1990},
		{"below lower bound", 1800, 1900},
		{"above current max", 2030, 2020},
		{"above upper bound", 3000, 2020},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRange(1900, 2025, 1985, 2020)
			r.SetMin(tt.v)
			if r.Min != tt.want {
				t.Errorf("SetMin(%v): Min = %v, want %v", tt.v, r.Min, tt.want)
			}
			if r.Max != 2020 {
				t.Errorf("SetMin(%v): Max = %v, want unchanged 2020", tt.v, r.Max)
			}
		})
	}
}

func TestRange_SetMax_Clamps(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"within bounds", 2000, 2000},
		{"above upper bound", 3000, 2025},
		{"below current min", 1950, 1985},
		{"below lower bound", 1700, 1985},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRange(1900, 2025, 1985, 2020)
			r.SetMax(tt.v)
			if r.Max != tt.want {
				t.Errorf("SetMax(%v): Max = %v, want %v", tt.v, r.Max, tt.want)
			}
			if r.Min != 1985 {
				t.Errorf("SetMax(%v): Min = %v, want unchanged 1985", tt.v, r.Min)
			}
		})
	}
}

func TestRange_InvariantUnderArbitrarySequences(t *testing.T) {
	// Pseudo-random interleaving of SetMin/SetMax with values well outside
	// the bounds. The ordering lower <= min <= max <= upper must hold after
	// every single call.
	r := NewRange(0, 10, 2, 8)

	seed := uint64(0x9e3779b97f4a7c15)
	next := func() float64 {
		seed ^= seed << 13
		seed ^= seed >> 7
		seed ^= seed << 17
		return float64(int64(seed%41)) - 15 // [-15, 25]
	}

	for i := 0; i < 1000; i++ {
		v := next()
		if i%2 == 0 {
			r.SetMin(v)
		} else {
			r.SetMax(v)
		}
		if !(r.Lower() <= r.Min && r.Min <= r.Max && r.Max <= r.Upper()) {
			t.Fatalf("step %d: invariant violated: lower=%v min=%v max=%v upper=%v",
				i, r.Lower(), r.Min, r.Max, r.Upper())
		}
	}
}

func TestRange_Set_PairNotConstrainedByCurrentValues(t *testing.T) {
	tests := []struct {
		name             string
		min, max         float64
		wantMin, wantMax float64
	}{
		{"entirely below current pair", 10, 40, 10, 40},
		{"entirely above current pair", 300, 400, 300, 400},
		{"clamped to outer bounds", -10, 700, 0, 600},
		{"inverted pair collapses to min", 100, 50, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRange(0, 600, 60, 240)
			r.Set(tt.min, tt.max)
			if r.Min != tt.wantMin || r.Max != tt.wantMax {
				t.Errorf("Set(%v, %v): got [%v, %v], want [%v, %v]",
					tt.min, tt.max, r.Min, r.Max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestRange_Reset(t *testing.T) {
	r := NewRange(0, 100, 20, 80)
	r.SetMin(55)
	r.SetMax(60)
	r.Reset()

	if r.Min != 20 || r.Max != 80 {
		t.Errorf("Reset(): got [%v, %v], want [20, 80]", r.Min, r.Max)
	}
}

func TestNewRange_ClampsInitialPair(t *testing.T) {
	r := NewRange(0, 10, -5, 50)
	if r.Min != 0 || r.Max != 10 {
		t.Errorf("NewRange clamped pair = [%v, %v], want [0, 10]", r.Min, r.Max)
	}
	// The clamped pair is also the reset target.
	r.SetMin(5)
	r.Reset()
	if r.Min != 0 || r.Max != 10 {
		t.Errorf("Reset after clamped construction = [%v, %v], want [0, 10]", r.Min, r.Max)
	}
}
