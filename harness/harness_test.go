package harness

import (
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"
)

type record struct {
	series string
	group  string
	value  uint64
}

type recordingSink struct {
	records []record
}

func (s *recordingSink) AddResult(series, group string, value uint64) {
	s.records = append(s.records, record{series, group, value})
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type loggingCreator struct {
	calls []string
}

func (c *loggingCreator) Make(size int) *[]int {
	c.calls = append(c.calls, fmt.Sprintf("make:%d", size))
	s := make([]int, 0)

	return &s
}

func (c *loggingCreator) Clean() {
	c.calls = append(c.calls, "clean")
}

func TestBenchOneResultPerSizeInOrder(t *testing.T) {
	sink := &recordingSink{}
	h := New(sink, WithClock(&fakeClock{}))

	sizes := []int{300, 100, 200}
	Bench[*[]int](h, "vector", time.Microsecond, sizes,
		CreatorFunc[*[]int](func(int) *[]int { return new([]int) }),
	)

	if len(sink.records) != len(sizes) {
		t.Fatalf("records = %d, want %d", len(sink.records), len(sizes))
	}

	for i, size := range sizes {
		r := sink.records[i]
		if r.series != "vector" {
			t.Errorf("record %d series = %q, want vector", i, r.series)
		}
		if want := fmt.Sprint(size); r.group != want {
			t.Errorf("record %d group = %q, want %q", i, r.group, want)
		}
	}
}

func TestBenchTruncatingAverage(t *testing.T) {
	clock := &fakeClock{}
	sink := &recordingSink{}
	h := New(sink, WithClock(clock))

	// 1+2+2+2+2+2+2 = 13us; 13/7 truncates to 1 where rounding gives 2.
	trial := 0
	op := OperationFunc[*[]int](func(*[]int, int) {
		if trial == 0 {
			clock.advance(time.Microsecond)
		} else {
			clock.advance(2 * time.Microsecond)
		}
		trial++
	})

	Bench[*[]int](h, "s", time.Microsecond, []int{10},
		CreatorFunc[*[]int](func(int) *[]int { return new([]int) }), op,
	)

	if got := sink.records[0].value; got != 1 {
		t.Errorf("value = %d, want 1", got)
	}
}

func TestBenchTruncatesEachTrialToUnit(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		unit    time.Duration
		want    uint64
	}{
		{"sub unit", 900 * time.Microsecond, time.Millisecond, 0},
		{"fraction dropped", 1900 * time.Nanosecond, time.Microsecond, 1},
		{"exact", 5 * time.Millisecond, time.Millisecond, 5},
		{"micro of milli", 3 * time.Millisecond, time.Microsecond, 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{}
			sink := &recordingSink{}
			h := New(sink, WithClock(clock))

			Bench[*[]int](h, "s", tt.unit, []int{1},
				CreatorFunc[*[]int](func(int) *[]int { return new([]int) }),
				OperationFunc[*[]int](func(*[]int, int) {
					clock.advance(tt.elapsed)
				}),
			)

			if got := sink.records[0].value; got != tt.want {
				t.Errorf("value = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBenchRunsChainInDeclaredOrder(t *testing.T) {
	var calls []string

	step := func(name string) Operation[*[]int] {
		return OperationFunc[*[]int](func(c *[]int, size int) {
			calls = append(calls, fmt.Sprintf("%s:%d", name, size))
			*c = append(*c, len(calls))
		})
	}

	h := New(&recordingSink{}, WithClock(&fakeClock{}))
	Bench[*[]int](h, "s", time.Microsecond, []int{1, 2},
		CreatorFunc[*[]int](func(int) *[]int { return new([]int) }),
		step("fill"), step("sort"), step("erase"),
	)

	if len(calls) != 2*Repeat*3 {
		t.Fatalf("calls = %d, want %d", len(calls), 2*Repeat*3)
	}

	for i := 0; i < len(calls); i += 3 {
		size := 1
		if i >= Repeat*3 {
			size = 2
		}

		want := []string{
			fmt.Sprintf("fill:%d", size),
			fmt.Sprintf("sort:%d", size),
			fmt.Sprintf("erase:%d", size),
		}
		if got := calls[i : i+3]; !slices.Equal(got, want) {
			t.Fatalf("trial at %d ran %v, want %v", i, got, want)
		}
	}
}

func TestBenchCleansOnceAfterSweep(t *testing.T) {
	create := &loggingCreator{}
	h := New(&recordingSink{}, WithClock(&fakeClock{}))

	Bench[*[]int](h, "s", time.Microsecond, []int{5, 7}, create)

	if got := len(create.calls); got != 2*Repeat+1 {
		t.Fatalf("calls = %d, want %d", got, 2*Repeat+1)
	}

	for i, call := range create.calls[:len(create.calls)-1] {
		if !strings.HasPrefix(call, "make:") {
			t.Errorf("call %d = %q, want make before clean", i, call)
		}
	}

	if last := create.calls[len(create.calls)-1]; last != "clean" {
		t.Errorf("last call = %q, want clean", last)
	}
}

func TestBenchFreshContainerPerTrial(t *testing.T) {
	seen := make(map[*[]int]bool)

	h := New(&recordingSink{}, WithClock(&fakeClock{}))
	Bench[*[]int](h, "s", time.Microsecond, []int{3},
		CreatorFunc[*[]int](func(int) *[]int { return new([]int) }),
		OperationFunc[*[]int](func(c *[]int, _ int) {
			if seen[c] {
				t.Error("container reused across trials")
			}
			seen[c] = true
		}),
	)

	if len(seen) != Repeat {
		t.Errorf("containers = %d, want %d", len(seen), Repeat)
	}
}

func TestBenchPanicPropagates(t *testing.T) {
	create := &loggingCreator{}
	h := New(&recordingSink{}, WithClock(&fakeClock{}))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic from operation")
		}

		if slices.Contains(create.calls, "clean") {
			t.Error("clean ran after a failed trial")
		}
	}()

	Bench[*[]int](h, "s", time.Microsecond, []int{1}, create,
		OperationFunc[*[]int](func(*[]int, int) { panic("boom") }),
	)
}

func TestBenchRejectsInvalidArguments(t *testing.T) {
	create := CreatorFunc[*[]int](func(int) *[]int { return new([]int) })

	tests := []struct {
		name  string
		unit  time.Duration
		sizes []int
	}{
		{"zero unit", 0, []int{1}},
		{"zero size", time.Microsecond, []int{1, 0}},
		{"negative size", time.Microsecond, []int{-4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			h := New(sink)

			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
				if len(sink.records) != 0 {
					t.Error("results emitted before validation failed")
				}
			}()

			Bench[*[]int](h, "s", tt.unit, tt.sizes, create)
		})
	}
}

func TestBenchPushBackScenario(t *testing.T) {
	sink := &recordingSink{}
	h := New(sink)

	Bench[*[]int](h, "push_back", time.Microsecond, []int{100, 200},
		CreatorFunc[*[]int](func(int) *[]int { return new([]int) }),
		OperationFunc[*[]int](func(c *[]int, size int) {
			for range size {
				*c = append(*c, 0)
			}
		}),
	)

	if len(sink.records) != 2 {
		t.Fatalf("records = %d, want 2", len(sink.records))
	}

	if sink.records[0] != (record{"push_back", "100", sink.records[0].value}) {
		t.Errorf("first record = %+v", sink.records[0])
	}
	if sink.records[1] != (record{"push_back", "200", sink.records[1].value}) {
		t.Errorf("second record = %+v", sink.records[1])
	}
}

func TestWithRepeat(t *testing.T) {
	create := &loggingCreator{}
	h := New(&recordingSink{}, WithClock(&fakeClock{}), WithRepeat(3))

	Bench[*[]int](h, "s", time.Microsecond, []int{1}, create)

	if got := len(create.calls); got != 4 {
		t.Errorf("calls = %d, want 4", got)
	}
}

func TestUnitName(t *testing.T) {
	tests := []struct {
		unit time.Duration
		want string
	}{
		{time.Nanosecond, "ns"},
		{time.Microsecond, "us"},
		{time.Millisecond, "ms"},
		{time.Second, "s"},
		{time.Minute, "1m0s"},
	}

	for _, tt := range tests {
		if got := UnitName(tt.unit); got != tt.want {
			t.Errorf("UnitName(%v) = %q, want %q", tt.unit, got, tt.want)
		}
	}
}

func TestParseUnit(t *testing.T) {
	for _, name := range []string{"ns", "us", "ms", "s"} {
		unit, err := ParseUnit(name)
		if err != nil {
			t.Fatalf("ParseUnit(%q) failed: %v", name, err)
		}
		if got := UnitName(unit); got != name {
			t.Errorf("round trip %q = %q", name, got)
		}
	}

	if _, err := ParseUnit("fortnight"); err == nil {
		t.Error("expected error for unknown unit")
	}
}
