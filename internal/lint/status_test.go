package lint

import (
	"sync"
	"testing"
)

func TestExitStatus_Initial(t *testing.T) {
	var e ExitStatus
	if got := e.Read(); got != 0 {
		t.Errorf("Read = %d, want 0", got)
	}
}

func TestExitStatus_ZeroIsNoOp(t *testing.T) {
	var e ExitStatus
	e.Update(0)
	e.Update(0)
	if got := e.Read(); got != 0 {
		t.Errorf("Read = %d, want 0", got)
	}
}

func TestExitStatus_AbsorbsNonZero(t *testing.T) {
	var e ExitStatus
	e.Update(4)
	e.Update(0)
	e.Update(0)
	if got := e.Read(); got != 4 {
		t.Errorf("Read = %d, want 4 (zero must never clear a failure)", got)
	}
}

func TestExitStatus_SingleFailureAmongMany(t *testing.T) {
	var e ExitStatus
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i == 42 {
				e.Update(7)
			} else {
				e.Update(0)
			}
		}(i)
	}
	wg.Wait()
	if got := e.Read(); got != 7 {
		t.Errorf("Read = %d, want 7 regardless of completion order", got)
	}
}

func TestExitStatus_CompetingFailures(t *testing.T) {
	var e ExitStatus
	var wg sync.WaitGroup
	for _, code := range []int{2, 3, 5, 0, 0, 0} {
		wg.Add(1)
		go func(code int) {
			defer wg.Done()
			e.Update(code)
		}(code)
	}
	wg.Wait()
	got := e.Read()
	if got == 0 {
		t.Error("Read = 0, want non-zero when failures were reported")
	}
	if got != 2 && got != 3 && got != 5 {
		t.Errorf("Read = %d, want one of the reported codes", got)
	}
}
