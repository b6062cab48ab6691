package gui

import "testing"

func TestEvent_EmitOrder(t *testing.T) {
	var e Event[int]
	var got []int
	e.Subscribe(func(v int) { got = append(got, v) })
	e.Subscribe(func(v int) { got = append(got, v*10) })

	e.Emit(2)

	want := []int{2, 20}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEvent_Unsubscribe(t *testing.T) {
	type tc struct {
		run       func(e *Event[int], count *int)
		wantCount int
		wantLen   int
	}

	tests := map[string]tc{
		"unsubscribe before emit": {
			run: func(e *Event[int], count *int) {
				s := e.Subscribe(func(int) { *count++ })
				s.Unsubscribe()
				e.Emit(1)
			},
			wantCount: 0,
			wantLen:   0,
		},
		"unsubscribe twice": {
			run: func(e *Event[int], count *int) {
				s := e.Subscribe(func(int) { *count++ })
				e.Subscribe(func(int) { *count++ })
				s.Unsubscribe()
				s.Unsubscribe()
				e.Emit(1)
			},
			wantCount: 1,
			wantLen:   1,
		},
		"unsubscribe self during emit": {
			run: func(e *Event[int], count *int) {
				var s Subscription
				s = e.Subscribe(func(int) {
					*count++
					s.Unsubscribe()
				})
				e.Emit(1)
				e.Emit(2)
			},
			wantCount: 1,
			wantLen:   0,
		},
		"unsubscribe later handler during emit": {
			run: func(e *Event[int], count *int) {
				var later Subscription
				e.Subscribe(func(int) { later.Unsubscribe() })
				later = e.Subscribe(func(int) { *count++ })
				e.Emit(1)
			},
			wantCount: 0,
			wantLen:   1,
		},
		"subscribe during emit waits for next emit": {
			run: func(e *Event[int], count *int) {
				added := false
				e.Subscribe(func(int) {
					if !added {
						added = true
						e.Subscribe(func(int) { *count++ })
					}
				})
				e.Emit(1)
			},
			wantCount: 0,
			wantLen:   2,
		},
		"zero subscription is inert": {
			run: func(e *Event[int], count *int) {
				var s Subscription
				s.Unsubscribe()
				e.Emit(1)
			},
			wantCount: 0,
			wantLen:   0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var e Event[int]
			count := 0
			tt.run(&e, &count)
			if count != tt.wantCount {
				t.Errorf("count = %d, want %d", count, tt.wantCount)
			}
			if e.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", e.Len(), tt.wantLen)
			}
		})
	}
}

func TestEvent_Close(t *testing.T) {
	var e Event[string]
	count := 0
	e.Subscribe(func(string) { count++ })

	e.Close()
	e.Emit("x")
	s := e.Subscribe(func(string) { count++ })
	e.Emit("y")
	s.Unsubscribe()

	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if !e.Closed() {
		t.Error("Closed() = false, want true")
	}
	if e.Len() != 0 {
		t.Errorf("Len() = %d, want 0", e.Len())
	}
}
