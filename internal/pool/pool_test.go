package pool

import (
	"sync"
	"testing"
)

func TestGetPut(t *testing.T) {
	for _, size := range []int{0, 1, 255, 256, 500, 4096, 5000, 65536, 1 << 20, 3 << 20} {
		b := Get(size)
		if len(b) != size {
			t.Errorf("Get(%d): len = %d", size, len(b))
		}
		Put(b)
	}
}

func TestBucketIndex(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{1, 0}, {256, 0},
		{257, 1}, {4096, 1},
		{4097, 2}, {65536, 2},
		{65537, 3}, {1 << 20, 3}, {4 << 20, 3},
	}
	for _, tt := range tests {
		if got := bucketIndex(tt.size); got != tt.want {
			t.Errorf("bucketIndex(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestPut_SmallOrNil(t *testing.T) {
	// Slices below the smallest class (and nil) are dropped, not pooled.
	Put(nil)
	Put(make([]byte, 100))

	b := Get(256)
	if len(b) != 256 {
		t.Errorf("Get(256) after small Put: len = %d", len(b))
	}
	Put(b)
}

func TestConcurrency(t *testing.T) {
	const goroutines = 16
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				for _, size := range []int{128, 2048, 32768, 1 << 19} {
					b := Get(size)
					if len(b) != size {
						t.Errorf("concurrent Get(%d): len = %d", size, len(b))
						return
					}
					b[0] = byte(i) // touch to surface races
					Put(b)
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkGetPut(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Put(Get(65536))
	}
}
