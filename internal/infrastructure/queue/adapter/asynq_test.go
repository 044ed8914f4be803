package adapter

import "testing"

func TestParseQueueWeights(t *testing.T) {
	got := parseQueueWeights("critical=6, default=3 ,low=1")
	want := map[string]int{"critical": 6, "default": 3, "low": 1}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("weight[%s] = %d, want %d", k, got[k], v)
		}
	}
}

func TestParseQueueWeightsDefaultsAndJunk(t *testing.T) {
	got := parseQueueWeights("notifications, =5, bad=zero,")
	if got["notifications"] != 1 {
		t.Fatalf("bare name weight = %d, want 1", got["notifications"])
	}
	if _, ok := got[""]; ok {
		t.Fatal("empty queue name accepted")
	}
	if got["bad"] != 1 {
		t.Fatalf("unparseable weight = %d, want fallback 1", got["bad"])
	}
}
