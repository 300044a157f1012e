package metrics

import (
	"fmt"
	"testing"
)

func makeRecords(n int) []Record {
	records := make([]Record, n)
	for i := 0; i < n; i++ {
		v := float64(i)
		records[i] = Record{
			MetricName: MetricTemperature,
			ModuleName: fmt.Sprintf("module-%d", i),
			Value:      &v,
		}
	}
	return records
}

func TestPartition_Sizes(t *testing.T) {
	const size = 20

	cases := []struct {
		n           int
		wantBatches int
		wantLast    int
	}{
		{n: 0, wantBatches: 0, wantLast: 0},
		{n: 1, wantBatches: 1, wantLast: 1},
		{n: 19, wantBatches: 1, wantLast: 19},
		{n: 20, wantBatches: 1, wantLast: 20},
		{n: 21, wantBatches: 2, wantLast: 1},
		{n: 40, wantBatches: 2, wantLast: 20},
		{n: 45, wantBatches: 3, wantLast: 5},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d", tc.n), func(t *testing.T) {
			batches := Partition(makeRecords(tc.n), size)

			if len(batches) != tc.wantBatches {
				t.Fatalf("Partition(%d, %d): got %d batches, want %d", tc.n, size, len(batches), tc.wantBatches)
			}
			for i, batch := range batches {
				want := size
				if i == len(batches)-1 {
					want = tc.wantLast
				}
				if len(batch) != want {
					t.Errorf("batch %d: got %d records, want %d", i, len(batch), want)
				}
			}
		})
	}
}

func TestPartition_FullBatchesAreNotOneShort(t *testing.T) {
	// Every non-final batch must hold exactly size records, never size-1.
	batches := Partition(makeRecords(41), 20)
	if len(batches) != 3 {
		t.Fatalf("got %d batches, want 3", len(batches))
	}
	if len(batches[0]) != 20 || len(batches[1]) != 20 {
		t.Errorf("full batches have sizes %d, %d; want 20, 20", len(batches[0]), len(batches[1]))
	}
	if len(batches[2]) != 1 {
		t.Errorf("final batch has size %d; want 1", len(batches[2]))
	}
}

func TestPartition_ConcatenationReproducesInput(t *testing.T) {
	records := makeRecords(45)
	batches := Partition(records, 20)

	var got []Record
	for _, batch := range batches {
		got = append(got, batch...)
	}

	if len(got) != len(records) {
		t.Fatalf("concatenated %d records, want %d", len(got), len(records))
	}
	for i := range records {
		if got[i].ModuleName != records[i].ModuleName {
			t.Errorf("record %d: got %q, want %q (order not preserved)", i, got[i].ModuleName, records[i].ModuleName)
		}
	}
}

func TestPartition_Empty(t *testing.T) {
	if batches := Partition(nil, 20); len(batches) != 0 {
		t.Errorf("Partition(nil): got %d batches, want 0", len(batches))
	}
}
