package pagination

import "testing"

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name string
		req  PageRequest
		want []int
	}{
		{name: "first_page", req: PageRequest{Page: 1, PageSize: 3}, want: []int{1, 2, 3}},
		{name: "middle_page", req: PageRequest{Page: 2, PageSize: 3}, want: []int{4, 5, 6}},
		{name: "short_final_page", req: PageRequest{Page: 3, PageSize: 3}, want: []int{7}},
		{name: "past_the_end", req: PageRequest{Page: 4, PageSize: 3}, want: []int{}},
		{name: "page_size_exceeds_items", req: PageRequest{Page: 1, PageSize: 100}, want: []int{1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slice(items, tt.req)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPage(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	req := PageRequest{Page: 2, PageSize: 2}

	resp := Page(items, req)
	if resp.TotalItems != 5 || resp.TotalPages != 3 {
		t.Errorf("totals = (%d items, %d pages), want (5, 3)", resp.TotalItems, resp.TotalPages)
	}
	if len(resp.Data) != 2 || resp.Data[0] != "c" {
		t.Errorf("data = %v, want [c d]", resp.Data)
	}
}

func TestDefaults(t *testing.T) {
	var req PageRequest
	req.Defaults()
	if req.Page != 1 || req.PageSize != 20 {
		t.Errorf("defaults = (%d, %d), want (1, 20)", req.Page, req.PageSize)
	}

	req = PageRequest{Page: 3, PageSize: 50}
	req.Defaults()
	if req.Page != 3 || req.PageSize != 50 {
		t.Error("explicit values must not be overwritten")
	}
}

func TestEmptyDataMarshalsAsArray(t *testing.T) {
	resp := NewPageResponse[int](nil, 1, 20, 0)
	if resp.Data == nil {
		t.Error("nil data must become an empty slice")
	}
	if resp.TotalPages != 0 {
		t.Errorf("total pages = %d, want 0", resp.TotalPages)
	}
}
