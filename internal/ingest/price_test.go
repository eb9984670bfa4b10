package ingest

import "testing"

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		want   int64
		wantOK bool
	}{
		{"普通价格", "19.99", 1999, true},
		{"整数价格", "20", 2000, true},
		{"零是合法值", "0", 0, true},
		{"半分向上取整", "10.005", 1001, true},
		{"带空白", " 5.50 ", 550, true},
		{"空串省略", "", 0, false},
		{"非数字省略", "abc", 0, false},
		{"带字母后缀省略", "19.99abc", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parsePrice(tc.in)
			if ok != tc.wantOK {
				t.Fatalf("parsePrice(%q) ok = %v, 期望 %v", tc.in, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("parsePrice(%q) = %d, 期望 %d", tc.in, got, tc.want)
			}
		})
	}
}
