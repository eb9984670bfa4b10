package ingest

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"普通标题", "Cool Tee", "cool-tee"},
		{"首尾空白与标点", "  Cool Tee!! ", "cool-tee"},
		{"连续空白折叠", "a   b\t c", "a-b-c"},
		{"不间断空格", "a\u00a0b", "a-b"},
		{"全角空格", "a\u3000b", "a-b"},
		{"变音符号", "Café Crème", "cafe-creme"},
		{"连续连字符压缩", "a -- b", "a-b"},
		{"首尾连字符裁剪", "-hello-", "hello"},
		{"纯标点", "!!!", ""},
		{"空串", "", ""},
		{"已是合法 slug", "already-a-slug", "already-a-slug"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.in); got != tc.want {
				t.Errorf("Slugify(%q) = %q, 期望 %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{"  Cool Tee!! ", "Café Crème", "a   b", "-x--y-"}
	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify 不幂等: 一次 %q, 两次 %q", once, twice)
		}
	}
}
